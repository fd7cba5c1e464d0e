// Package token is the lexical layer of the TOON codec, shared by the
// parse and encode packages.
//
// It covers three concerns:
//
//   - the line model: Lines splits raw input into content lines carrying
//     indentation and line numbers (Line, Lines)
//   - the escape engine and token classification: the five escape
//     sequences, quote-aware splitting, and the predicates deciding when
//     values and keys must be quoted (Quote, Unquote, SplitUnquoted,
//     FirstUnquoted, NumericLike, HasLeadingZero, NeedsQuote,
//     KeyNeedsQuote)
//   - the array header grammar: ParseHeader reads the [N]{fields} form
//     into a Header record (Header, Delim)
//
// The package has no opinion about document structure; everything
// depth-related lives in parse.
package token
