// Package tokenize splits identifiers and prose into word and delimiter
// tokens using code-naming conventions.
//
// Splitting happens in three passes:
//
//   - Delimiters: every rune in BaseDelimiters or CodeDelimiters becomes a
//     single-rune token of its own, so snake_case, kebab-case, and decorated
//     names such as "x-amz-id" fall apart at their separators.
//   - Case boundaries: each delimiter-bounded run is split before an
//     upper-case letter that follows a lower-case letter or digit ("apiKey"),
//     and before the last capital of an acronym run when a lower-case letter
//     follows ("APIKey" becomes "API" and "Key"). Acronym runs are otherwise
//     kept whole ("HTTPSProxy" becomes "HTTPS" and "Proxy").
//   - Addresses: tokens covering an email address or URL are merged back
//     into one token.
//
// Tokenization is total and lossless: joining the tokens of any string,
// delimiters included, reproduces that string byte for byte.
package tokenize
