// Package suggest turns matcher replacement candidates into full corrected
// strings.
//
// A matcher reports a span [start, end) of the checked text together with
// raw candidates. Format replaces the span with each candidate, keeping the
// surrounding identifier or sentence intact:
//
//	suggest.Format("user_naem", 5, 9, []string{"name"})
//	// ["user_name"]
//
// Candidates are lower-cased and de-duplicated before the limit applies, so
// engines that return "Receive" and "receive" yield one suggestion. A
// correction that directly follows '-' or '_' stays lower-case; anything else
// is capitalized on its first rune, matching how identifiers and sentence
// starts are usually written.
package suggest
