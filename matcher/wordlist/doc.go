// Package wordlist implements a local spelling matcher over plain-text word
// lists, such as the system dictionary at /usr/share/dict/words.
//
// Text is split with the code tokenizer, so userNaem is checked as "user" and
// "Naem". Unknown words get up to ten replacement candidates within two
// edits, closest first. The engine needs no network access and reports
// spelling only; asking it for grammar checks is a configuration error.
package wordlist
