// Package text implements the pure text functions behind the service:
// counters, the most-frequent-word finder, transformations, validators and
// the local lexicon sentiment scorer.
//
// Several functions keep their long-standing quirks on purpose. Word and
// frequency counting split on a single ASCII space so runs of spaces yield
// empty tokens, sentence counting splits on '.' so a trailing period counts
// an extra empty sentence, and palindrome checks are case and whitespace
// sensitive. Callers depend on these results.
//
// Lengths are reported in UTF-16 code units so that counts agree with
// browser-side clients.
package text
