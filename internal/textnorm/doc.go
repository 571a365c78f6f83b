// Package textnorm holds the per-line text transforms applied to broadcast
// captions: character width conversion, halfwidth katakana composition,
// punctuation folding, icon and gaiji stripping, CJK/Latin spacing, and
// user substitution tables.
//
// Every function is a pure string transform; none of them change how many
// events a document has or their order.
package textnorm
