// Package caption models broadcast caption documents and parses the ASS
// dialect produced by TV closed-caption extractors.
//
// A Document holds the script resolution and the events in source order. The
// parser drops furigana (ruby) lines, pulls position and colour out of inline
// override blocks, and leaves only visible text on each Event. Later pipeline
// stages mutate events in place; the renderer reads them back out.
package caption
