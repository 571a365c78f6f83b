// Package speaker infers who says each caption line.
//
// Broadcast captions rarely name the speaker. Instead they colour a
// character's lines consistently across an episode, prefix the occasional
// line with "（name）" or "name：", wrap inner monologue in bracket glyphs,
// and place simultaneous lines from one speaker next to each other. Attribute
// combines those cues in two passes over the document; Cleanup then removes
// the markers from the visible text.
package speaker
