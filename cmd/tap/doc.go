// Command tap cleans up Japanese TV broadcast captions.
//
// It reads ASS scripts extracted from broadcast streams, attributes each line
// to a speaker from its colour and name markers, strips filler and markup, and
// writes ASS, SRT or plain-text results:
//
//	tap process episode.ass
//	tap process -o out/ --format srt captions/
//	tap speakers episode.ass
//	tap history --limit 20
//	tap config init
//
// Settings come from ~/.config/tap/config.toml (or ./tap.toml), environment
// variables, an optional .env file in the working directory, and flags, with
// later sources winning.
package main
