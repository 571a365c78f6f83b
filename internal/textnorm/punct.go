package textnorm

import (
	"regexp"
	"strings"
)

// IdeographicSpace is the clause delimiter used throughout caption text.
const IdeographicSpace = "\u3000"

var punctuationReplacer = strings.NewReplacer(
	"．", ".",
	"％", "%",
	"／", "/",
	"＆", "&",
	"＋", "+",
	"－", "-",
	"＝", "=",
	"･", "・",
	"“", "「",
	"”", "」",
	"｢", "「",
	"｣", "」",
	"(", "（",
	")", "）",
	":", "：",
	" ", IdeographicSpace,
	"｡", IdeographicSpace,
	"。", IdeographicSpace,
	"、", IdeographicSpace,
)

// NormalizePunctuation folds symbol widths to the forms later stages expect:
// ASCII for arithmetic symbols, fullwidth for brackets and colons, and an
// ideographic space in place of sentence punctuation and plain spaces.
func NormalizePunctuation(text string) string {
	return punctuationReplacer.Replace(text)
}

// IconMarkers are broadcast glyphs that open or close captions to signal
// music, phone audio, off-screen voices, and similar. Order matters: "♪♪"
// must be tried before "♪".
var IconMarkers = []string{
	"♪♪", "♪", "♬", "⚟", "⚞", "📱", "☎", "🔊", "📢", "📺", "🎤",
	"💻", "🎧", "📼", "🖭", "・", "〓", "⎚", "＝", "≫",
}

// trailingIcons omits "・" and "≫": at the end of a line they mark a
// continued caption and a closed monologue, which speaker attribution
// still needs to see.
var trailingIcons = func() []string {
	out := make([]string, 0, len(IconMarkers))
	for _, marker := range IconMarkers {
		if marker != "・" && marker != "≫" {
			out = append(out, marker)
		}
	}
	return out
}()

// StripIconPrefix removes each icon marker from the start of text once, in
// list order.
func StripIconPrefix(text string) string {
	for _, marker := range IconMarkers {
		text = strings.TrimPrefix(text, marker)
	}
	return text
}

// StripIconSuffix removes each icon marker from the end of text once, in
// list order.
func StripIconSuffix(text string) string {
	return trimSuffixes(text, IconMarkers)
}

func trimSuffixes(text string, markers []string) string {
	for _, marker := range markers {
		text = strings.TrimSuffix(text, marker)
	}
	return text
}

// StripIcons removes icon markers from both ends of a line, collapses
// doubled ideographic spaces, and trims the result. Trailing continuation
// and block-close glyphs are left for speaker attribution.
func StripIcons(text string) string {
	text = TrimSpace(StripIconPrefix(text))
	text = trimSuffixes(text, trailingIcons)
	text = strings.ReplaceAll(text, IdeographicSpace+IdeographicSpace, IdeographicSpace)
	return TrimSpace(text)
}

var gaijiPattern = regexp.MustCompile(`\[外：[0-9A-Z]{32}\]`)

// StripGaiji removes external-character placeholders the caption decoder
// emits for glyphs it could not map.
func StripGaiji(text string) string {
	return gaijiPattern.ReplaceAllString(text, "")
}

// TrimSpace trims ASCII and ideographic whitespace.
func TrimSpace(text string) string {
	return strings.Trim(text, " \t\r\n"+IdeographicSpace)
}
