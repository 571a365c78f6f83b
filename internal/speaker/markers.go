package speaker

import (
	"strings"
	"unicode/utf8"

	"tap/internal/textnorm"
)

// Bracket glyphs broadcasters wrap around inner monologue and off-screen
// narration. A block may span several captions.
var (
	openMarkers  = []string{"<", "＜", "《", "｟", "≪", "〈", "［", "（（"}
	closeMarkers = []string{">", "＞", "》", "｠", "≫", "〉", "］", "））"}
)

// continuationMarkers end a caption whose sentence carries on in the next one.
var continuationMarkers = []string{"→", "➡", "⤵️", "・"}

const (
	parenOpen  = "（"
	parenClose = "）"
	colonMark  = "："
	voiceMark  = "≫"
	voiceTail  = "の声"

	// A name marker further into the line than this is ordinary text.
	maxNameRunes = 8
)

// StripLineMarkers removes monologue brackets, trailing continuation glyphs
// and a leading wave dash.
func StripLineMarkers(text string) string {
	for _, marker := range openMarkers {
		text = strings.TrimPrefix(text, marker)
	}
	for _, marker := range closeMarkers {
		text = strings.TrimSuffix(text, marker)
	}
	for _, marker := range continuationMarkers {
		text = strings.TrimSuffix(text, marker)
	}
	return strings.TrimPrefix(text, "～")
}

func opensBlock(text string) bool {
	return hasAnyPrefix(text, openMarkers)
}

func closesBlock(text string) bool {
	return hasAnySuffix(text, closeMarkers)
}

func continues(text string) bool {
	return hasAnySuffix(text, continuationMarkers)
}

func hasAnyPrefix(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.HasPrefix(text, marker) {
			return true
		}
	}
	return false
}

func hasAnySuffix(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.HasSuffix(text, marker) {
			return true
		}
	}
	return false
}

// parenthetical splits "（name）rest" into name and rest.
func parenthetical(text string) (string, string, bool) {
	if !strings.HasPrefix(text, parenOpen) {
		return "", "", false
	}
	inner, rest, ok := strings.Cut(text[len(parenOpen):], parenClose)
	if !ok {
		return "", "", false
	}
	return inner, rest, true
}

// namePrefix returns the text before sep when sep sits within the first few
// characters of the line.
func namePrefix(text, sep string) (string, string, bool) {
	idx := strings.Index(text, sep)
	if idx < 0 || utf8.RuneCountInString(text[:idx]) >= maxNameRunes {
		return "", "", false
	}
	name := textnorm.TrimSpace(text[:idx])
	if name == "" {
		return "", "", false
	}
	return name, text[idx+len(sep):], true
}

// cleanName tidies a parenthesised label: "（太郎の声）" names 太郎, and
// "（太郎：電話）" names 太郎.
func cleanName(name string) string {
	name = textnorm.TrimSpace(name)
	name = strings.TrimSuffix(name, voiceTail)
	if before, _, ok := strings.Cut(name, colonMark); ok {
		name = before
	}
	return textnorm.TrimSpace(name)
}
