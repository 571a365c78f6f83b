package textnorm

import (
	"strings"
)

// DefaultSpaceChar is a sixth-em space, narrow enough to sit between kana and
// Latin text without looking like a word break.
const DefaultSpaceChar = "\u2006"

type charClass int

const (
	classOther charClass = iota
	classCJK
	classAlnum
)

func classify(r rune) charClass {
	switch {
	case r >= 0x3040 && r <= 0xFAFF:
		return classCJK
	case r >= 0x21 && r <= 0xB6, r >= 0xB8 && r <= 0xFF, r >= 0x370 && r <= 0x3FF:
		return classAlnum
	default:
		return classOther
	}
}

// closingPunct never takes a space when it directly follows CJK text.
const closingPunct = `!"'),.:;?]}`

// AddCJKSpacing inserts space between adjacent CJK and alphanumeric
// characters in a single left-to-right scan.
func AddCJKSpacing(text, space string) string {
	if space == "" {
		space = DefaultSpaceChar
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	last := classOther
	for _, r := range text {
		class := classify(r)
		switch class {
		case classCJK:
			if last == classAlnum {
				b.WriteString(space)
			}
		case classAlnum:
			if last == classCJK && !strings.ContainsRune(closingPunct, r) {
				b.WriteString(space)
			}
		}
		last = class
		b.WriteRune(r)
	}
	return b.String()
}

// FixWesternSpacing turns an ideographic space that separates two purely
// alphanumeric words back into an ASCII space.
func FixWesternSpacing(text string) string {
	if !strings.Contains(text, IdeographicSpace) {
		return text
	}
	words := strings.Split(text, IdeographicSpace)
	var b strings.Builder
	b.Grow(len(text))
	for i, word := range words {
		if i > 0 {
			if isAlnumWord(words[i-1]) && isAlnumWord(word) {
				b.WriteByte(' ')
			} else {
				b.WriteString(IdeographicSpace)
			}
		}
		b.WriteString(word)
	}
	return b.String()
}

func isAlnumWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if classify(r) != classAlnum {
			return false
		}
	}
	return true
}
