package textnorm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// WidthStrategy selects how digit and letter runs are rewritten.
type WidthStrategy int

const (
	WidthKeep WidthStrategy = iota
	WidthHalf
	WidthFull
	// WidthFullSingle widens lone characters and narrows longer runs, which
	// matches Japanese typesetting for numbers like "３人" versus "10人".
	WidthFullSingle
)

var widthStrategyNames = map[WidthStrategy]string{
	WidthKeep:       "keep",
	WidthHalf:       "half",
	WidthFull:       "full",
	WidthFullSingle: "full_single",
}

func (s WidthStrategy) String() string {
	if name, ok := widthStrategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("WidthStrategy(%d)", int(s))
}

// ParseWidthStrategy maps a config value onto a strategy.
func ParseWidthStrategy(value string) (WidthStrategy, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.ReplaceAll(key, "-", "_")
	for strategy, name := range widthStrategyNames {
		if name == key {
			return strategy, nil
		}
	}
	return WidthKeep, fmt.Errorf("unknown width strategy %q (want keep, half, full, or full_single)", value)
}

// ConvertDigits rewrites every run of ASCII or fullwidth digits.
func ConvertDigits(text string, strategy WidthStrategy) string {
	return convertRuns(text, strategy, isDigit)
}

// ConvertLetters rewrites every run of ASCII or fullwidth Latin letters.
func ConvertLetters(text string, strategy WidthStrategy) string {
	return convertRuns(text, strategy, isLatinLetter)
}

func convertRuns(text string, strategy WidthStrategy, member func(rune) bool) string {
	if strategy == WidthKeep || text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !member(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && member(runes[j]) {
			j++
		}
		run := string(runes[i:j])
		switch strategy {
		case WidthHalf:
			run = width.Narrow.String(run)
		case WidthFull:
			run = width.Widen.String(run)
		case WidthFullSingle:
			if j-i == 1 {
				run = width.Widen.String(run)
			} else {
				run = width.Narrow.String(run)
			}
		}
		b.WriteString(run)
		i = j
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= '０' && r <= '９'
}

func isLatinLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' ||
		r >= 'ａ' && r <= 'ｚ' || r >= 'Ａ' && r <= 'Ｚ'
}

const (
	halfKanaFirst     = '\uFF66'
	halfKanaLast      = '\uFF9D'
	halfVoicedMark    = '\uFF9E'
	halfSemiVoiceMark = '\uFF9F'
	combiningVoiced   = '\u3099'
	combiningSemi     = '\u309A'
)

// ConvertHalfKatakana widens halfwidth katakana. A halfwidth (semi-)voicing
// mark is folded into the preceding kana when a composed form exists
// (ｶﾞ → ガ, ﾊﾟ → パ, ｳﾞ → ヴ); marks with nothing to compose onto are dropped.
func ConvertHalfKatakana(text string) string {
	if !strings.ContainsFunc(text, isHalfKana) {
		return text
	}
	out := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		switch {
		case r >= halfKanaFirst && r <= halfKanaLast:
			wide, _ := utf8.DecodeRuneInString(width.Widen.String(string(r)))
			out = append(out, wide)
		case r == halfVoicedMark || r == halfSemiVoiceMark:
			if len(out) == 0 {
				continue
			}
			mark := combiningVoiced
			if r == halfSemiVoiceMark {
				mark = combiningSemi
			}
			prev := out[len(out)-1]
			composed := norm.NFC.String(string([]rune{prev, mark}))
			if c, size := utf8.DecodeRuneInString(composed); size == len(composed) && c != prev {
				out[len(out)-1] = c
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func isHalfKana(r rune) bool {
	return r >= halfKanaFirst && r <= halfSemiVoiceMark
}
