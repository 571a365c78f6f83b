package repetition

import (
	"regexp"
	"strings"
)

// DefaultConnector joins a collapsed stutter to the word that follows it.
const DefaultConnector = "… "

const delimiter = "\u3000"

var moraPattern = regexp.MustCompile(`[あ-んア-ヴ][ゃゅょァィゥェォャュョ]?`)

// repeatedMora returns the mora clause is made of when the clause is one or
// more copies of a single mora, or "" otherwise.
func repeatedMora(clause string) string {
	morae := moraPattern.FindAllString(clause, -1)
	if len(morae) == 0 || strings.Join(morae, "") != clause {
		return ""
	}
	for _, m := range morae[1:] {
		if m != morae[0] {
			return ""
		}
	}
	return morae[0]
}

// leadsInto reports whether clause plausibly continues a stutter on mora.
func leadsInto(mora, clause string) bool {
	if strings.HasPrefix(clause, mora) {
		return true
	}
	for _, stem := range stems[mora] {
		if strings.HasPrefix(clause, stem) {
			return true
		}
	}
	return false
}

type piece struct {
	separated bool
	text      string
}

// Adjust collapses stuttered openings such as "あああ　ありがとう" into
// "あ… ありがとう". The stuttered clause shrinks to one mora and is joined
// to the next clause with connector in place of the clause delimiter.
func Adjust(text, connector string) string {
	clauses := strings.Split(strings.Trim(text, delimiter+" "), delimiter)
	pieces := make([]piece, len(clauses))
	pending := ""
	for i, clause := range clauses {
		trimmed := strings.TrimRight(clause, "…っッ")
		pieces[i] = piece{separated: i > 0, text: clause}
		if i > 0 && pending != "" && leadsInto(pending, trimmed) {
			pieces[i-1].text = pending + connector
			pieces[i].separated = false
		}
		pending = repeatedMora(trimmed)
	}

	var b strings.Builder
	for _, p := range pieces {
		if p.separated {
			b.WriteString(delimiter)
		}
		b.WriteString(p.text)
	}
	return b.String()
}
