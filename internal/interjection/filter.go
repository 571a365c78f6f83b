package interjection

import (
	"regexp"
	"strings"
)

const delimiter = "\u3000"

var (
	clauseBreak        = regexp.MustCompile(`(？！|！？|[？！\n])`)
	breakThenDelimiter = regexp.MustCompile(`([？！\n])\x{3000}`)
	modifierStripper   = strings.NewReplacer("！", "", "？", "", "…", "", "～", "", "っ", "", "ッ", "")
)

type class int

const (
	lexical class = iota
	singleMora
	exact
	pattern
)

// strippable reports whether a clause of this class may be cut from a line
// edge. Single-mora fillers break an edge run.
func (c class) strippable() bool {
	return c == exact || c == pattern
}

// classify matches the clause with elongation marks and small tsu removed,
// then falls back to the clause as written.
func classify(clause string) class {
	clause = strings.TrimRight(clause, "\n")
	if c := match(modifierStripper.Replace(clause)); c != lexical {
		return c
	}
	return match(clause)
}

func match(key string) class {
	if _, ok := singleMoraFillers[key]; ok {
		return singleMora
	}
	if _, ok := exactFillers[key]; ok {
		return exact
	}
	for _, re := range patternFillers {
		if re.MatchString(key) {
			return pattern
		}
	}
	return lexical
}

// Filter removes filler clauses from the edges of a caption line. A line
// made only of filler becomes empty. Filler between two real clauses is
// left in place. Filter(Filter(s)) == Filter(s).
func Filter(text string) string {
	text = clauseBreak.ReplaceAllString(text, "${1}"+delimiter)
	clauses := strings.Split(strings.Trim(text, delimiter+" "), delimiter)

	classes := make([]class, len(clauses))
	onlyFiller := true
	for i, clause := range clauses {
		classes[i] = classify(clause)
		if classes[i] == lexical {
			onlyFiller = false
		}
	}
	if onlyFiller {
		return ""
	}

	start, end := 0, len(clauses)
	for start < end && classes[start].strippable() {
		start++
	}
	for end > start && classes[end-1].strippable() {
		end--
	}
	kept := breakThenDelimiter.ReplaceAllString(strings.Join(clauses[start:end], delimiter), "$1")
	return strings.TrimRight(kept, "\n")
}
