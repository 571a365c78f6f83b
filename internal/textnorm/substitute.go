package textnorm

import (
	"fmt"
	"regexp"
	"strings"
)

// Replacement is one literal substitution rule.
type Replacement struct {
	From string
	To   string
}

// RegexReplacement is one compiled regular-expression substitution rule.
type RegexReplacement struct {
	Pattern *regexp.Regexp
	To      string
}

// Substitutions applies user-supplied replacement tables in order: every
// literal rule, then every regex rule.
type Substitutions struct {
	literal []Replacement
	regex   []RegexReplacement
}

// NewSubstitutions compiles the regex rules. Empty literal keys are skipped.
func NewSubstitutions(literal []Replacement, patterns []Replacement) (Substitutions, error) {
	subs := Substitutions{}
	for _, rule := range literal {
		if rule.From == "" {
			continue
		}
		subs.literal = append(subs.literal, rule)
	}
	for _, rule := range patterns {
		re, err := regexp.Compile(rule.From)
		if err != nil {
			return Substitutions{}, fmt.Errorf("compile substitution %q: %w", rule.From, err)
		}
		subs.regex = append(subs.regex, RegexReplacement{Pattern: re, To: rule.To})
	}
	return subs, nil
}

// Empty reports whether no rule is configured.
func (s Substitutions) Empty() bool {
	return len(s.literal) == 0 && len(s.regex) == 0
}

// Len returns the total number of rules.
func (s Substitutions) Len() int {
	return len(s.literal) + len(s.regex)
}

// Apply runs every rule against text.
func (s Substitutions) Apply(text string) string {
	for _, rule := range s.literal {
		text = strings.ReplaceAll(text, rule.From, rule.To)
	}
	for _, rule := range s.regex {
		text = rule.Pattern.ReplaceAllString(text, rule.To)
	}
	return text
}
