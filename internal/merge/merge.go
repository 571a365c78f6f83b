// Package merge folds captions that share identical timing.
package merge

import (
	"fmt"
	"strings"

	"tap/internal/caption"
)

// Strategy selects when two identically timed captions are merged.
type Strategy int

const (
	// None keeps every caption.
	None Strategy = iota
	// Auto merges only captions with the same speaker.
	Auto
	// Force merges regardless of speaker, stacking differing speakers.
	Force
)

var strategyNames = map[Strategy]string{
	None:  "none",
	Auto:  "auto",
	Force: "force",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration value onto a Strategy.
func ParseStrategy(value string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for strategy, name := range strategyNames {
		if name == normalized {
			return strategy, nil
		}
	}
	return None, fmt.Errorf("unknown merge strategy %q (want none, auto or force)", value)
}

const delimiter = "\u3000"

// join concatenates two clauses with the delimiter unless the first already
// ends a sentence or a stacked line.
func join(a, b string) string {
	if strings.HasSuffix(a, "？") || strings.HasSuffix(a, "！") || strings.HasSuffix(a, "\n") {
		return a + b
	}
	return a + delimiter + b
}

// Apply merges adjacent captions with identical start and end. The earlier
// caption folds into the later one, so runs of three or more collapse into
// the last caption of the run. The input slice is reused.
func Apply(events []*caption.Event, strategy Strategy) []*caption.Event {
	if strategy == None || len(events) < 2 {
		return events
	}
	folded := make([]bool, len(events))
	for i := 0; i+1 < len(events); i++ {
		cur, next := events[i], events[i+1]
		if !cur.SameTiming(next) {
			continue
		}
		switch {
		case cur.Speaker == next.Speaker:
			next.Text = join(cur.Text, next.Text)
		case strategy == Force:
			next.Speaker = cur.Speaker + "/" + next.Speaker
			next.Text = cur.Text + "\n" + next.Text
		default:
			continue
		}
		folded[i] = true
	}

	kept := events[:0]
	for i, event := range events {
		if !folded[i] {
			kept = append(kept, event)
		}
	}
	for i := len(kept); i < len(events); i++ {
		events[i] = nil
	}
	return kept
}
