package speaker

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"tap/internal/caption"
	"tap/internal/logging"
	"tap/internal/textnorm"
)

// ColorSpeaker is the name resolved for one caption colour.
type ColorSpeaker struct {
	Color      caption.Color
	Name       string
	Candidates []string
	Events     int
}

// Result summarizes an attribution run.
type Result struct {
	Colors  []ColorSpeaker
	Unknown int
}

// label is a tentative first-pass assignment: either a literal name or a
// reference to a colour whose name is settled in the second pass.
type label struct {
	name    string
	color   caption.Color
	colored bool
}

func (l label) empty() bool {
	return !l.colored && l.name == ""
}

// candidateRecord collects, per colour, every name marker seen on a line in
// that colour. Colours keep discovery order.
type candidateRecord struct {
	order []caption.Color
	names map[caption.Color][]string
}

func newCandidateRecord() *candidateRecord {
	return &candidateRecord{names: make(map[caption.Color][]string)}
}

// add records name for color and reports whether it was new evidence.
func (r *candidateRecord) add(color caption.Color, name string) bool {
	existing, seen := r.names[color]
	if !seen {
		r.order = append(r.order, color)
	}
	for _, n := range existing {
		if n == name {
			return false
		}
	}
	r.names[color] = append(existing, name)
	return true
}

// canonical picks the longest candidate per colour, falling back to a
// numbered protagonist placeholder.
func (r *candidateRecord) canonical() map[caption.Color]string {
	out := make(map[caption.Color]string, len(r.order))
	for i, color := range r.order {
		best := ""
		bestLen := -1
		for _, name := range r.names[color] {
			if n := utf8.RuneCountInString(name); n > bestLen {
				best, bestLen = name, n
			}
		}
		if best == "" {
			best = fmt.Sprintf("Protagonist%d", i+1)
		}
		out[color] = best
	}
	return out
}

// Attribute assigns a speaker to every event in doc.
//
// The first pass walks events in source order and produces tentative labels
// from name markers, colour, bracket continuity and on-screen proximity. A
// colour is only tied to a name once every line in that colour has been
// seen, so coloured lines get a colour token first and the second pass
// rewrites the tokens from the candidate record.
func Attribute(doc *caption.Document, logger *slog.Logger) Result {
	logger = logging.NewComponentLogger(logger, "speaker")
	events := doc.Events
	xThr, yThr := doc.ProximityThresholds()

	record := newCandidateRecord()
	labels := make([]label, len(events))
	unknown := 0
	inBlock := false

	for i, event := range events {
		text := StripLineMarkers(event.Text)

		candidate, found := explicitName(text, events, i, xThr, yThr)
		if found {
			inBlock = false
		}

		var current label
		if event.Color != caption.White {
			if record.add(event.Color, candidate) && candidate != "" {
				logger.Debug("speaker candidate recorded",
					logging.String("color", event.Color.ASS()),
					logging.String("name", candidate),
				)
			}
			current = label{color: event.Color, colored: true}
		} else {
			if found {
				current = label{name: candidate}
			}
			if inBlock || i > 0 && continues(events[i-1].Text) {
				current = labels[i-1]
			}
			if opensBlock(event.Text) {
				inBlock = true
			}
			if closesBlock(event.Text) {
				inBlock = false
			}
			if current.empty() && !inBlock && i > 0 {
				prev := events[i-1]
				if prev.Color == caption.White && proximate(event, prev, xThr, yThr) {
					current = labels[i-1]
				}
			}
		}

		if current.empty() {
			unknown++
			current = label{name: fmt.Sprintf("Unknown%d", unknown)}
		}
		labels[i] = current
	}

	names := record.canonical()
	result := Result{Unknown: unknown}
	counts := make(map[caption.Color]int, len(names))
	for i, event := range events {
		if labels[i].colored {
			event.Speaker = names[labels[i].color]
			counts[labels[i].color]++
			continue
		}
		event.Speaker = labels[i].name
	}
	for _, color := range record.order {
		result.Colors = append(result.Colors, ColorSpeaker{
			Color:      color,
			Name:       names[color],
			Candidates: append([]string(nil), record.names[color]...),
			Events:     counts[color],
		})
	}

	logger.Info("speakers assigned",
		logging.Int("events", len(events)),
		logging.Int("colors", len(result.Colors)),
		logging.Int("unknown", unknown),
	)
	return result
}

// explicitName looks for a name marker on the line. A parenthesised label
// that fills the whole line only counts when the next caption is shown at
// the same time right beside it, since broadcasters sometimes put the name
// on its own line above the dialogue.
func explicitName(text string, events []*caption.Event, i, xThr, yThr int) (string, bool) {
	if inner, rest, ok := parenthetical(text); ok {
		labelsNext := i+1 < len(events) && proximate(events[i], events[i+1], xThr, yThr)
		if textnorm.TrimSpace(rest) != "" || labelsNext {
			return cleanName(inner), true
		}
		return "", false
	}
	if name, _, ok := namePrefix(text, colonMark); ok {
		return name, true
	}
	if name, _, ok := namePrefix(text, voiceMark); ok {
		return name, true
	}
	return "", false
}

// proximate reports two simultaneous captions drawn close together.
func proximate(a, b *caption.Event, xThr, yThr int) bool {
	if !a.SameTiming(b) || !a.Pos.Known() || !b.Pos.Known() {
		return false
	}
	return abs(a.Pos.X-b.Pos.X) <= xThr && abs(a.Pos.Y-b.Pos.Y) <= yThr
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
