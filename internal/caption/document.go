package caption

const (
	defaultResX = 960
	defaultResY = 540

	// Captions closer than this at 960x540 are treated as one on-screen block.
	baseProximity = 60
)

// Event is a single caption line. Stages after parsing rewrite Text and
// Speaker in place.
type Event struct {
	Start   Timecode
	End     Timecode
	Style   string
	Name    string // source name field; ignored by speaker inference
	Text    string
	Speaker string
	Pos     Position
	Color   Color
}

// SameTiming reports whether both events share start and end.
func (e *Event) SameTiming(other *Event) bool {
	return e.Start == other.Start && e.End == other.End
}

// Document is a parsed caption script. Events keep source order, which is
// not necessarily chronological.
type Document struct {
	ResX   int
	ResY   int
	Events []*Event
}

// NewDocument returns an empty document at the default script resolution.
func NewDocument() *Document {
	return &Document{ResX: defaultResX, ResY: defaultResY}
}

// ProximityThresholds returns the horizontal and vertical distance, in
// script pixels, under which two simultaneous captions count as adjacent.
func (d *Document) ProximityThresholds() (int, int) {
	resX, resY := d.ResX, d.ResY
	if resX <= 0 {
		resX = defaultResX
	}
	if resY <= 0 {
		resY = defaultResY
	}
	return baseProximity * resX / defaultResX, baseProximity * resY / defaultResY
}

// RemoveEmpty drops events with no remaining text and returns how many were
// removed.
func (d *Document) RemoveEmpty() int {
	kept := d.Events[:0]
	for _, event := range d.Events {
		if event.Text != "" {
			kept = append(kept, event)
		}
	}
	removed := len(d.Events) - len(kept)
	for i := len(kept); i < len(d.Events); i++ {
		d.Events[i] = nil
	}
	d.Events = kept
	return removed
}

// Speakers returns the distinct speaker labels in first-appearance order.
func (d *Document) Speakers() []string {
	seen := make(map[string]struct{}, len(d.Events))
	var out []string
	for _, event := range d.Events {
		if event.Speaker == "" {
			continue
		}
		if _, ok := seen[event.Speaker]; ok {
			continue
		}
		seen[event.Speaker] = struct{}{}
		out = append(out, event.Speaker)
	}
	return out
}
