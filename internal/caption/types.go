package caption

import (
	"fmt"
	"strconv"
	"strings"
)

// Timecode is a caption timestamp in milliseconds.
type Timecode int64

// ParseTimecode accepts ASS (H:MM:SS.cc) and SRT (HH:MM:SS,mmm) timestamps.
// The fractional part is scaled by its digit count, so ".5", ".50" and ".500"
// all mean 500ms.
func ParseTimecode(value string) (Timecode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timecode")
	}
	value = strings.ReplaceAll(value, ",", ".")
	whole, frac, _ := strings.Cut(value, ".")
	hms := strings.Split(whole, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timecode %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	if errH != nil || errM != nil || errS != nil || hours < 0 || minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("invalid timecode %q", value)
	}
	millis := 0
	if frac != "" {
		if len(frac) > 3 {
			frac = frac[:3]
		}
		n, err := strconv.Atoi(frac)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid timecode %q", value)
		}
		for i := len(frac); i < 3; i++ {
			n *= 10
		}
		millis = n
	}
	total := int64(hours)*3_600_000 + int64(minutes)*60_000 + int64(seconds)*1000 + int64(millis)
	return Timecode(total), nil
}

func (t Timecode) split() (hours, minutes, seconds, millis int64) {
	ms := int64(t)
	if ms < 0 {
		ms = 0
	}
	hours = ms / 3_600_000
	minutes = ms / 60_000 % 60
	seconds = ms / 1000 % 60
	millis = ms % 1000
	return
}

// ASS renders the timecode at centisecond precision.
func (t Timecode) ASS() string {
	h, m, s, ms := t.split()
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, ms/10)
}

// SRT renders the timecode at millisecond precision.
func (t Timecode) SRT() string {
	h, m, s, ms := t.split()
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

func (t Timecode) String() string {
	return t.ASS()
}

// Position is a \pos anchor in script resolution pixels. Valid is set only
// when the source carried a position directive, so (x, 0) is a real anchor.
type Position struct {
	X     int
	Y     int
	Valid bool
}

// Known reports whether the position came from a directive.
func (p Position) Known() bool {
	return p.Valid
}

// Color is an RGB primary colour taken from a \c override.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// White is the default caption colour; events in white carry no colour cue.
var White = Color{R: 0xFF, G: 0xFF, B: 0xFF}

// ParseColor decodes an ASS colour value (&HBBGGRR&). Anything that is not a
// valid 24-bit value yields White.
func ParseColor(value string) Color {
	value = strings.TrimLeft(value, "&Hh \t")
	end := 0
	for end < len(value) && isHexDigit(value[end]) {
		end++
	}
	if end == 0 {
		return White
	}
	n, err := strconv.ParseUint(value[:end], 16, 64)
	if err != nil || n > 0xFFFFFF {
		return White
	}
	return Color{
		R: uint8(n & 0xFF),
		G: uint8(n >> 8 & 0xFF),
		B: uint8(n >> 16 & 0xFF),
	}
}

// ASS renders the colour in override syntax.
func (c Color) ASS() string {
	return fmt.Sprintf("&H%02X%02X%02X&", c.B, c.G, c.R)
}

func (c Color) String() string {
	return c.ASS()
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}
