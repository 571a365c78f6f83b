package caption_test

import (
	"testing"

	"tap/internal/caption"
)

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		in   string
		want caption.Timecode
	}{
		{"0:00:01.50", 1500},
		{"0:00:01.5", 1500},
		{"0:00:01.345", 1345},
		{"1:02:03.04", 3_723_040},
		{"01:02:03,040", 3_723_040},
		{"0:00:05", 5000},
	}
	for _, tt := range tests {
		got, err := caption.ParseTimecode(tt.in)
		if err != nil {
			t.Fatalf("ParseTimecode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTimecode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseTimecodeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "12", "a:b:c.d", "0:00:01.xx", "-1:00:00.00"} {
		if _, err := caption.ParseTimecode(in); err == nil {
			t.Fatalf("ParseTimecode(%q) expected error", in)
		}
	}
}

func TestTimecodeRoundTrip(t *testing.T) {
	for _, ms := range []caption.Timecode{0, 10, 1230, 59_990, 3_599_990, 36_000_000} {
		got, err := caption.ParseTimecode(ms.ASS())
		if err != nil || got != ms {
			t.Fatalf("ASS round trip of %d gave %d (%v)", ms, got, err)
		}
	}
	for _, ms := range []caption.Timecode{0, 1, 1234, 59_999, 3_599_999, 36_000_001} {
		got, err := caption.ParseTimecode(ms.SRT())
		if err != nil || got != ms {
			t.Fatalf("SRT round trip of %d gave %d (%v)", ms, got, err)
		}
	}
}

func TestTimecodeRender(t *testing.T) {
	tc := caption.Timecode(3_723_045)
	if got := tc.ASS(); got != "1:02:03.04" {
		t.Fatalf("ASS() = %q", got)
	}
	if got := tc.SRT(); got != "01:02:03,045" {
		t.Fatalf("SRT() = %q", got)
	}
	if got := caption.Timecode(-500).SRT(); got != "00:00:00,000" {
		t.Fatalf("negative timecode should clamp, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want caption.Color
	}{
		{"&H0000FF&", caption.Color{R: 0xFF}},
		{"&HFF0000", caption.Color{B: 0xFF}},
		{"&h00ffff&", caption.Color{R: 0xFF, G: 0xFF}},
		{"", caption.White},
		{"&Hzz&", caption.White},
		{"&H1000000&", caption.White},
	}
	for _, tt := range tests {
		if got := caption.ParseColor(tt.in); got != tt.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if got := (caption.Color{R: 0x12, G: 0x34, B: 0x56}).ASS(); got != "&H563412&" {
		t.Fatalf("ASS() = %q", got)
	}
}
