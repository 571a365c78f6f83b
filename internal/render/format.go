package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output dialect.
type Format int

const (
	ASS Format = iota
	SRT
	TXT
)

var formatNames = []string{ASS: "ass", SRT: "srt", TXT: "txt"}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return f.String()
}

// ParseFormat maps a configuration value or file extension onto a Format.
func ParseFormat(value string) (Format, error) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), ".")
	for i, name := range formatNames {
		if name == normalized {
			return Format(i), nil
		}
	}
	return ASS, fmt.Errorf("unknown output format %q (want ass, srt or txt)", value)
}

// OutputPath returns where the processed form of input is written: beside
// the input unless dir is set, named "<stem>_processed.<ext>".
func OutputPath(input, dir string, format Format) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+"_processed."+format.Ext())
}
