package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Dialogue formats one ASS event line with a position and optional colour
// override. An empty color leaves the line in the default colour.
func Dialogue(start, end string, x, y int, color, text string) string {
	override := fmt.Sprintf(`{\pos(%d,%d)`, x, y)
	if color != "" {
		override += `\c` + color
	}
	override += "}"
	return fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s%s", start, end, override, text)
}

// Script wraps dialogue lines in a minimal ASS script at the given
// resolution.
func Script(resX, resY int, dialogue ...string) string {
	var b strings.Builder
	b.WriteString("[Script Info]\nScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\nPlayResY: %d\n\n", resX, resY)
	b.WriteString("[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, line := range dialogue {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteScript writes an ASS script under dir and returns its path.
func WriteScript(t testing.TB, dir, name string, dialogue ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(Script(960, 540, dialogue...)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
