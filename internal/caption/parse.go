package caption

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"tap/internal/logging"
)

const (
	rubyStyle     = "Rubi"
	rubyScaleDown = `\fscx50\fscy50`
	dialoguePref  = "Dialogue:"
	eventFields   = 10
	utf8BOM       = "\ufeff"
)

var (
	posPattern      = regexp.MustCompile(`\\pos\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*\)`)
	colorPattern    = regexp.MustCompile(`\\1?c(&[Hh][0-9A-Fa-f]+&?)`)
	overridePattern = regexp.MustCompile(`\{[^}]*\}`)
	resXPattern     = regexp.MustCompile(`ResX:\s*(\S*)`)
	resYPattern     = regexp.MustCompile(`ResY:\s*(\S*)`)
)

// Load reads and parses a caption file.
func Load(path string, logger *slog.Logger) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open caption file: %w", err)
	}
	defer file.Close()
	logger = logging.NewComponentLogger(logger, "parser").With(logging.String(logging.FieldInput, path))
	doc, err := Parse(file, logger)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// ParseString parses caption text held in memory.
func ParseString(text string, logger *slog.Logger) (*Document, error) {
	return Parse(strings.NewReader(text), logger)
}

// Parse reads an ASS script. Data-quality problems (missing positions,
// malformed resolution headers, short dialogue lines) are logged and
// defaulted; only read failures are returned.
func Parse(r io.Reader, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	doc := NewDocument()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	rubyLines := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		switch {
		case strings.HasPrefix(line, dialoguePref):
			event, ruby, err := parseDialogue(line)
			if err != nil {
				logger.Warn("skipping malformed dialogue line",
					logging.Int("line", lineNo),
					logging.Error(err),
					logging.String(logging.FieldImpact, "line dropped from transcript"),
				)
				continue
			}
			if ruby {
				rubyLines++
				continue
			}
			if !event.Pos.Known() {
				logger.Warn("missing position directive",
					logging.Int("line", lineNo),
					logging.String(logging.FieldImpact, "position defaults to (0,0); proximity grouping disabled for this line"),
				)
			}
			doc.Events = append(doc.Events, event)
		case strings.Contains(line, "ResX:"):
			doc.ResX = parseResolution(logger, line, resXPattern, "PlayResX", doc.ResX)
		case strings.Contains(line, "ResY:"):
			doc.ResY = parseResolution(logger, line, resYPattern, "PlayResY", doc.ResY)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read caption text: %w", err)
	}

	logger.Info("caption document parsed",
		logging.Int("events", len(doc.Events)),
		logging.Int("ruby_dropped", rubyLines),
		logging.String("resolution", fmt.Sprintf("%dx%d", doc.ResX, doc.ResY)),
	)
	return doc, nil
}

func parseResolution(logger *slog.Logger, line string, pattern *regexp.Regexp, key string, fallback int) int {
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		return fallback
	}
	value, err := strconv.Atoi(match[1])
	if err != nil || value <= 0 {
		logger.Warn(key+" is not a number",
			logging.String("value", match[1]),
			logging.Int("default", fallback),
		)
		return fallback
	}
	return value
}

// parseDialogue splits a Dialogue line into its ten fields. The second
// return reports a ruby annotation line, which callers discard.
func parseDialogue(line string) (*Event, bool, error) {
	body := strings.TrimPrefix(line, dialoguePref)
	fields := strings.SplitN(body, ",", eventFields)
	if len(fields) < eventFields {
		return nil, false, fmt.Errorf("expected %d fields, got %d", eventFields, len(fields))
	}
	style := strings.TrimSpace(fields[3])
	raw := strings.TrimSpace(fields[9])
	if style == rubyStyle || strings.Contains(raw, rubyScaleDown) {
		return nil, true, nil
	}

	start, err := ParseTimecode(fields[1])
	if err != nil {
		return nil, false, fmt.Errorf("start: %w", err)
	}
	end, err := ParseTimecode(fields[2])
	if err != nil {
		return nil, false, fmt.Errorf("end: %w", err)
	}

	event := &Event{
		Start: start,
		End:   end,
		Style: style,
		Name:  strings.TrimSpace(fields[4]),
		Color: White,
	}
	if m := posPattern.FindStringSubmatch(raw); m != nil {
		event.Pos = Position{X: atoiTrunc(m[1]), Y: atoiTrunc(m[2]), Valid: true}
	}
	if m := colorPattern.FindStringSubmatch(raw); m != nil {
		event.Color = ParseColor(m[1])
	}
	event.Text = StripOverrides(raw)
	return event, false, nil
}

// StripOverrides removes override blocks and converts ASS escapes to plain
// text.
func StripOverrides(text string) string {
	text = overridePattern.ReplaceAllString(text, "")
	text = strings.NewReplacer(`\N`, "\n", `\n`, "\n", `\h`, " ").Replace(text)
	return strings.TrimSpace(text)
}

func atoiTrunc(value string) int {
	if whole, _, ok := strings.Cut(value, "."); ok {
		value = whole
	}
	n, _ := strconv.Atoi(value)
	return n
}
