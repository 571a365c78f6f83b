// Package render serializes processed caption documents as ASS, SRT or
// plain text.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"tap/internal/caption"
	"tap/internal/fileutil"
)

// Options controls presentation details shared by every format.
type Options struct {
	// ShowSpeaker writes the resolved speaker label with each line.
	ShowSpeaker bool
	// Ending is appended to every line of text.
	Ending string
	// PauseTip, when positive, inserts a pause marker into TXT output before
	// lines that start at least this many seconds after the previous one
	// ended.
	PauseTip int
}

const utf8BOM = "\ufeff"

const assHeader = "[Script Info]\n" +
	"; Generated by tap (TV ASS Processor)\n" +
	"ScriptType: v4.00+\n" +
	"PlayResX: 1920\n" +
	"PlayResY: 1080\n\n" +
	"[V4+ Styles]\n" +
	"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n" +
	"Style: JP,Sarasa Gothic J Semibold,52,&H00FFFFFF,&H00FFFFFF,&H00141414,&H910E0807,0,0,0,0,100,100,0,0,1,1.6,0,2,30,30,15,1\n\n" +
	"[Events]\n" +
	"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n"

const assStyle = "JP"

// Write renders events to w in the given format.
func Write(w io.Writer, events []*caption.Event, format Format, opts Options) error {
	var body string
	switch format {
	case ASS:
		body = renderASS(events, opts)
	case SRT:
		body = renderSRT(events, opts)
	case TXT:
		body = renderTXT(events, opts)
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
	_, err := io.WriteString(w, body)
	return err
}

// Save renders doc and writes it to path atomically. ASS files carry a
// UTF-8 byte order mark.
func Save(path string, doc *caption.Document, format Format, opts Options) error {
	var buf bytes.Buffer
	if format == ASS {
		buf.WriteString(utf8BOM)
	}
	if err := Write(&buf, doc.Events, format, opts); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func renderASS(events []*caption.Event, opts Options) string {
	lines := make([]string, 0, len(events))
	for _, event := range events {
		name := ""
		if opts.ShowSpeaker {
			name = event.Speaker
		}
		text := strings.ReplaceAll(event.Text, "\n", `\N`)
		lines = append(lines, fmt.Sprintf("Dialogue: 0,%s,%s,%s,%s,0,0,0,,%s%s",
			event.Start.ASS(), event.End.ASS(), assStyle, name, text, opts.Ending))
	}
	return assHeader + strings.Join(lines, "\n")
}

func renderSRT(events []*caption.Event, opts Options) string {
	blocks := make([]string, 0, len(events))
	for i, event := range events {
		prefix := ""
		if opts.ShowSpeaker && event.Speaker != "" {
			prefix = "{" + event.Speaker + "}"
		}
		blocks = append(blocks, fmt.Sprintf("%d\n%s --> %s\n%s%s%s\n",
			i+1, event.Start.SRT(), event.End.SRT(), prefix, event.Text, opts.Ending))
	}
	return strings.Join(blocks, "\n")
}

func renderTXT(events []*caption.Event, opts Options) string {
	lines := make([]string, 0, len(events))
	threshold := caption.Timecode(opts.PauseTip) * 1000
	var lastEnd caption.Timecode
	for _, event := range events {
		if gap := event.Start - lastEnd; threshold > 0 && gap >= threshold {
			lines = append(lines, fmt.Sprintf("(%d-second pause)", gap/1000))
		}
		lastEnd = event.End
		text := strings.ReplaceAll(event.Text, "\n", "\u3000") + opts.Ending
		if opts.ShowSpeaker {
			text = "[" + event.Speaker + "]\t" + text
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}
