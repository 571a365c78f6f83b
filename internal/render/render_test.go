package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tap/internal/caption"
)

func sampleEvents() []*caption.Event {
	return []*caption.Event{
		{Start: 1000, End: 2500, Speaker: "太郎", Text: "おはよう"},
		{Start: 8000, End: 9120, Speaker: "花子", Text: "はい\nいいえ"},
	}
}

func render(t *testing.T, format Format, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, sampleEvents(), format, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.String()
}

func TestWriteASS(t *testing.T) {
	got := render(t, ASS, Options{ShowSpeaker: true})

	if !strings.HasPrefix(got, "[Script Info]\n") {
		t.Fatalf("missing script header: %q", got[:40])
	}
	if !strings.Contains(got, "Style: JP,") {
		t.Fatal("missing JP style")
	}
	wantLines := []string{
		"Dialogue: 0,0:00:01.00,0:00:02.50,JP,太郎,0,0,0,,おはよう",
		`Dialogue: 0,0:00:08.00,0:00:09.12,JP,花子,0,0,0,,はい\Nいいえ`,
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Fatalf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestWriteASSHidesSpeaker(t *testing.T) {
	got := render(t, ASS, Options{Ending: "。"})
	if !strings.Contains(got, "Dialogue: 0,0:00:01.00,0:00:02.50,JP,,0,0,0,,おはよう。") {
		t.Fatalf("unexpected ASS output:\n%s", got)
	}
}

func TestWriteSRT(t *testing.T) {
	got := render(t, SRT, Options{ShowSpeaker: true})
	want := "1\n00:00:01,000 --> 00:00:02,500\n{太郎}おはよう\n" +
		"\n" +
		"2\n00:00:08,000 --> 00:00:09,120\n{花子}はい\nいいえ\n"
	if got != want {
		t.Fatalf("SRT mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestWriteTXT(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "plain",
			want: "おはよう\nはい　いいえ",
		},
		{
			name: "speaker and pause",
			opts: Options{ShowSpeaker: true, PauseTip: 5},
			want: "[太郎]\tおはよう\n(5-second pause)\n[花子]\tはい　いいえ",
		},
		{
			name: "gap below threshold",
			opts: Options{PauseTip: 6},
			want: "おはよう\nはい　いいえ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, TXT, tt.opts); got != tt.want {
				t.Fatalf("TXT mismatch:\n got %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"ass", "SRT", ".txt"} {
		if _, err := ParseFormat(in); err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
	}
	if _, err := ParseFormat("vtt"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestOutputPath(t *testing.T) {
	input := filepath.Join("shows", "ep01.ass")
	if got, want := OutputPath(input, "", SRT), filepath.Join("shows", "ep01_processed.srt"); got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
	if got, want := OutputPath(input, "out", TXT), filepath.Join("out", "ep01_processed.txt"); got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

func TestSaveASSWritesBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ass")
	doc := caption.NewDocument()
	doc.Events = sampleEvents()

	if err := Save(path, doc, ASS, Options{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("expected UTF-8 BOM")
	}

	srt := filepath.Join(t.TempDir(), "out.srt")
	if err := Save(srt, doc, SRT, Options{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err = os.ReadFile(srt)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("SRT should not carry a BOM")
	}
}
