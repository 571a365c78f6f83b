package batch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"tap/internal/batch"
	"tap/internal/faults"
	"tap/internal/testsupport"
)

const yellow = "&H00FFFF&"

func writeEpisode(t *testing.T, dir, name, line string) string {
	t.Helper()
	return testsupport.WriteScript(t, dir, name,
		testsupport.Dialogue("0:00:01.00", "0:00:03.00", 480, 500, yellow, "（太郎）"+line),
		testsupport.Dialogue("0:00:04.00", "0:00:06.00", 480, 500, "", "さようなら"),
	)
}

func newRunner(t *testing.T, opts batch.Options, cfgOpts ...testsupport.ConfigOption) (*batch.Runner, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t, cfgOpts...)
	runner, err := batch.NewRunner(cfg, opts, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	return runner, cfg.Output.Dir
}

func TestRunProcessesAndSkipsUnchanged(t *testing.T) {
	inputDir := t.TempDir()
	first := writeEpisode(t, inputDir, "ep01.ass", "おはようございます")
	second := writeEpisode(t, inputDir, "ep02.ass", "こんばんは")

	cfg := testsupport.NewConfig(t)
	runner, err := batch.NewRunner(cfg, batch.Options{}, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	ctx := context.Background()

	report, err := runner.Run(ctx, []string{first, second})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.RunID == "" {
		t.Fatal("expected run id")
	}
	if report.Count(faults.StatusProcessed) != 2 {
		t.Fatalf("expected two processed files, got %+v", report.Files)
	}
	out := report.Files[0].Output
	if out != filepath.Join(cfg.Output.Dir, "ep01_processed.txt") {
		t.Fatalf("unexpected output path %q", out)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "おはようございます") || strings.Contains(string(data), "（太郎）") {
		t.Fatalf("unexpected output:\n%s", data)
	}
	if report.Files[0].Events != 2 || report.Files[0].Speakers == 0 {
		t.Fatalf("unexpected counts: %+v", report.Files[0])
	}

	again, err := runner.Run(ctx, []string{first, second})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if again.Count(faults.StatusSkipped) != 2 {
		t.Fatalf("expected unchanged files to be skipped, got %+v", again.Files)
	}
	if again.Files[0].Events != 2 {
		t.Fatalf("skipped result should carry recorded counts: %+v", again.Files[0])
	}

	writeEpisode(t, inputDir, "ep01.ass", "こんにちは")
	changed, err := runner.Run(ctx, []string{first, second})
	if err != nil {
		t.Fatalf("third Run: %v", err)
	}
	if changed.Files[0].Status != faults.StatusProcessed || changed.Files[1].Status != faults.StatusSkipped {
		t.Fatalf("expected only the edited file to be processed, got %+v", changed.Files)
	}

	store := testsupport.MustOpenHistory(t, cfg)
	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected three history entries, got %d", len(entries))
	}
	if entries[0].RunID != changed.RunID {
		t.Fatalf("history run id %q, want %q", entries[0].RunID, changed.RunID)
	}
}

func TestRunForceAndMissingOutput(t *testing.T) {
	input := writeEpisode(t, t.TempDir(), "ep01.ass", "おはよう")
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	runner, err := batch.NewRunner(cfg, batch.Options{}, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	report, err := runner.Run(ctx, []string{input})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := os.Remove(report.Files[0].Output); err != nil {
		t.Fatalf("remove output: %v", err)
	}
	report, err = runner.Run(ctx, []string{input})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Files[0].Status != faults.StatusProcessed {
		t.Fatalf("missing output should be regenerated, got %s", report.Files[0].Status)
	}

	forced, err := batch.NewRunner(cfg, batch.Options{Force: true}, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	report, err = forced.Run(ctx, []string{input})
	if err != nil {
		t.Fatalf("forced Run: %v", err)
	}
	if report.Files[0].Status != faults.StatusProcessed {
		t.Fatalf("force should reprocess, got %s", report.Files[0].Status)
	}
}

func TestRunChangedSettingsReprocess(t *testing.T) {
	input := writeEpisode(t, t.TempDir(), "ep01.ass", "おはよう")
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	runner, err := batch.NewRunner(cfg, batch.Options{}, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if _, err := runner.Run(ctx, []string{input}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	cfg.Output.ShowSpeaker = true
	runner, err = batch.NewRunner(cfg, batch.Options{}, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	report, err := runner.Run(ctx, []string{input})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Files[0].Status != faults.StatusProcessed {
		t.Fatalf("changed settings should reprocess, got %s", report.Files[0].Status)
	}
}

func TestRunContinuesAfterFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeEpisode(t, dir, "good.ass", "おはよう")
	missing := filepath.Join(dir, "missing.ass")

	runner, _ := newRunner(t, batch.Options{})
	report, err := runner.Run(context.Background(), []string{missing, good})
	if err == nil {
		t.Fatal("expected combined error")
	}
	if !errors.Is(err, faults.ErrInput) {
		t.Fatalf("expected input error, got %v", err)
	}
	if report.Files[0].Status != faults.StatusUnread {
		t.Fatalf("missing file status = %s", report.Files[0].Status)
	}
	if report.Files[1].Status != faults.StatusProcessed {
		t.Fatalf("good file status = %s", report.Files[1].Status)
	}
	if report.Failed() != 1 {
		t.Fatalf("Failed() = %d", report.Failed())
	}
}

func TestRunReportsUnwritableOutput(t *testing.T) {
	input := writeEpisode(t, t.TempDir(), "ep01.ass", "おはよう")
	cfg := testsupport.NewConfig(t)
	blocker := filepath.Join(testsupport.BaseDir(cfg), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Output.Dir = blocker

	runner, err := batch.NewRunner(cfg, batch.Options{}, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	report, err := runner.Run(context.Background(), []string{input})
	if !errors.Is(err, faults.ErrOutput) {
		t.Fatalf("expected output error, got %v", err)
	}
	if report.Files[0].Status != faults.StatusUnwritten {
		t.Fatalf("status = %s", report.Files[0].Status)
	}
}

func TestRunSingleOutputFile(t *testing.T) {
	input := writeEpisode(t, t.TempDir(), "ep01.ass", "おはよう")
	target := filepath.Join(t.TempDir(), "custom.srt")

	runner, _ := newRunner(t, batch.Options{OutputFile: target, NoHistory: true}, testsupport.WithOutputFormat("srt"))
	report, err := runner.Run(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Files[0].Output != target {
		t.Fatalf("output = %q", report.Files[0].Output)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "00:00:01,000 --> 00:00:03,000") {
		t.Fatalf("expected srt timing line:\n%s", data)
	}
}

func TestRunInPlaceOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeEpisode(t, dir, "ep01.ass", "おはよう")

	runner, _ := newRunner(t, batch.Options{}, testsupport.WithInPlaceOutput(), testsupport.WithOutputFormat("ass"))
	report, err := runner.Run(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Files[0].Output != filepath.Join(dir, "ep01_processed.ass") {
		t.Fatalf("output = %q", report.Files[0].Output)
	}
}

func TestRunRefusesConcurrentRun(t *testing.T) {
	input := writeEpisode(t, t.TempDir(), "ep01.ass", "おはよう")
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	held := flock.New(cfg.LockPath())
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("hold lock: %v %v", ok, err)
	}
	defer held.Unlock()

	runner, err := batch.NewRunner(cfg, batch.Options{}, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	_, err = runner.Run(context.Background(), []string{input})
	if !errors.Is(err, faults.ErrState) {
		t.Fatalf("expected state error, got %v", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	input := writeEpisode(t, t.TempDir(), "ep01.ass", "おはよう")
	runner, _ := newRunner(t, batch.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runner.Run(ctx, []string{input})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if report.Files[0].Status != faults.StatusFailed {
		t.Fatalf("status = %s", report.Files[0].Status)
	}
}

func TestNewRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Output.Format = "vtt"
	if _, err := batch.NewRunner(cfg, batch.Options{}, nil); !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
