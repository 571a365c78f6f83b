package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tap/internal/faults"
	"tap/internal/testsupport"
)

type cliTestEnv struct {
	baseDir  string
	inputDir string
	stateDir string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	work := filepath.Join(base, "work")
	for _, dir := range []string{home, work} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", home)
	t.Setenv("TAP_STATE_DIR", filepath.Join(base, "state"))
	t.Setenv("TAP_LOG_LEVEL", "error")
	t.Setenv("TAP_OUTPUT_DIR", "")
	t.Chdir(work)

	inputDir := filepath.Join(base, "captions")
	testsupport.WriteScript(t, inputDir, "ep01.ass",
		testsupport.Dialogue("0:00:01.00", "0:00:03.00", 480, 500, "&H00FFFF&", "（太郎）おはようございます"),
		testsupport.Dialogue("0:00:04.00", "0:00:06.00", 480, 500, "&H00FFFF&", "いい天気だね"),
		testsupport.Dialogue("0:00:07.00", "0:00:09.00", 480, 500, "&HFFFF00&", "花子：そうだね"),
	)
	testsupport.WriteScript(t, inputDir, "ep02.ass",
		testsupport.Dialogue("0:00:01.00", "0:00:02.00", 480, 500, "", "えーっと　こんばんは"),
	)

	return &cliTestEnv{
		baseDir:  base,
		inputDir: inputDir,
		stateDir: filepath.Join(base, "state"),
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProcessSingleFileToNamedOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "out", "episode.srt")

	out, err := runCLI(t, "process", filepath.Join(env.inputDir, "ep01.ass"), "-o", target, "--speaker")
	if err != nil {
		t.Fatalf("process failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "processed") {
		t.Fatalf("expected summary table, got:\n%s", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)
	for _, want := range []string{"00:00:01,000 --> 00:00:03,000", "{太郎}おはようございます", "{花子}そうだね"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestProcessDirectoryAndSkipUnchanged(t *testing.T) {
	env := setupCLITestEnv(t)
	outDir := filepath.Join(env.baseDir, "out")

	out, err := runCLI(t, "process", env.inputDir, "-o", outDir, "--format", "ass")
	if err != nil {
		t.Fatalf("process failed: %v\n%s", err, out)
	}
	for _, name := range []string{"ep01_processed.ass", "ep02_processed.ass"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if !bytes.HasPrefix(data, []byte("\ufeff[Script Info]")) {
			t.Fatalf("%s should start with a BOM and script header", name)
		}
	}
	ep02, _ := os.ReadFile(filepath.Join(outDir, "ep02_processed.ass"))
	if strings.Contains(string(ep02), "えーっと") || !strings.Contains(string(ep02), "こんばんは") {
		t.Fatalf("filler should be removed:\n%s", ep02)
	}

	out, err = runCLI(t, "process", env.inputDir, "-o", outDir, "--format", "ass")
	if err != nil {
		t.Fatalf("second process failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "0 processed, 2 skipped") {
		t.Fatalf("expected unchanged files to be skipped:\n%s", out)
	}

	out, err = runCLI(t, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "ep01.ass") || !strings.Contains(out, "ass") {
		t.Fatalf("history missing entries:\n%s", out)
	}
}

func TestProcessNoCleanKeepsFiller(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "ep02.txt")

	if out, err := runCLI(t, "process", filepath.Join(env.inputDir, "ep02.ass"), "-o", target, "--no-clean", "--no-history"); err != nil {
		t.Fatalf("process failed: %v\n%s", err, out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "えーっと") {
		t.Fatalf("expected filler to be kept:\n%s", data)
	}
}

func TestProcessRejectsInvalidFlags(t *testing.T) {
	env := setupCLITestEnv(t)

	_, err := runCLI(t, "process", env.inputDir, "--merge", "sometimes")
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}

	_, err = runCLI(t, "process", filepath.Join(env.baseDir, "nothing-here"))
	if err == nil || !strings.Contains(err.Error(), "no caption files") {
		t.Fatalf("expected missing input error, got %v", err)
	}

	_, err = runCLI(t, "--log-level", "chatty", "history")
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error for log level, got %v", err)
	}
}

func TestSpeakersCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "speakers", filepath.Join(env.inputDir, "ep01.ass"))
	if err != nil {
		t.Fatalf("speakers failed: %v\n%s", err, out)
	}
	for _, want := range []string{"太郎", "花子", "Lines", "Unknown labels assigned: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("speakers output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "No history recorded") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "conf", "tap.toml")

	out, err := runCLI(t, "config", "init", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output:\n%s", out)
	}
	if _, err := runCLI(t, "config", "init", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, err := runCLI(t, "config", "init", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	out, err = runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"# Config path: " + target + "\n", "[processing]", "merge = "} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestDotEnvSuppliesOutputDir(t *testing.T) {
	env := setupCLITestEnv(t)
	outDir := filepath.Join(env.baseDir, "from-dotenv")
	if err := os.Unsetenv("TAP_OUTPUT_DIR"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(".env", []byte("TAP_OUTPUT_DIR="+outDir+"\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if out, err := runCLI(t, "process", filepath.Join(env.inputDir, "ep02.ass"), "--no-history"); err != nil {
		t.Fatalf("process failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(outDir, "ep02_processed.txt")); err != nil {
		t.Fatalf("expected output in .env directory: %v", err)
	}
}
