package testsupport

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"tap/internal/logging"
)

// LogBuffer is a goroutine-safe sink for captured log output.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// CaptureLogger returns a JSON logger at debug level and the buffer it
// writes to.
func CaptureLogger(t testing.TB) (*slog.Logger, *LogBuffer) {
	t.Helper()

	buf := &LogBuffer{}
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Writer: buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return logger, buf
}
