package batch

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tap/internal/logging"
)

const (
	captionExt      = ".ass"
	processedSuffix = "_processed.ass"
)

// Collect expands files and directories into caption inputs. Directories are
// scanned one level deep and previously processed outputs are ignored.
// Missing paths and non-caption files are logged and skipped. The result is
// de-duplicated and keeps command-line order.
func Collect(paths []string, logger *slog.Logger) []string {
	logger = logging.NewComponentLogger(logger, "batch")
	seen := make(map[string]struct{}, len(paths))
	var inputs []string
	add := func(path string) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		inputs = append(inputs, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			impact := "input skipped"
			if errors.Is(err, fs.ErrNotExist) {
				impact = "path does not exist"
			}
			logger.Warn("skipping input path",
				logging.String(logging.FieldInput, path),
				logging.String(logging.FieldImpact, impact),
				logging.Error(err),
			)
			continue
		}
		if !info.IsDir() {
			if !isCaption(path) {
				logger.Warn("skipping non-caption file",
					logging.String(logging.FieldInput, path),
					logging.String(logging.FieldErrorHint, "only .ass files are processed"),
				)
				continue
			}
			add(path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			logger.Warn("skipping unreadable directory",
				logging.String(logging.FieldInput, path),
				logging.Error(err),
			)
			continue
		}
		var found []string
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !isCaption(name) || strings.HasSuffix(strings.ToLower(name), processedSuffix) {
				continue
			}
			found = append(found, filepath.Join(path, name))
		}
		sort.Strings(found)
		if len(found) == 0 {
			logger.Warn("directory contains no caption files", logging.String(logging.FieldInput, path))
		}
		for _, file := range found {
			add(file)
		}
	}
	return inputs
}

func isCaption(path string) bool {
	return strings.EqualFold(filepath.Ext(path), captionExt)
}
