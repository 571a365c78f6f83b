package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"tap/internal/faults"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func statusColor(status string) string {
	switch status {
	case faults.StatusProcessed:
		return ansiGreen
	case faults.StatusSkipped:
		return ansiYellow
	case "":
		return ""
	default:
		return ansiRed
	}
}

func renderStatus(status string, colorize bool) string {
	if !colorize {
		return status
	}
	if color := statusColor(status); color != "" {
		return color + status + ansiReset
	}
	return status
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
