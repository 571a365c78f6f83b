// Package faults classifies processing failures so the batch driver and CLI
// can tell a bad configuration apart from an unreadable input or an
// unwritable destination.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrInput         = errors.New("input error")
	ErrOutput        = errors.New("output error")
	ErrState         = errors.New("state error")
)

// Status values recorded for a processed file.
const (
	StatusProcessed = "processed"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
	StatusInvalid   = "invalid_config"
	StatusUnread    = "input_error"
	StatusUnwritten = "output_error"
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		if err == nil {
			return errors.New(detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Status maps a per-file error onto the status stored in history and shown
// in the run summary.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusProcessed
	case errors.Is(err, ErrConfiguration):
		return StatusInvalid
	case errors.Is(err, ErrInput):
		return StatusUnread
	case errors.Is(err, ErrOutput):
		return StatusUnwritten
	default:
		return StatusFailed
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "processing failure"
	}
	return strings.Join(parts, ": ")
}
