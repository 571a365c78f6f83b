package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Entry is one processed input.
type Entry struct {
	ID           int64
	InputPath    string
	InputSHA256  string
	SettingsHash string
	OutputPath   string
	Format       string
	Events       int
	Speakers     int
	RunID        string
	ProcessedAt  time.Time
}

// Matches reports whether the entry was produced from the same input bytes
// with the same settings.
func (e *Entry) Matches(inputSHA256, settingsHash string) bool {
	if e == nil {
		return false
	}
	return e.InputSHA256 == inputSHA256 && e.SettingsHash == settingsHash
}

const runColumns = "id, input_path, input_sha256, settings_hash, output_path, format, events, speakers, run_id, processed_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry        Entry
		runID        sql.NullString
		processedRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.InputPath,
		&entry.InputSHA256,
		&entry.SettingsHash,
		&entry.OutputPath,
		&entry.Format,
		&entry.Events,
		&entry.Speakers,
		&runID,
		&processedRaw,
	); err != nil {
		return nil, err
	}
	entry.RunID = runID.String
	if ts, err := time.Parse(time.RFC3339Nano, processedRaw); err == nil {
		entry.ProcessedAt = ts
	}
	return &entry, nil
}

// Lookup returns the most recent entry for input, or nil when the input has
// never been processed.
func (s *Store) Lookup(ctx context.Context, input string) (*Entry, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		"SELECT "+runColumns+" FROM runs WHERE input_path = ? ORDER BY id DESC LIMIT 1",
		input,
	)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", input, err)
	}
	return entry, nil
}

// Record stores a processed input and returns it with ID and timestamp set.
func (s *Store) Record(ctx context.Context, entry Entry) (*Entry, error) {
	if entry.InputPath == "" {
		return nil, errors.New("record requires an input path")
	}
	if entry.ProcessedAt.IsZero() {
		entry.ProcessedAt = time.Now().UTC()
	}
	res, err := s.execWithRetry(ctx,
		`INSERT INTO runs (
            input_path, input_sha256, settings_hash, output_path, format,
            events, speakers, run_id, processed_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.InputPath,
		entry.InputSHA256,
		entry.SettingsHash,
		entry.OutputPath,
		entry.Format,
		entry.Events,
		entry.Speakers,
		nullableString(entry.RunID),
		entry.ProcessedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	entry.ID = id
	return &entry, nil
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	ctx = ensureContext(ctx)
	query := "SELECT " + runColumns + " FROM runs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return entries, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
