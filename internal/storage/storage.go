// Package storage handles the filesystem sides of the pipeline: raw game
// pages cached by the external downloader, and the per-game record files
// this core produces, partitioned by division.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// ErrNoRawPage signals that the downloader has not cached a page for the
// game yet. Recoverable: the batch driver skips the game.
var ErrNoRawPage = errors.New("raw game page not found")

// Store reads cached pages from rawDir and writes records under outputDir.
type Store struct {
	rawDir    string
	outputDir string
}

// New creates a Store, creating the output directory if needed.
func New(rawDir, outputDir string) (*Store, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Store{rawDir: rawDir, outputDir: outputDir}, nil
}

// OpenRawPage opens the cached HTML page for a game. The caller closes it.
func (s *Store) OpenRawPage(gameID string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.rawDir, gameID+".html"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoRawPage, gameID)
		}
		return nil, fmt.Errorf("opening raw page: %w", err)
	}
	return f, nil
}

// RecordPath returns where the record for a game lives.
func (s *Store) RecordPath(division, gameID string) string {
	return filepath.Join(s.outputDir, DivisionSlug(division), gameID+".json")
}

// RecordExists reports whether a record has already been written. This backs
// the batch driver's idempotent skip.
func (s *Store) RecordExists(division, gameID string) bool {
	_, err := os.Stat(s.RecordPath(division, gameID))
	return err == nil
}

// WriteRecord serializes one game record into its division partition.
func (s *Store) WriteRecord(division string, record *gamestats.GameRecord) error {
	path := s.RecordPath(division, record.GameID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating division directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// ReadRecord loads a previously written record.
func (s *Store) ReadRecord(division, gameID string) (*gamestats.GameRecord, error) {
	data, err := os.ReadFile(s.RecordPath(division, gameID))
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}
	var record gamestats.GameRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}
	return &record, nil
}

// DivisionSlug folds a division label into a filesystem-safe partition name.
func DivisionSlug(division string) string {
	folded := strings.ToLower(normalize.Fold(division))
	var b strings.Builder
	lastDash := true
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "unknown-division"
	}
	return slug
}
