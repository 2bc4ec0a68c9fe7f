// Package extract pulls structured game data out of cached federation game
// pages. Each page section has its own extractor operating on a parsed
// goquery document; sections that are optional on real pages (referees,
// location, event log, roster of a forfeited game) degrade gracefully.
// Assemble orchestrates the extractors into one GameRecord.
package extract

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotStarted signals a page whose final score is still 0:0. This is a
// control condition, not a failure: the game is simply not played yet and
// must not produce a record.
var ErrNotStarted = errors.New("game not started")

// cellText returns the trimmed text of the i-th cell of a selection of tds.
func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}

// cellInt parses the i-th cell as an integer, treating blanks and garbage
// as zero. Box-score pages leave untouched stat cells empty.
func cellInt(cells *goquery.Selection, i int) int {
	n, _ := strconv.Atoi(cellText(cells, i))
	return n
}

// optionalInt parses a signed integer cell, returning nil for a blank cell
// so the record keeps "not recorded" distinct from zero.
func optionalInt(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &n
}
