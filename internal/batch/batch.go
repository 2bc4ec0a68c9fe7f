// Package batch drives the extraction pipeline over the game catalog, one
// game at a time. Every per-game failure is absorbed at the game boundary;
// the batch always runs to completion.
package batch

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/extract"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/schedule"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/storage"
)

// Progress is logged every progressInterval games.
const progressInterval = 50

// Outcome classifies what happened to one game.
type Outcome int

const (
	OutcomeProcessed Outcome = iota
	OutcomeSkipped
	OutcomeNotStarted
	OutcomeMissingPage
	OutcomeFailed
)

// Stats summarizes one batch run.
type Stats struct {
	Processed   int
	Skipped     int
	NotStarted  int
	MissingPage int
	Failed      int
}

// Runner processes catalog games sequentially. The extractors' shared
// collaborators (alias map, pattern catalog) are read-only, so a Runner
// could be driven per-division in parallel, but one game is always fully
// written before the next starts.
type Runner struct {
	store *storage.Store
	deps  extract.Deps
}

// New creates a Runner.
func New(store *storage.Store, deps extract.Deps) *Runner {
	return &Runner{store: store, deps: deps}
}

// ProcessAll runs the pipeline over every Finished game in the catalog.
// Existing records are skipped unless force is set, which makes incremental
// re-runs the safe default.
func (r *Runner) ProcessAll(games []schedule.Game, force bool) Stats {
	log.Info("starting batch extraction", "games", len(games), "force", force)

	var stats Stats
	for i, game := range games {
		if game.Status != schedule.StatusFinished {
			stats.Skipped++
			continue
		}
		switch r.ProcessGame(game, force) {
		case OutcomeProcessed:
			stats.Processed++
		case OutcomeSkipped:
			stats.Skipped++
		case OutcomeNotStarted:
			stats.NotStarted++
		case OutcomeMissingPage:
			stats.MissingPage++
		case OutcomeFailed:
			stats.Failed++
		}
		if (i+1)%progressInterval == 0 {
			log.Info("batch progress", "done", i+1, "total", len(games))
		}
	}

	log.Info("batch finished",
		"processed", stats.Processed,
		"skipped", stats.Skipped,
		"notStarted", stats.NotStarted,
		"missingPage", stats.MissingPage,
		"failed", stats.Failed)
	return stats
}

// ProcessGame runs the pipeline for a single game and reports the outcome.
// All error paths are logged here, at the game boundary.
func (r *Runner) ProcessGame(game schedule.Game, force bool) Outcome {
	if !force && r.store.RecordExists(game.DivisionName, game.GameID) {
		log.Debug("record exists, skipping", "gameID", game.GameID)
		return OutcomeSkipped
	}

	record, err := r.extractGame(game)
	switch {
	case errors.Is(err, storage.ErrNoRawPage):
		log.Warn("raw page missing, skipping game", "gameID", game.GameID)
		return OutcomeMissingPage
	case errors.Is(err, extract.ErrNotStarted):
		log.Warn("game not started yet, skipping", "gameID", game.GameID, "scheduled", game.ScheduledDate)
		return OutcomeNotStarted
	case err != nil:
		log.Error("game extraction failed", "gameID", game.GameID, "err", err)
		return OutcomeFailed
	}

	if err := r.store.WriteRecord(game.DivisionName, record); err != nil {
		log.Error("writing game record failed", "gameID", game.GameID, "err", err)
		return OutcomeFailed
	}
	log.Debug("game record written", "gameID", game.GameID, "division", game.DivisionName)
	return OutcomeProcessed
}

func (r *Runner) extractGame(game schedule.Game) (*gamestats.GameRecord, error) {
	page, err := r.store.OpenRawPage(game.GameID)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return extract.Assemble(doc, game.GameID, r.deps)
}
