// Package schedule reads the game catalog produced by the external
// schedule-discovery component and filters it for processing.
package schedule

import (
	"encoding/json"
	"fmt"
	"os"
)

// Status is the catalog's view of a game's lifecycle.
type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusInProgress Status = "InProgress"
	StatusFinished   Status = "Finished"
)

// Game is one catalog entry.
type Game struct {
	GameID        string `json:"GameId"`
	DivisionName  string `json:"DivisionName"`
	Status        Status `json:"Status"`
	ScheduledDate string `json:"ScheduledDate"`
}

// Catalog is the ordered list of scheduled games.
type Catalog struct {
	Games []Game
}

// Load reads a catalog file (a JSON array of games).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game catalog: %w", err)
	}
	var games []Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parsing game catalog: %w", err)
	}
	return &Catalog{Games: games}, nil
}

// Finished returns the games flagged Finished, in catalog order.
func (c *Catalog) Finished() []Game {
	return c.filter(func(g Game) bool { return g.Status == StatusFinished })
}

// ByDivision returns the games of one division, in catalog order.
func (c *Catalog) ByDivision(division string) []Game {
	return c.filter(func(g Game) bool { return g.DivisionName == division })
}

// Find looks a game up by its id.
func (c *Catalog) Find(gameID string) (Game, bool) {
	for _, g := range c.Games {
		if g.GameID == gameID {
			return g, true
		}
	}
	return Game{}, false
}

func (c *Catalog) filter(keep func(Game) bool) []Game {
	var out []Game
	for _, g := range c.Games {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

// DivisionSummary is the per-division status breakdown.
type DivisionSummary struct {
	Total      int
	Finished   int
	InProgress int
	NotStarted int
}

// Summary counts games by status per division, for operator reporting.
func (c *Catalog) Summary() map[string]DivisionSummary {
	summary := make(map[string]DivisionSummary)
	for _, g := range c.Games {
		s := summary[g.DivisionName]
		s.Total++
		switch g.Status {
		case StatusFinished:
			s.Finished++
		case StatusInProgress:
			s.InProgress++
		case StatusNotStarted:
			s.NotStarted++
		}
		summary[g.DivisionName] = s
	}
	return summary
}
