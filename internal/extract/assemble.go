package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/classify"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// Deps are the read-only collaborators the assembler threads through the
// extractors. Both are loaded once per batch run and never mutated.
type Deps struct {
	Names      *normalize.Normalizer
	Classifier *classify.Classifier
}

// Assemble runs every extractor over one game page and composes the
// normalized record. It returns ErrNotStarted for 0:0 pages (expected —
// those games are re-queued for a later run) and a plain error when the page
// is too malformed to describe; assembly is all-or-nothing, no partial
// record is ever returned.
func Assemble(doc *goquery.Document, gameID string, deps Deps) (*gamestats.GameRecord, error) {
	desc, err := ExtractDescription(doc)
	if err != nil {
		return nil, err
	}

	if gameID == "" {
		log.Warn("page parsed without a catalog game id", "home", desc.HomeTeam, "away", desc.AwayTeam)
	}

	dateTime, err := ExtractDateTime(doc)
	if err != nil {
		log.Warn("game date unavailable", "gameID", gameID, "err", err)
	}

	teams, err := ExtractTeams(doc, desc, deps.Names)
	if err != nil {
		return nil, err
	}

	ctx := classify.Context{
		HomeTeamShort: teams[0].ShortName,
		AwayTeamShort: teams[1].ShortName,
	}
	events := ExtractEvents(doc, deps.Classifier, ctx, deps.Names, dateTime)

	record := &gamestats.GameRecord{
		GameID:               gameID,
		GameDivisionDisplay:  desc.Division,
		ShortGameDisplay:     ctx.HomeTeamShort + " vs " + ctx.AwayTeamShort,
		GameScore:            desc.Score,
		HomeTeamName:         desc.HomeTeam,
		AwayTeamName:         desc.AwayTeam,
		FinalHomeScore:       desc.HomeScore,
		FinalAwayScore:       desc.AwayScore,
		WinnerTeamName:       desc.Winner,
		LoserTeamName:        desc.Loser,
		HomeTeamLeaguePoints: desc.HomeLeaguePoints,
		AwayTeamLeaguePoints: desc.AwayLeaguePoints,
		Location:             ExtractLocation(doc),
		Referees:             ExtractReferees(doc),
		DateTime:             dateTime,
		Teams:                teams,
		Events:               events,
	}
	reconcileResults(record)
	return record, nil
}

// reconcileResults cross-checks each team's outcome against the game winner
// from the description. Forfeit outcomes always stand; for the rest the
// winner name is authoritative.
func reconcileResults(record *gamestats.GameRecord) {
	for i := range record.Teams {
		team := &record.Teams[i]
		if team.Result == gamestats.ResultForfeit {
			continue
		}
		switch team.Name {
		case record.WinnerTeamName:
			team.Result = gamestats.ResultWin
		case record.LoserTeamName:
			team.Result = gamestats.ResultLoss
		}
	}
}
