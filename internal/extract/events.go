package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/classify"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// Event-log rows carry: time, raw text, quarter, running score, advantage.
// Quarter and advantage are frequently blank.
const (
	eventCellTime = iota
	eventCellText
	eventCellQuarter
	eventCellScore
	eventCellAdvantage
)

// ExtractEvents reads the game log, classifies every row and returns the
// events sorted ascending by timestamp (stable, so rows sharing a timestamp
// keep their page order). Forfeited games have no log section at all; those
// yield a single synthesized Forfeit event attributed to System at the
// game's date.
func ExtractEvents(doc *goquery.Document, classifier *classify.Classifier, ctx classify.Context, names *normalize.Normalizer, gameDate string) []gamestats.GameEvent {
	section := doc.Find("#gameEvents")
	if section.Length() == 0 {
		return []gamestats.GameEvent{forfeitEvent(gameDate)}
	}

	var events []gamestats.GameEvent
	section.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		rawText := cellText(cells, eventCellText)
		event, matched := classifier.Classify(rawText, ctx)
		if !matched {
			log.Warn("unclassified game event", "text", rawText)
		}
		// Actor names go through the alias map like roster names do; the
		// synthetic System/Coach actors are sentinels and stay untouched.
		if !event.Actor.IsSynthetic() {
			event.Actor = gamestats.PlayerActor(names.Normalize(event.Actor.Name))
		}

		event.Time = cellText(cells, eventCellTime)
		if cells.Length() > eventCellQuarter && event.Quarter == nil {
			event.Quarter = optionalInt(cellText(cells, eventCellQuarter))
		}
		if cells.Length() > eventCellScore {
			event.Score = cellText(cells, eventCellScore)
		}
		if cells.Length() > eventCellAdvantage {
			event.Advantage = optionalInt(cellText(cells, eventCellAdvantage))
		}
		events = append(events, event)
	})

	gamestats.SortEvents(events)
	return events
}

func forfeitEvent(gameDate string) gamestats.GameEvent {
	return gamestats.GameEvent{
		Time:    gameDate,
		RawText: "Forfeit",
		Action:  "Forfeit",
		Actor:   gamestats.SystemActor(),
	}
}
