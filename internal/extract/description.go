package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
)

// Description is the game header: division, the two team names and the
// final score, plus the outcome derivations every other extractor builds on.
type Description struct {
	Division         string
	HomeTeam         string
	AwayTeam         string
	HomeScore        int
	AwayScore        int
	Score            string
	Winner           string
	Loser            string
	HomeLeaguePoints int
	AwayLeaguePoints int
	HomeForfeit      bool
	AwayForfeit      bool
}

// The federation records a forfeited game as a 20:0 win for the team that
// showed up.
const forfeitScore = 20

// ExtractDescription reads the game header. A missing header is the one
// fatal condition for a page: nothing else can be located without it.
// A 0:0 final score returns ErrNotStarted.
func ExtractDescription(doc *goquery.Document) (*Description, error) {
	section := doc.Find("#gameDescription")
	if section.Length() == 0 {
		return nil, fmt.Errorf("game description section not found")
	}

	desc := &Description{
		Division: strings.TrimSpace(section.Find(".division").Text()),
		HomeTeam: strings.TrimSpace(section.Find(".home-team").Text()),
		AwayTeam: strings.TrimSpace(section.Find(".away-team").Text()),
		Score:    strings.TrimSpace(section.Find(".score").Text()),
	}
	if desc.HomeTeam == "" || desc.AwayTeam == "" {
		return nil, fmt.Errorf("team names missing from game description")
	}

	home, away, err := parseScore(desc.Score)
	if err != nil {
		return nil, err
	}
	if home == 0 && away == 0 {
		return nil, ErrNotStarted
	}
	desc.HomeScore = home
	desc.AwayScore = away
	desc.deriveOutcome()
	return desc, nil
}

// parseScore parses a "85 : 78" score pair.
func parseScore(raw string) (home, away int, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed score %q", raw)
	}
	home, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed home score in %q", raw)
	}
	away, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed away score in %q", raw)
	}
	return home, away, nil
}

// deriveOutcome fills winner/loser and league points. A win earns 2 points,
// a loss 1, and the 0:20 forfeit convention leaves the forfeiting side with
// nothing while the opponent takes the win share.
func (d *Description) deriveOutcome() {
	switch {
	case d.HomeScore == 0 && d.AwayScore == forfeitScore:
		d.HomeForfeit = true
		d.HomeLeaguePoints = gamestats.LeaguePointsForfeit
		d.AwayLeaguePoints = gamestats.LeaguePointsWin
	case d.AwayScore == 0 && d.HomeScore == forfeitScore:
		d.AwayForfeit = true
		d.AwayLeaguePoints = gamestats.LeaguePointsForfeit
		d.HomeLeaguePoints = gamestats.LeaguePointsWin
	case d.HomeScore > d.AwayScore:
		d.HomeLeaguePoints = gamestats.LeaguePointsWin
		d.AwayLeaguePoints = gamestats.LeaguePointsLoss
	case d.AwayScore > d.HomeScore:
		d.AwayLeaguePoints = gamestats.LeaguePointsWin
		d.HomeLeaguePoints = gamestats.LeaguePointsLoss
	default:
		// A drawn final score never happens in basketball; record both
		// sides with the loss share rather than invent a winner.
		d.HomeLeaguePoints = gamestats.LeaguePointsLoss
		d.AwayLeaguePoints = gamestats.LeaguePointsLoss
	}

	if d.HomeLeaguePoints > d.AwayLeaguePoints {
		d.Winner, d.Loser = d.HomeTeam, d.AwayTeam
	} else if d.AwayLeaguePoints > d.HomeLeaguePoints {
		d.Winner, d.Loser = d.AwayTeam, d.HomeTeam
	}
}
