package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// Box-score player rows carry 14 cells:
// number, name, starting marker, total, 1P, 2P, 3P, P1, P2, P3, T1, U1, U2, D.
const playerRowCells = 14

// ExtractTeams walks the box-score container row by row. A header row (th)
// opens a new team — first Home, then Away; player rows accumulate roster
// entries; a row whose leading cell reads "Total" finalizes the team.
// Pages of forfeited games have no box score at all, in which case a
// synthetic two-team structure is built from the description alone.
func ExtractTeams(doc *goquery.Document, desc *Description, names *normalize.Normalizer) ([]gamestats.Team, error) {
	container := doc.Find("#boxScore")
	if container.Length() == 0 {
		return forfeitTeams(desc), nil
	}

	var teams []gamestats.Team
	var current *gamestats.Team
	headers := 0

	container.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		if header := row.Find("th"); header.Length() > 0 {
			role := gamestats.RoleHome
			if headers > 0 {
				role = gamestats.RoleAway
			}
			headers++
			name := strings.TrimSpace(header.First().Text())
			current = &gamestats.Team{
				Role:      role,
				Name:      name,
				ShortName: gamestats.ShortTeamName(name),
			}
			return
		}
		if current == nil {
			return
		}

		cells := row.Find("td")
		if cells.Length() > 0 && strings.EqualFold(cellText(cells, 0), "Total") {
			teams = append(teams, *current)
			current = nil
			return
		}
		if cells.Length() < playerRowCells {
			return
		}
		current.Players = append(current.Players, parsePlayerRow(cells, names))
	})

	if len(teams) != 2 {
		return nil, fmt.Errorf("expected 2 teams in box score, found %d", len(teams))
	}

	applyTeamTotals(teams, desc)
	return teams, nil
}

func parsePlayerRow(cells *goquery.Selection, names *normalize.Normalizer) gamestats.Player {
	player := gamestats.Player{
		Number:         cellInt(cells, 0),
		Name:           names.Normalize(cellText(cells, 1)),
		StartingFive:   gamestats.Flag(cellText(cells, 2) != ""),
		TotalPoints:    cellInt(cells, 3),
		OnePointMade:   cellInt(cells, 4),
		TwoPointMade:   cellInt(cells, 5),
		ThreePointMade: cellInt(cells, 6),
		P1Fouls:        cellInt(cells, 7),
		P2Fouls:        cellInt(cells, 8),
		P3Fouls:        cellInt(cells, 9),
		T1Fouls:        cellInt(cells, 10),
		U1Fouls:        cellInt(cells, 11),
		U2Fouls:        cellInt(cells, 12),
		DFouls:         cellInt(cells, 13),
	}
	player.PersonalFouls = player.P1Fouls + player.P2Fouls + player.P3Fouls
	player.TotalFouls = player.PersonalFouls + player.T1Fouls + player.U1Fouls + player.U2Fouls + player.DFouls
	return player
}

// applyTeamTotals fills the aggregates that need the description or the
// opposing roster. Free-throw attempts are cross-assigned: a team's attempts
// equal the opponent's weighted foul count.
func applyTeamTotals(teams []gamestats.Team, desc *Description) {
	home, away := &teams[0], &teams[1]

	home.PointsWon, home.PointsLost = desc.HomeScore, desc.AwayScore
	away.PointsWon, away.PointsLost = desc.AwayScore, desc.HomeScore
	home.LeaguePoints = desc.HomeLeaguePoints
	away.LeaguePoints = desc.AwayLeaguePoints
	home.Result = gamestats.ResultFromLeaguePoints(home.LeaguePoints)
	away.Result = gamestats.ResultFromLeaguePoints(away.LeaguePoints)

	home.AttemptedFreeThrows = away.WeightedFouls()
	away.AttemptedFreeThrows = home.WeightedFouls()
}

// forfeitTeams builds the two-team fallback for pages without a roster,
// with empty player lists and outcomes derived from the league points.
func forfeitTeams(desc *Description) []gamestats.Team {
	teams := []gamestats.Team{
		{Role: gamestats.RoleHome, Name: desc.HomeTeam, ShortName: gamestats.ShortTeamName(desc.HomeTeam)},
		{Role: gamestats.RoleAway, Name: desc.AwayTeam, ShortName: gamestats.ShortTeamName(desc.AwayTeam)},
	}
	applyTeamTotals(teams, desc)
	return teams
}
