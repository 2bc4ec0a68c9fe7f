// Package gamestats defines the typed game record model produced by the
// extraction pipeline. Field names on the wire match the legacy output files
// consumed by the downstream report generator, including the historical
// "Referres" key and the spaced player-stat keys.
package gamestats

import (
	"sort"
	"strings"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// TeamRole identifies which side of the fixture a team played.
type TeamRole string

const (
	RoleHome TeamRole = "Home"
	RoleAway TeamRole = "Away"
)

// Result is the outcome recorded for one team.
type Result string

const (
	ResultWin     Result = "Win"
	ResultLoss    Result = "Loss"
	ResultForfeit Result = "Forfeit"
)

// League points awarded per outcome. A forfeit loss earns nothing.
const (
	LeaguePointsWin     = 2
	LeaguePointsLoss    = 1
	LeaguePointsForfeit = 0
)

// ResultFromLeaguePoints maps earned league points back to an outcome.
func ResultFromLeaguePoints(points int) Result {
	switch points {
	case LeaguePointsWin:
		return ResultWin
	case LeaguePointsLoss:
		return ResultLoss
	default:
		return ResultForfeit
	}
}

// Player holds one roster row of the box score.
type Player struct {
	Name           string `json:"Player Name"`
	Number         int    `json:"Player Number"`
	StartingFive   Flag   `json:"Starting Five"`
	TotalPoints    int    `json:"Total Points"`
	OnePointMade   int    `json:"1P Made Shots"`
	TwoPointMade   int    `json:"2P Made Shots"`
	ThreePointMade int    `json:"3P Made Shots"`
	TotalFouls     int    `json:"Total Fouls"`
	PersonalFouls  int    `json:"P Fouls"`
	P1Fouls        int    `json:"P1 Fouls"`
	P2Fouls        int    `json:"P2 Fouls"`
	P3Fouls        int    `json:"P3 Fouls"`
	T1Fouls        int    `json:"T1 Fouls"`
	U1Fouls        int    `json:"U1 Fouls"`
	U2Fouls        int    `json:"U2 Fouls"`
	DFouls         int    `json:"D Fouls"`
}

// WeightedFouls is the free-throw weighting of this player's fouls. The
// weighting (1xP1, 2xP2, 3xP3, 1xT1, 1xU1, 2xU2) replicates the federation's
// observed attempt accounting and must not be changed; disqualifying fouls
// award no attempts.
func (p *Player) WeightedFouls() int {
	return p.P1Fouls + 2*p.P2Fouls + 3*p.P3Fouls + p.T1Fouls + p.U1Fouls + 2*p.U2Fouls
}

// Team holds one side of the box score with its aggregates.
type Team struct {
	Role                TeamRole `json:"Team Role"`
	Name                string   `json:"Team Name"`
	ShortName           string   `json:"Team Name Short"`
	Players             []Player `json:"Players"`
	PointsWon           int      `json:"Points Won"`
	PointsLost          int      `json:"Points Lost"`
	LeaguePoints        int      `json:"League Points"`
	AttemptedFreeThrows int      `json:"Attempted Free Throws"`
	Result              Result   `json:"Result"`
}

// WeightedFouls sums the weighted foul counts of the whole roster. The
// opposing team's free-throw attempts are derived from this value.
func (t *Team) WeightedFouls() int {
	total := 0
	for i := range t.Players {
		total += t.Players[i].WeightedFouls()
	}
	return total
}

// Referee is one game official.
type Referee struct {
	Name string `json:"Referee Name"`
}

// Location is the venue, with an optional external map link.
type Location struct {
	Name     string `json:"Name"`
	MapsLink string `json:"MapsLink,omitempty"`
}

// GameEvent is one classified line of the game log. Quarter and the two
// advantage fields stay nil when the source row left them blank; downstream
// consumers distinguish "not recorded" from zero.
type GameEvent struct {
	Time            string `json:"EventTime"`
	RawText         string `json:"EventRawText"`
	Action          string `json:"EventAction"`
	Actor           Actor  `json:"EventActor"`
	Team            string `json:"EventTeam,omitempty"`
	Quarter         *int   `json:"EventQuarter"`
	Score           string `json:"EventScore,omitempty"`
	Advantage       *int   `json:"EventAdvantage"`
	AdvantageChange *int   `json:"EventAdvantageChange"`
}

// GameRecord is the normalized record for one finished game.
type GameRecord struct {
	GameID               string      `json:"GameId"`
	GameDivisionDisplay  string      `json:"GameDivisionDisplay"`
	ShortGameDisplay     string      `json:"ShortGameDisplay"`
	GameScore            string      `json:"GameScore"`
	HomeTeamName         string      `json:"HomeTeamName"`
	AwayTeamName         string      `json:"AwayTeamName"`
	FinalHomeScore       int         `json:"FinalHomeScore"`
	FinalAwayScore       int         `json:"FinalAwayScore"`
	WinnerTeamName       string      `json:"WinnerTeamName"`
	LoserTeamName        string      `json:"LoserTeamName"`
	HomeTeamLeaguePoints int         `json:"HomeTeamLeaguePoints"`
	AwayTeamLeaguePoints int         `json:"AwayTeamLeaguePoints"`
	Location             *Location   `json:"GameLocation"`
	Referees             []Referee   `json:"Referres"`
	DateTime             string      `json:"DateTime"`
	Teams                []Team      `json:"Teams"`
	Events               []GameEvent `json:"GameEvents"`
}

// ShortTeamName derives the deterministic short code used in event-log lines:
// diacritics folded, a trailing squad marker (single letter, digit or roman
// numeral) dropped, the rest uppercased. "Racing C" -> "RACING".
func ShortTeamName(name string) string {
	folded := normalize.Fold(name)
	fields := strings.Fields(folded)
	if len(fields) > 1 && isSquadMarker(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.ToUpper(strings.Join(fields, " "))
}

func isSquadMarker(token string) bool {
	if len(token) == 1 {
		return true
	}
	switch strings.ToUpper(token) {
	case "II", "III", "IV":
		return true
	}
	return false
}

// SortEvents orders events ascending by timestamp. The sort is stable so
// rows sharing a timestamp keep their source order.
func SortEvents(events []GameEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
}
