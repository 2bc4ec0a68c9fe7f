package extract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/classify"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

func loadFixture(t *testing.T, name string) *goquery.Document {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func testDeps() Deps {
	return Deps{
		Names: normalize.New(normalize.AliasMap{
			"Jean Dupont": {"DUPONT Jean"},
		}),
		Classifier: classify.NewClassifier(classify.DefaultCatalog()),
	}
}

func TestAssembleNormalGame(t *testing.T) {
	doc := loadFixture(t, "game_normal.html")
	record, err := Assemble(doc, "4321", testDeps())
	require.NoError(t, err)

	assert.Equal(t, "4321", record.GameID)
	assert.Equal(t, "Division 2 Hommes", record.GameDivisionDisplay)
	assert.Equal(t, "RACING vs SCHIEREN", record.ShortGameDisplay)
	assert.Equal(t, "Racing C", record.HomeTeamName)
	assert.Equal(t, "Schieren B", record.AwayTeamName)
	assert.Equal(t, 85, record.FinalHomeScore)
	assert.Equal(t, 78, record.FinalAwayScore)
	assert.Equal(t, "Racing C", record.WinnerTeamName)
	assert.Equal(t, "Schieren B", record.LoserTeamName)
	assert.Equal(t, gamestats.LeaguePointsWin, record.HomeTeamLeaguePoints)
	assert.Equal(t, gamestats.LeaguePointsLoss, record.AwayTeamLeaguePoints)
	assert.Equal(t, "2024-10-12 18:30", record.DateTime)

	require.NotNil(t, record.Location)
	assert.Equal(t, "Hall Omnisports Kirchberg", record.Location.Name)
	assert.Contains(t, record.Location.MapsLink, "maps.example.com")

	require.Len(t, record.Referees, 2)
	assert.Equal(t, "Paul Schmit", record.Referees[0].Name)
}

func TestAssembleTeams(t *testing.T) {
	doc := loadFixture(t, "game_normal.html")
	record, err := Assemble(doc, "4321", testDeps())
	require.NoError(t, err)

	require.Len(t, record.Teams, 2)
	home, away := record.Teams[0], record.Teams[1]

	assert.Equal(t, gamestats.RoleHome, home.Role)
	assert.Equal(t, "Racing C", home.Name)
	assert.Equal(t, "RACING", home.ShortName)
	assert.Equal(t, 85, home.PointsWon)
	assert.Equal(t, 78, home.PointsLost)
	assert.Equal(t, gamestats.ResultWin, home.Result)

	assert.Equal(t, gamestats.RoleAway, away.Role)
	assert.Equal(t, "SCHIEREN", away.ShortName)
	assert.Equal(t, gamestats.ResultLoss, away.Result)

	require.Len(t, home.Players, 3)
	dupont := home.Players[0]
	assert.Equal(t, "Jean Dupont", dupont.Name, "roster name goes through the alias map")
	assert.Equal(t, 4, dupont.Number)
	assert.True(t, bool(dupont.StartingFive))
	assert.Equal(t, 25, dupont.TotalPoints)
	assert.Equal(t, 2, dupont.PersonalFouls)
	assert.Equal(t, 2, dupont.TotalFouls)

	bench := home.Players[2]
	assert.False(t, bool(bench.StartingFive))
	assert.Equal(t, 1, bench.T1Fouls)

	// Free-throw attempts are cross-assigned from the opponent's weighted
	// fouls: home committed 6 weighted, away 3 (THILL's D foul weighs 0).
	assert.Equal(t, 6, home.WeightedFouls())
	assert.Equal(t, 3, away.WeightedFouls())
	assert.Equal(t, 3, home.AttemptedFreeThrows)
	assert.Equal(t, 6, away.AttemptedFreeThrows)
}

func TestAssembleEvents(t *testing.T) {
	doc := loadFixture(t, "game_normal.html")
	record, err := Assemble(doc, "4321", testDeps())
	require.NoError(t, err)

	events := record.Events
	require.Len(t, events, 7)

	// Rows come out sorted by timestamp regardless of page order.
	for i := 1; i < len(events); i++ {
		assert.LessOrEqual(t, events[i-1].Time, events[i].Time)
	}

	lineup := events[0]
	assert.Equal(t, "00:01:00", lineup.Time)
	assert.Equal(t, "Starting line-up added", lineup.Action)
	assert.Equal(t, gamestats.PlayerActor("Jean Dupont"), lineup.Actor, "event actor goes through the alias map")
	assert.Nil(t, lineup.Quarter)
	assert.Nil(t, lineup.Advantage)

	three := events[1]
	assert.Equal(t, "3P Points Added", three.Action)
	assert.Equal(t, "RACING", three.Team)
	require.NotNil(t, three.AdvantageChange)
	assert.Equal(t, 3, *three.AdvantageChange)
	require.NotNil(t, three.Advantage)
	assert.Equal(t, 3, *three.Advantage)
	assert.Equal(t, "3 : 0", three.Score)

	awayBasket := events[3]
	assert.Equal(t, "2P Points Added", awayBasket.Action)
	require.NotNil(t, awayBasket.AdvantageChange)
	assert.Equal(t, -2, *awayBasket.AdvantageChange)

	timeout := events[4]
	assert.Equal(t, "Timeout", timeout.Action)
	assert.Equal(t, gamestats.CoachActor(), timeout.Actor)
	require.NotNil(t, timeout.Quarter)
	assert.Equal(t, 2, *timeout.Quarter)
	assert.Nil(t, timeout.Advantage)

	unknown := events[5]
	assert.Equal(t, "Unknown", unknown.Action)
	assert.Equal(t, gamestats.UnknownActor(), unknown.Actor)
	assert.Equal(t, "crowd noise recorded", unknown.RawText)

	final := events[6]
	assert.Equal(t, "Signal End Of Game", final.Action)
	assert.Equal(t, gamestats.SystemActor(), final.Actor)
}

func TestAssembleForfeit(t *testing.T) {
	doc := loadFixture(t, "game_forfeit.html")
	record, err := Assemble(doc, "5678", testDeps())
	require.NoError(t, err)

	assert.Equal(t, 0, record.FinalHomeScore)
	assert.Equal(t, 20, record.FinalAwayScore)
	assert.Equal(t, "Etzella", record.WinnerTeamName)
	assert.Equal(t, gamestats.LeaguePointsForfeit, record.HomeTeamLeaguePoints)
	assert.Equal(t, gamestats.LeaguePointsWin, record.AwayTeamLeaguePoints)

	require.Len(t, record.Teams, 2)
	assert.Equal(t, gamestats.ResultForfeit, record.Teams[0].Result)
	assert.Equal(t, gamestats.ResultWin, record.Teams[1].Result)
	assert.Empty(t, record.Teams[0].Players)
	assert.Empty(t, record.Teams[1].Players)

	require.Len(t, record.Events, 1)
	forfeit := record.Events[0]
	assert.Equal(t, "Forfeit", forfeit.Action)
	assert.Equal(t, gamestats.SystemActor(), forfeit.Actor)
	assert.Equal(t, "2024-10-19 15:00", forfeit.Time)
}

func TestAssembleNotStarted(t *testing.T) {
	doc := loadFixture(t, "game_not_started.html")
	_, err := Assemble(doc, "9999", testDeps())
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestAssembleMissingDescription(t *testing.T) {
	doc := docFromString(t, "<html><body><p>nothing here</p></body></html>")
	_, err := Assemble(doc, "1", testDeps())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotStarted)
}

func TestExtractDescriptionMalformedScore(t *testing.T) {
	doc := docFromString(t, `<div id="gameDescription">
		<span class="home-team">A</span>
		<span class="away-team">B</span>
		<span class="score">eighty five</span>
	</div>`)
	_, err := ExtractDescription(doc)
	require.Error(t, err)
}

func TestExtractDateTime(t *testing.T) {
	doc := docFromString(t, `<div id="gameDate">02/01/2025 - 20h15</div>`)
	got, err := ExtractDateTime(doc)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02 20:15", got)

	doc = docFromString(t, `<div id="gameDate">sometime soon</div>`)
	_, err = ExtractDateTime(doc)
	assert.Error(t, err)
}

func TestRecordRoundTrip(t *testing.T) {
	doc := loadFixture(t, "game_normal.html")
	record, err := Assemble(doc, "4321", testDeps())
	require.NoError(t, err)

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	// Legacy wire keys survive serialization.
	assert.Contains(t, string(raw), `"Referres"`)
	assert.Contains(t, string(raw), `"Starting Five":"true"`)
	assert.Contains(t, string(raw), `"GameId":"4321"`)

	var decoded gamestats.GameRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, record.GameID, decoded.GameID)
	assert.Equal(t, record.FinalHomeScore, decoded.FinalHomeScore)
	assert.Equal(t, record.FinalAwayScore, decoded.FinalAwayScore)
	assert.Len(t, decoded.Events, len(record.Events))
	assert.Equal(t, record.Teams[0].Players[0].Name, decoded.Teams[0].Players[0].Name)
}
