package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
	{"GameId": "100", "DivisionName": "Division 2 Hommes", "Status": "Finished", "ScheduledDate": "2024-10-12 18:30"},
	{"GameId": "101", "DivisionName": "Division 2 Hommes", "Status": "NotStarted", "ScheduledDate": "2024-11-02 18:30"},
	{"GameId": "102", "DivisionName": "Division 3 Hommes", "Status": "Finished", "ScheduledDate": "2024-10-19 15:00"},
	{"GameId": "103", "DivisionName": "Division 3 Hommes", "Status": "InProgress", "ScheduledDate": "2024-10-26 15:00"}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gameScheduleDB.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	catalog, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)
	require.Len(t, catalog.Games, 4)
	assert.Equal(t, "100", catalog.Games[0].GameID)
	assert.Equal(t, StatusFinished, catalog.Games[0].Status)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	_, err := Load(writeCatalog(t, "{not json"))
	assert.Error(t, err)
}

func TestFinished(t *testing.T) {
	catalog, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	finished := catalog.Finished()
	require.Len(t, finished, 2)
	assert.Equal(t, "100", finished[0].GameID)
	assert.Equal(t, "102", finished[1].GameID)
}

func TestByDivision(t *testing.T) {
	catalog, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	games := catalog.ByDivision("Division 3 Hommes")
	require.Len(t, games, 2)
	assert.Equal(t, "102", games[0].GameID)

	assert.Empty(t, catalog.ByDivision("Division 1 Dames"))
}

func TestFind(t *testing.T) {
	catalog, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	game, ok := catalog.Find("102")
	require.True(t, ok)
	assert.Equal(t, "Division 3 Hommes", game.DivisionName)

	_, ok = catalog.Find("999")
	assert.False(t, ok)
}

func TestSummary(t *testing.T) {
	catalog, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	summary := catalog.Summary()
	require.Len(t, summary, 2)

	d2 := summary["Division 2 Hommes"]
	assert.Equal(t, 2, d2.Total)
	assert.Equal(t, 1, d2.Finished)
	assert.Equal(t, 1, d2.NotStarted)
	assert.Equal(t, 0, d2.InProgress)

	d3 := summary["Division 3 Hommes"]
	assert.Equal(t, 2, d3.Total)
	assert.Equal(t, 1, d3.Finished)
	assert.Equal(t, 1, d3.InProgress)
}
