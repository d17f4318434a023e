package gui

import (
	"testing"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	r, errs := parseRange("1", "151")
	require.Empty(t, errs)
	require.Equal(t, models.IDRange{Start: 1, End: 151}, r)

	_, errs = parseRange("", "10")
	require.Len(t, errs, 1)

	_, errs = parseRange("x", "y")
	require.Len(t, errs, 2)

	_, errs = parseRange("0", "10")
	require.Len(t, errs, 1)

	_, errs = parseRange("10", "9")
	require.Len(t, errs, 1)
}

func TestPlanSummary(t *testing.T) {
	s := planSummary(Plan{Kinds: []models.Kind{models.KindMove}, Range: models.IDRange{Start: 5, End: 9}})
	require.Contains(t, s, "move: 5 - 9 (5 ids)")

	s = planSummary(Plan{All: true, Kinds: models.Kinds})
	require.Contains(t, s, "pokemon: 1 - 151")
	require.Contains(t, s, "move: 1 - 100")
	require.Contains(t, s, "item: 1 - 50")
}

func TestDatabaseSummaryHidesPasswords(t *testing.T) {
	s := databaseSummary(&models.DatabaseConfig{DBType: "postgres", ConnectionString: "postgres://dex:hunter2@db:5432/dex"})
	require.NotContains(t, s, "hunter2")
	require.Contains(t, s, "Host: db, Port: 5432")

	s = databaseSummary(&models.DatabaseConfig{DBType: "mysql", ConnectionString: "dex:hunter2@tcp(db:3306)/dex"})
	require.NotContains(t, s, "hunter2")
	require.Contains(t, s, "DB Name: dex")

	s = databaseSummary(&models.DatabaseConfig{DBType: "sqlite", ConnectionString: "file:local-dex.db?cache=shared"})
	require.Contains(t, s, "local-dex.db")
}
