package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/mysterydesk/gumshoe/internal/repositories"
	"github.com/mysterydesk/gumshoe/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestAppStateRepository_SaveAndLoad(t *testing.T) {
	dbs := newTestDB(t)
	logger := testhelpers.NewLogger(io.Discard)
	repo := repositories.NewAppStateRepository(dbs, logger)
	ctx := context.Background()

	state := models.AppState{
		Cases: []models.Case{
			{ID: "case-manor", Title: "Death at the Manor", Difficulty: models.DifficultyMedium},
		},
		Clues: []models.Clue{
			{ID: "clue-decanter", CaseID: "case-manor", Title: "Poisoned decanter", Discovered: true, Examined: true},
		},
		Suspects: []models.Suspect{
			{ID: "suspect-heir", CaseID: "case-manor", Name: "Lucinda Ashworth", Guilty: true, Interviewed: true},
		},
		GameState: models.GameState{
			ActiveCaseID:        "case-manor",
			DiscoveredClues:     []string{"clue-decanter"},
			ExaminedClues:       []string{"clue-decanter"},
			InterviewedSuspects: []string{"suspect-heir"},
			GameProgress:        99,
			ClueAnalyses: map[string]models.ClueAnalysis{
				"clue-decanter": {
					Summary: "Tampered after dinner.",
					Connections: []models.SuspectConnection{
						{SuspectID: "suspect-heir", ConnectionType: "opportunity", Description: "Poured the drinks."},
					},
					NextSteps: []string{"Check the cellar"},
				},
			},
			SuspectInterviews: map[string][]models.InterviewTurn{
				"suspect-heir": {
					{ID: "turn-1", Question: "Where were you?", Answer: "In the library.", Custom: true},
				},
			},
		},
	}

	require.NoError(t, repo.Save(ctx, "token-1", state))

	loaded, err := repo.Load(ctx, "token-1")
	require.NoError(t, err)
	require.Equal(t, &state, loaded, "state should round-trip unchanged")

	// Saving again replaces the blob.
	state.GameState.GameProgress = 100
	require.NoError(t, repo.Save(ctx, "token-1", state))

	loaded, err = repo.Load(ctx, "token-1")
	require.NoError(t, err)
	require.Equal(t, 100, loaded.GameState.GameProgress)
}

func TestAppStateRepository_LoadMissingToken(t *testing.T) {
	dbs := newTestDB(t)
	repo := repositories.NewAppStateRepository(dbs, testhelpers.NewLogger(io.Discard))

	_, err := repo.Load(context.Background(), "token-unknown")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAppStateRepository_LoadInitialisesEmptyMaps(t *testing.T) {
	dbs := newTestDB(t)
	repo := repositories.NewAppStateRepository(dbs, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "token-2", models.AppState{}))

	loaded, err := repo.Load(ctx, "token-2")
	require.NoError(t, err)
	require.NotNil(t, loaded.GameState.ClueAnalyses)
	require.NotNil(t, loaded.GameState.SuspectInterviews)
}

func TestAppStateRepository_Delete(t *testing.T) {
	dbs := newTestDB(t)
	repo := repositories.NewAppStateRepository(dbs, testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "token-3", models.AppState{}))
	require.NoError(t, repo.Delete(ctx, "token-3"))

	_, err := repo.Load(ctx, "token-3")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}
