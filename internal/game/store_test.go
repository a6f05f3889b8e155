package game_test

import (
	"testing"

	"github.com/mysterydesk/gumshoe/internal/game"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/stretchr/testify/require"
)

func TestStore_DispatchNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	store := game.NewStore(fixtureState())

	var seen []models.AppState
	store.Subscribe(func(state models.AppState) {
		seen = append(seen, state)
	})

	next := store.Dispatch(game.DiscoverClue{ClueID: "clue-decanter"})

	require.Len(t, seen, 1)
	require.Equal(t, next, seen[0])
	require.Equal(t, []string{"clue-decanter"}, seen[0].GameState.DiscoveredClues)
}

func TestStore_StateReturnsIsolatedCopy(t *testing.T) {
	t.Parallel()

	store := game.NewStore(fixtureState())

	leaked := store.State()
	leaked.Clues[0].Discovered = true
	leaked.GameState.DiscoveredClues = append(leaked.GameState.DiscoveredClues, "clue-decanter")
	leaked.GameState.ClueAnalyses["clue-decanter"] = models.ClueAnalysis{Summary: "tampered"}

	fresh := store.State()
	require.False(t, fresh.Clues[0].Discovered)
	require.Empty(t, fresh.GameState.DiscoveredClues)
	require.Empty(t, fresh.GameState.ClueAnalyses)
}

func TestStore_ResetRevertsToSeed(t *testing.T) {
	t.Parallel()

	store := game.NewStore(fixtureState())
	store.Dispatch(game.DiscoverClue{ClueID: "clue-decanter"})
	store.Dispatch(game.SolveCase{CaseID: "case-manor"})

	next := store.Reset()

	require.Empty(t, next.GameState.DiscoveredClues)
	require.Empty(t, next.GameState.CasesSolved)
	require.Zero(t, next.GameState.GameProgress)
	kase, _ := next.CaseByID("case-manor")
	require.False(t, kase.Solved)
}

func TestStore_SeedIsNotSharedWithCaller(t *testing.T) {
	t.Parallel()

	seed := fixtureState()
	store := game.NewStore(seed)

	seed.Clues[0].Discovered = true

	state := store.State()
	require.False(t, state.Clues[0].Discovered)
}
