package main

import (
	"io"
	"net/http"
	"testing"

	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/stretchr/testify/require"
)

func Test_application_state(t *testing.T) {
	ts := startTestServer(t, io.Discard, testLookupEnv)
	state := ts.Bootstrap(t)

	require.Equal(t, "en", state.Language)
	require.Len(t, state.Cases, 1)
	require.Equal(t, "case-blackwood", state.Cases[0].ID)
	require.Equal(t, "Death at Blackwood Hall", state.Cases[0].Title)
	require.Len(t, state.Clues, 4)
	require.Len(t, state.Suspects, 3)
	require.Empty(t, state.GameState.ActiveCaseID)
	require.Zero(t, state.GameState.GameProgress)

	// Ground truth stays on the server side of the wire in spirit, but the
	// state payload is the single source for the client, so the flags ride
	// along. Exactly one suspect is guilty.
	guilty := 0
	for _, suspect := range state.Suspects {
		if suspect.Guilty {
			guilty++
		}
	}
	require.Equal(t, 1, guilty)
}

func Test_application_investigationFlow(t *testing.T) {
	ts := startTestServer(t, io.Discard, testLookupEnv)
	ts.Bootstrap(t)

	var state models.AppState

	status := ts.PostJSON(t, "/api/cases/case-blackwood/activate", nil, &state)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "case-blackwood", state.GameState.ActiveCaseID)

	status = ts.PostJSON(t, "/api/clues/clue-decanter/discover", nil, &state)
	require.Equal(t, http.StatusOK, status)
	clue, ok := state.ClueByID("clue-decanter")
	require.True(t, ok)
	require.True(t, clue.Discovered)
	require.Equal(t, []string{"clue-decanter"}, state.GameState.DiscoveredClues)
	require.Positive(t, state.GameState.GameProgress)

	// Examining does not require discovery.
	status = ts.PostJSON(t, "/api/clues/clue-letter/examine", nil, &state)
	require.Equal(t, http.StatusOK, status)
	clue, ok = state.ClueByID("clue-letter")
	require.True(t, ok)
	require.True(t, clue.Examined)
	require.False(t, clue.Discovered)

	// Language swap keeps progress and translates the text.
	status = ts.PostJSON(t, "/api/language", map[string]string{"language": "fi"}, &state)
	require.Equal(t, http.StatusOK, status)
	kase, ok := state.CaseByID("case-blackwood")
	require.True(t, ok)
	require.Equal(t, "Kuolema Blackwood Hallissa", kase.Title)
	clue, _ = state.ClueByID("clue-decanter")
	require.True(t, clue.Discovered)

	// Reset clears progress but keeps the session's language.
	status = ts.PostJSON(t, "/api/state/reset", nil, &state)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, state.GameState.DiscoveredClues)
	require.Zero(t, state.GameState.GameProgress)
	kase, ok = state.CaseByID("case-blackwood")
	require.True(t, ok)
	require.Equal(t, "Kuolema Blackwood Hallissa", kase.Title)
}

func Test_application_clientErrors(t *testing.T) {
	ts := startTestServer(t, io.Discard, testLookupEnv)

	// State-changing requests without the CSRF token are rejected.
	status := ts.PostJSON(t, "/api/clues/clue-decanter/discover", nil, nil)
	require.Equal(t, http.StatusBadRequest, status)

	ts.Bootstrap(t)

	require.Equal(t, http.StatusNotFound, ts.PostJSON(t, "/api/clues/clue-nonexistent/discover", nil, nil))
	require.Equal(t, http.StatusNotFound, ts.PostJSON(t, "/api/cases/case-nonexistent/activate", nil, nil))
	require.Equal(t, http.StatusUnprocessableEntity,
		ts.PostJSON(t, "/api/language", map[string]string{"language": "sv"}, nil))
}
