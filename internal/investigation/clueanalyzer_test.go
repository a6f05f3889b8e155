package investigation_test

import (
	"context"
	"testing"

	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/stretchr/testify/require"
)

func testCaseFixture() (models.Case, []models.Clue, []models.Suspect) {
	kase := models.Case{ID: "case-manor", Title: "Death at the Manor"}
	clues := []models.Clue{
		{ID: "clue-decanter", CaseID: "case-manor", Title: "Poisoned decanter", Discovered: true},
		{ID: "clue-letter", CaseID: "case-manor", Title: "Torn letter", Discovered: true},
	}
	suspects := []models.Suspect{
		{ID: "suspect-butler", CaseID: "case-manor", Name: "Mortimer the butler"},
		{ID: "suspect-heir", CaseID: "case-manor", Name: "Lucinda Ashworth", Guilty: true},
	}
	return kase, clues, suspects
}

func TestService_AnalyzeClue(t *testing.T) {
	kase, clues, suspects := testCaseFixture()

	response := "```json\n" + `{
		"summary": "The decanter was refilled after dinner.",
		"connections": [
			{"suspect": "Lucinda", "connectionType": "opportunity", "description": "Poured the drinks."},
			{"suspect": "Inspector Graves", "connectionType": "unknown", "description": "Not in this case."}
		],
		"nextSteps": ["Test the stopper for prints"]
	}` + "\n```"
	service := newTestService(t, &fakeCompleter{response: response}, true)

	analysis, err := service.AnalyzeClue(context.Background(), clues[0], suspects, kase, clues, "en")
	require.NoError(t, err)

	require.Equal(t, "The decanter was refilled after dinner.", analysis.Summary)
	require.Equal(t, []string{"Test the stopper for prints"}, analysis.NextSteps)

	// The unknown suspect connection is discarded, the fuzzy one resolves.
	require.Len(t, analysis.Connections, 1)
	require.Equal(t, "suspect-heir", analysis.Connections[0].SuspectID)
	require.Equal(t, "opportunity", analysis.Connections[0].ConnectionType)
}

func TestService_AnalyzeClueProseConnections(t *testing.T) {
	t.Parallel()

	kase, clues, suspects := testCaseFixture()
	response := `{
		"summary": "Someone handled the decanter.",
		"connections": "This implicates Mortimer the butler more than anyone."
	}`
	service := newTestService(t, &fakeCompleter{response: response}, true)

	analysis, err := service.AnalyzeClue(context.Background(), clues[0], suspects, kase, clues, "en")
	require.NoError(t, err)

	require.Len(t, analysis.Connections, 1)
	require.Equal(t, "suspect-butler", analysis.Connections[0].SuspectID)
	require.Equal(t, "mentioned", analysis.Connections[0].ConnectionType)
	require.NotEmpty(t, analysis.NextSteps, "a generic next step fills the gap")
}

func TestService_AnalyzeClueScrapesUnparseableResponse(t *testing.T) {
	t.Parallel()

	kase, clues, suspects := testCaseFixture()
	response := "Summary: the poison entered through the decanter.\n" +
		"Lucinda Ashworth refilled it shortly before the toast.\n\n" +
		"Next steps:\n- Ask Lucinda Ashworth about the refill\n- Check the cellar inventory\n"
	service := newTestService(t, &fakeCompleter{response: response}, true)

	analysis, err := service.AnalyzeClue(context.Background(), clues[0], suspects, kase, clues, "en")
	require.NoError(t, err)

	require.Equal(t, "the poison entered through the decanter.", analysis.Summary)
	require.Contains(t, analysis.NextSteps, "Ask Lucinda Ashworth about the refill")
	require.Contains(t, analysis.NextSteps, "Check the cellar inventory")

	require.Len(t, analysis.Connections, 1)
	require.Equal(t, "suspect-heir", analysis.Connections[0].SuspectID)
	require.Contains(t, analysis.Connections[0].Description, "Lucinda Ashworth")
}

func TestService_AnalyzeClueTransportError(t *testing.T) {
	t.Parallel()

	kase, clues, suspects := testCaseFixture()
	service := newTestService(t, &fakeCompleter{err: ai.ErrTransport}, true)

	_, err := service.AnalyzeClue(context.Background(), clues[0], suspects, kase, clues, "en")
	require.ErrorIs(t, err, ai.ErrTransport)
}
