package investigation_test

import (
	"context"
	"testing"

	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

func TestService_AnalyzeSuspectTrustworthiness(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     int
	}{
		{
			name:     "in range",
			response: `{"trustworthiness": 72}`,
			want:     72,
		},
		{
			name:     "numeric string",
			response: `{"trustworthiness": "33"}`,
			want:     33,
		},
		{
			name:     "above range clamps to 100",
			response: `{"trustworthiness": 150}`,
			want:     100,
		},
		{
			name:     "below range clamps to 0",
			response: `{"trustworthiness": -20}`,
			want:     0,
		},
		{
			name:     "non-numeric defaults to 50",
			response: `{"trustworthiness": "quite shifty"}`,
			want:     50,
		},
		{
			name:     "absent defaults to 50",
			response: `{"inconsistencies": []}`,
			want:     50,
		},
		{
			name:     "unparseable response defaults to 50",
			response: "He seems nervous but cooperative.",
			want:     50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			kase, clues, suspects := testCaseFixture()
			service := newTestService(t, &fakeCompleter{response: tt.response}, true)

			analysis, err := service.AnalyzeSuspect(context.Background(), suspects[0], clues, kase, nil, "en")
			require.NoError(t, err)
			require.Equal(t, tt.want, analysis.Trustworthiness)
			require.Equal(t, "suspect-butler", analysis.SuspectID)
		})
	}
}

func TestService_AnalyzeSuspectConnections(t *testing.T) {
	t.Parallel()

	kase, clues, suspects := testCaseFixture()
	response := `{
		"trustworthiness": 40,
		"inconsistencies": ["Changed his account of the evening twice"],
		"connections": [
			{"clue": "decanter", "connectionType": "handled", "description": "Served from it."},
			{"clue": "the missing crown jewels", "description": "Not one of ours."}
		],
		"suggestedQuestions": ["Who refilled the decanter?"]
	}`
	service := newTestService(t, &fakeCompleter{response: response}, true)

	analysis, err := service.AnalyzeSuspect(context.Background(), suspects[0], clues, kase, nil, "en")
	require.NoError(t, err)

	require.Equal(t, []string{"Changed his account of the evening twice"}, analysis.Inconsistencies)
	require.Equal(t, []string{"Who refilled the decanter?"}, analysis.SuggestedQuestions)
	require.Len(t, analysis.Connections, 1)
	require.Equal(t, "clue-decanter", analysis.Connections[0].ClueID)
	require.Equal(t, "handled", analysis.Connections[0].ConnectionType)
}

func TestService_AskSuspectReplaysHistory(t *testing.T) {
	t.Parallel()

	kase, clues, suspects := testCaseFixture()
	completer := &fakeCompleter{response: "I was in the wine cellar all evening."}
	service := newTestService(t, completer, true)

	previous := []models.InterviewTurn{
		{ID: "turn-1", Question: "Where were you at nine?", Answer: "Serving dinner."},
		{ID: "turn-2", Question: "Who poured the port?", Answer: "I did, as always."},
	}

	answer, err := service.AskSuspect(context.Background(), "Did you leave the room?",
		suspects[0], clues, kase, previous, "en")
	require.NoError(t, err)
	require.Equal(t, "I was in the wine cellar all evening.", answer)

	require.Len(t, completer.requests, 1)
	messages := completer.requests[0].Messages
	// System persona, two replayed turns, then the new question.
	require.Len(t, messages, 6)
	require.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	require.Equal(t, "Where were you at nine?", messages[1].Content)
	require.Equal(t, openai.ChatMessageRoleAssistant, messages[2].Role)
	require.Equal(t, "Serving dinner.", messages[2].Content)
	require.Equal(t, "Did you leave the room?", messages[5].Content)
	require.Equal(t, openai.ChatMessageRoleUser, messages[5].Role)
}
