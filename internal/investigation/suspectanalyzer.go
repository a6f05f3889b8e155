package investigation

import (
	"context"

	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/extract"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/mysterydesk/gumshoe/internal/resolve"
	"github.com/sashabaranov/go-openai"
)

const defaultTrustworthiness = 50

const interviewTemperature = 0.9

// AnalyzeSuspect profiles a suspect against the known clues and the
// interview so far. Trustworthiness is coerced to an integer and clamped to
// [0,100]; non-numeric or absent values default to 50. Extraction failures
// degrade to text scraping, never to a hard failure.
func (s *Service) AnalyzeSuspect(
	ctx context.Context,
	suspect models.Suspect,
	clues []models.Clue,
	kase models.Case,
	interview []models.InterviewTurn,
	lang string,
) (*models.SuspectAnalysis, error) {
	raw, err := s.client.Complete(ctx, ai.Request{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: suspectAnalysisSystemPrompt(lang)},
			{Role: openai.ChatMessageRoleUser, Content: suspectAnalysisUserPrompt(suspect, clues, kase, interview)},
		},
		Model:       ai.ModelDefault,
		Temperature: analysisTemperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "complete suspect analysis")
	}

	table := clueTable(clues)

	payload, err := extract.JSON(raw)
	if err != nil {
		s.logger.Warn("suspect analysis fell back to text scraping", errors.SlogError(err))
		return scrapeSuspectAnalysis(raw, suspect.ID, table, lang), nil
	}

	analysis := models.SuspectAnalysis{
		SuspectID: suspect.ID,
		Trustworthiness: extract.ClampInt(
			extract.Int(payload, defaultTrustworthiness, "trustworthiness", "trust", "trust_score", "trustScore"),
			0, 100),
		Inconsistencies:    extract.Strings(payload, "inconsistencies", "contradictions"),
		SuggestedQuestions: extract.Strings(payload, "suggestedQuestions", "suggested_questions", "questions"),
	}

	if connections, ok := extract.Value(payload, "connections", "clue_connections"); ok {
		switch v := connections.(type) {
		case []any:
			analysis.Connections = mapClueConnections(v, table)
		case string:
			analysis.Connections = mentionedClueConnections(v, table)
		}
	}
	if len(analysis.SuggestedQuestions) == 0 {
		analysis.SuggestedQuestions = []string{genericNextStep(lang)}
	}

	return &analysis, nil
}

// AskSuspect runs one turn of a suspect interview and returns the raw answer
// text. This is the only operation that preserves conversational memory
// across model calls: the full prior turn history is replayed as alternating
// user/assistant messages before the new question.
func (s *Service) AskSuspect(
	ctx context.Context,
	question string,
	suspect models.Suspect,
	clues []models.Clue,
	kase models.Case,
	previous []models.InterviewTurn,
	lang string,
) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: interviewSystemPrompt(suspect, clues, kase, lang)},
	}
	for _, turn := range previous {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: turn.Question},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: turn.Answer},
		)
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: question})

	answer, err := s.client.Complete(ctx, ai.Request{
		Messages:    messages,
		Model:       ai.ModelDefault,
		Temperature: interviewTemperature,
	})
	if err != nil {
		return "", errors.Wrap(err, "complete interview question")
	}
	return answer, nil
}

func clueTable(clues []models.Clue) resolve.Table {
	candidates := make([]resolve.Candidate, len(clues))
	for i, c := range clues {
		candidates[i] = resolve.Candidate{ID: c.ID, Name: c.Title}
	}
	return resolve.NewTable(candidates)
}

// mapClueConnections resolves clue titles fuzzily the same way suspect
// names resolve in clue analysis. Unresolvable connections are discarded.
func mapClueConnections(items []any, table resolve.Table) []models.ClueConnection {
	var connections []models.ClueConnection
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := extract.String(entry, "", "clue", "clue_title", "clueTitle", "title", "name")
		id, ok := table.Match(title)
		if !ok {
			continue
		}
		connections = append(connections, models.ClueConnection{
			ClueID:         id,
			ConnectionType: extract.String(entry, "related", "connectionType", "connection_type", "type"),
			Description:    extract.String(entry, "", "description", "detail"),
		})
	}
	return connections
}

func mentionedClueConnections(text string, table resolve.Table) []models.ClueConnection {
	var connections []models.ClueConnection
	for _, id := range table.Mentions(text) {
		connections = append(connections, models.ClueConnection{
			ClueID:         id,
			ConnectionType: "mentioned",
			Description:    text,
		})
	}
	return connections
}

func scrapeSuspectAnalysis(raw, suspectID string, table resolve.Table, lang string) *models.SuspectAnalysis {
	analysis := models.SuspectAnalysis{
		SuspectID:          suspectID,
		Trustworthiness:    defaultTrustworthiness,
		SuggestedQuestions: []string{genericNextStep(lang)},
	}
	for _, id := range table.Mentions(raw) {
		analysis.Connections = append(analysis.Connections, models.ClueConnection{
			ClueID:         id,
			ConnectionType: "mentioned",
			Description:    mentionContext(raw, table, id),
		})
	}
	return &analysis
}
