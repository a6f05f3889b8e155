package investigation

import (
	"context"
	"log/slog"

	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/extract"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/sashabaranov/go-openai"
)

const adjudicationTemperature = 0.4

// Validation errors surfaced to the player distinct from model and
// transport failures. All of them fail fast before any model call.
var (
	ErrUnknownSuspect = errors.NewSentinel("accused suspect not found in case")
	ErrNoGuilty       = errors.NewSentinel("case has no guilty suspect configured")
	ErrNoEvidence     = errors.NewSentinel("no evidence selected for the accusation")
)

// SolveAttempt is a player's accusation against a case.
type SolveAttempt struct {
	AccusedSuspectID string
	EvidenceIDs      []string
	Reasoning        string
	Language         string
}

// EvaluateSolution grades a solve attempt. The model's verdict is advisory:
// the final solved flag requires both the model's self-reported correctness
// and that the accused id matches the stored guilty suspect, so a model
// praising a wrong answer cannot solve the case. When the response yields no
// parseable JSON, a deterministic templated narrative stands in and the
// verdict comes from the stored ground truth alone.
func (s *Service) EvaluateSolution(
	ctx context.Context,
	kase models.Case,
	suspects []models.Suspect,
	clues []models.Clue,
	attempt SolveAttempt,
) (*models.CaseSolution, error) {
	var accused, guilty *models.Suspect
	for i := range suspects {
		if suspects[i].ID == attempt.AccusedSuspectID {
			accused = &suspects[i]
		}
		if suspects[i].Guilty {
			guilty = &suspects[i]
		}
	}
	if accused == nil {
		return nil, errors.Wrap(ErrUnknownSuspect, "resolve accused suspect",
			slog.String("suspect_id", attempt.AccusedSuspectID))
	}
	if guilty == nil {
		return nil, errors.Wrap(ErrNoGuilty, "resolve guilty suspect", slog.String("case_id", kase.ID))
	}
	if len(attempt.EvidenceIDs) == 0 {
		return nil, errors.Wrap(ErrNoEvidence, "check evidence selection", slog.String("case_id", kase.ID))
	}

	evidence := make([]models.Clue, 0, len(attempt.EvidenceIDs))
	for _, id := range attempt.EvidenceIDs {
		for _, c := range clues {
			if c.ID == id {
				evidence = append(evidence, c)
				break
			}
		}
	}

	raw, err := s.client.Complete(ctx, ai.Request{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: solutionSystemPrompt(attempt.Language)},
			{Role: openai.ChatMessageRoleUser, Content: solutionUserPrompt(kase, suspects, evidence, *accused, *guilty, attempt.Reasoning)},
		},
		Model:       ai.ModelPreview,
		Temperature: adjudicationTemperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "complete solution adjudication")
	}

	// The authoritative check. The model never overrules stored ground truth.
	accusedCorrectly := accused.ID == guilty.ID

	solution := models.CaseSolution{
		CulpritID:   accused.ID,
		Reasoning:   attempt.Reasoning,
		EvidenceIDs: attempt.EvidenceIDs,
	}

	payload, err := extract.JSON(raw)
	if err != nil {
		s.logger.Warn("solution adjudication fell back to templated narrative", errors.SlogError(err))
		solution.Solved = accusedCorrectly
		solution.Narrative = solvedNarrative(attempt.Language, accusedCorrectly, guilty.Name)
		return &solution, nil
	}

	modelVerdict := extract.Bool(payload, false, "solved", "correct", "is_correct", "isCorrect", "verdict.correct")
	solution.Solved = modelVerdict && accusedCorrectly
	solution.Narrative = extract.String(payload, solvedNarrative(attempt.Language, accusedCorrectly, guilty.Name),
		"narrative", "verdict.narrative", "feedback", "explanation")

	return &solution, nil
}
