package investigation

import (
	"context"
	"log/slog"
	"time"

	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/extract"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/mysterydesk/gumshoe/internal/random"
	"github.com/mysterydesk/gumshoe/internal/resolve"
	"github.com/sashabaranov/go-openai"
)

// GenerationParams steer the case generator. Theme, Location, and Era are
// optional; an empty value means no constraint.
type GenerationParams struct {
	Difficulty models.Difficulty
	Theme      string
	Location   string
	Era        string
	Language   string
}

const generationTemperature = 0.8

// GenerateCase asks the model for a complete mystery and maps it into a
// GeneratedCase with fresh ids. Exactly one suspect comes back guilty
// regardless of how incomplete the model output was.
//
// When no JSON can be extracted from the response, production mode
// propagates the error and development mode falls back to a small
// predetermined sample case.
func (s *Service) GenerateCase(ctx context.Context, params GenerationParams) (*models.GeneratedCase, error) {
	if params.Difficulty == "" {
		params.Difficulty = models.DifficultyMedium
	}

	raw, err := s.client.Complete(ctx, ai.Request{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: caseGenerationSystemPrompt(params.Language)},
			{Role: openai.ChatMessageRoleUser, Content: caseGenerationUserPrompt(params)},
		},
		Model:       ai.ModelPreview,
		Temperature: generationTemperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "complete case generation")
	}

	payload, err := extract.JSON(raw)
	if err != nil {
		if s.production {
			return nil, errors.Wrap(err, "extract generated case",
				slog.String("difficulty", string(params.Difficulty)))
		}
		s.logger.Warn("case generation fell back to sample case", errors.SlogError(err))
		return sampleCase(params)
	}

	return s.mapGeneratedCase(payload, params)
}

func (s *Service) mapGeneratedCase(payload map[string]any, params GenerationParams) (*models.GeneratedCase, error) {
	caseID, err := random.ID("case")
	if err != nil {
		return nil, errors.Wrap(err, "generate case id")
	}

	difficulty := parseDifficulty(extract.String(payload, string(params.Difficulty),
		"difficulty", "case.difficulty", "case_details.difficulty"))

	kase := models.Case{
		ID:    caseID,
		Title: extract.String(payload, "Untitled Case", "title", "case.title", "case_details.title", "name"),
		Description: extract.String(payload, "",
			"description", "case.description", "case_details.description", "overview"),
		Summary:      extract.String(payload, "", "summary", "case.summary", "case_details.summary"),
		Difficulty:   difficulty,
		Location:     extract.String(payload, "", "location", "case.location", "case_details.location", "setting"),
		DateTime:     extract.String(payload, time.Now().UTC().Format(time.RFC3339), "dateTime", "date_time", "case.dateTime", "date"),
		ImageURL:     extract.String(payload, "", "imageUrl", "image_url"),
		LLMGenerated: true,
	}

	clues, err := mapGeneratedClues(payload, caseID)
	if err != nil {
		return nil, err
	}
	suspects, err := mapGeneratedSuspects(payload, caseID)
	if err != nil {
		return nil, err
	}
	if len(suspects) == 0 {
		return nil, errors.New("generated case has no suspects", slog.String("case_title", kase.Title))
	}

	solutionText, culpritName := extractSolution(payload)
	markGuilty(suspects, culpritName, solutionText)

	return &models.GeneratedCase{
		Case:     kase,
		Clues:    clues,
		Suspects: suspects,
		Solution: solutionText,
	}, nil
}

func mapGeneratedClues(payload map[string]any, caseID string) ([]models.Clue, error) {
	var clues []models.Clue
	for _, item := range extract.Slice(payload, "clues", "evidence", "case.clues") {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, err := random.ID("clue")
		if err != nil {
			return nil, errors.Wrap(err, "generate clue id")
		}
		clues = append(clues, models.Clue{
			ID:          id,
			CaseID:      caseID,
			Title:       extract.String(entry, "Unnamed clue", "title", "name"),
			Description: extract.String(entry, "", "description", "detail", "details"),
			Location:    extract.String(entry, "", "location", "found_at", "foundAt"),
			Type:        parseClueType(extract.String(entry, "", "type", "clue_type", "clueType")),
			Relevance:   parseRelevance(extract.String(entry, "", "relevance", "importance")),
		})
	}
	return clues, nil
}

func mapGeneratedSuspects(payload map[string]any, caseID string) ([]models.Suspect, error) {
	var suspects []models.Suspect
	for _, item := range extract.Slice(payload, "suspects", "characters", "case.suspects") {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, err := random.ID("suspect")
		if err != nil {
			return nil, errors.Wrap(err, "generate suspect id")
		}
		suspects = append(suspects, models.Suspect{
			ID:          id,
			CaseID:      caseID,
			Name:        extract.String(entry, "Unknown suspect", "name", "suspect_name"),
			Description: extract.String(entry, "", "description"),
			Background:  extract.String(entry, "", "background", "backstory"),
			Motive:      extract.String(entry, "", "motive", "possible_motive"),
			Alibi:       extract.String(entry, "", "alibi"),
		})
	}
	return suspects, nil
}

// extractSolution pulls the solution text and the explicit culprit name out
// of the payload. The solution may be an object or a bare string.
func extractSolution(payload map[string]any) (text string, culpritName string) {
	value, ok := extract.Value(payload, "solution", "answer", "case_solution")
	if !ok {
		return "", ""
	}
	switch v := value.(type) {
	case string:
		return v, ""
	case map[string]any:
		text = extract.String(v, "", "reasoning", "narrative", "explanation", "text")
		culpritName = extract.String(v, "", "culprit", "culprit_name", "guilty", "guilty_suspect")
		return text, culpritName
	}
	return "", ""
}

// markGuilty flags exactly one suspect as guilty. The explicit culprit name
// wins; failing that, the first suspect mentioned in the solution text; as a
// last resort, the first suspect. The fallback chain holds the one-guilty
// invariant even under incomplete model output.
func markGuilty(suspects []models.Suspect, culpritName, solutionText string) {
	candidates := make([]resolve.Candidate, len(suspects))
	for i, s := range suspects {
		candidates[i] = resolve.Candidate{ID: s.ID, Name: s.Name}
	}
	table := resolve.NewTable(candidates)

	guiltyID := ""
	if culpritName != "" {
		if id, ok := table.Match(culpritName); ok {
			guiltyID = id
		}
	}
	if guiltyID == "" && solutionText != "" {
		if mentions := table.Mentions(solutionText); len(mentions) > 0 {
			guiltyID = mentions[0]
		}
	}
	if guiltyID == "" {
		guiltyID = suspects[0].ID
	}

	for i := range suspects {
		suspects[i].Guilty = suspects[i].ID == guiltyID
	}
}

func parseDifficulty(raw string) models.Difficulty {
	switch models.Difficulty(raw) {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return models.Difficulty(raw)
	}
	return models.DifficultyMedium
}

func parseClueType(raw string) models.ClueType {
	switch models.ClueType(raw) {
	case models.ClueTypePhysical, models.ClueTypeTestimonial, models.ClueTypeDigital:
		return models.ClueType(raw)
	}
	return models.ClueTypePhysical
}

func parseRelevance(raw string) models.Relevance {
	switch models.Relevance(raw) {
	case models.RelevanceCritical, models.RelevanceImportant, models.RelevanceMinor:
		return models.Relevance(raw)
	}
	return models.RelevanceImportant
}
