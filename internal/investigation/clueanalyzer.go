package investigation

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/extract"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/mysterydesk/gumshoe/internal/resolve"
	"github.com/sashabaranov/go-openai"
)

const analysisTemperature = 0.7

// AnalyzeClue interprets a clue in the context of the case, the suspects,
// and the other discovered clues. Never hard-fails on unusable model output:
// extraction failures degrade to heuristic text scraping.
func (s *Service) AnalyzeClue(
	ctx context.Context,
	clue models.Clue,
	suspects []models.Suspect,
	kase models.Case,
	discovered []models.Clue,
	lang string,
) (*models.ClueAnalysis, error) {
	raw, err := s.client.Complete(ctx, ai.Request{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: clueAnalysisSystemPrompt(lang)},
			{Role: openai.ChatMessageRoleUser, Content: clueAnalysisUserPrompt(clue, suspects, kase, discovered)},
		},
		Model:       ai.ModelDefault,
		Temperature: analysisTemperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "complete clue analysis")
	}

	table := suspectTable(suspects)

	payload, err := extract.JSON(raw)
	if err != nil {
		s.logger.Warn("clue analysis fell back to text scraping", errors.SlogError(err))
		return scrapeClueAnalysis(raw, table, lang), nil
	}

	analysis := models.ClueAnalysis{
		Summary:   extract.String(payload, "", "summary", "analysis", "significance"),
		NextSteps: extract.Strings(payload, "nextSteps", "next_steps", "recommendations"),
	}

	if connections, ok := extract.Value(payload, "connections", "suspect_connections"); ok {
		switch v := connections.(type) {
		case []any:
			analysis.Connections = mapSuspectConnections(v, table)
		case string:
			// The model returned connections as prose. Scan it for known
			// suspect names as a secondary fallback.
			analysis.Connections = mentionedSuspectConnections(v, table)
		}
	}
	if len(analysis.NextSteps) == 0 {
		analysis.NextSteps = []string{genericNextStep(lang)}
	}

	return &analysis, nil
}

func suspectTable(suspects []models.Suspect) resolve.Table {
	candidates := make([]resolve.Candidate, len(suspects))
	for i, s := range suspects {
		candidates[i] = resolve.Candidate{ID: s.ID, Name: s.Name}
	}
	return resolve.NewTable(candidates)
}

// mapSuspectConnections resolves each connection object's suspect name back
// to a known id. Unresolvable connections are discarded silently.
func mapSuspectConnections(items []any, table resolve.Table) []models.SuspectConnection {
	var connections []models.SuspectConnection
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := extract.String(entry, "", "suspect", "suspect_name", "suspectName", "name")
		id, ok := table.Match(name)
		if !ok {
			continue
		}
		connections = append(connections, models.SuspectConnection{
			SuspectID:      id,
			ConnectionType: extract.String(entry, "related", "connectionType", "connection_type", "type"),
			Description:    extract.String(entry, "", "description", "detail"),
		})
	}
	return connections
}

func mentionedSuspectConnections(text string, table resolve.Table) []models.SuspectConnection {
	var connections []models.SuspectConnection
	for _, id := range table.Mentions(text) {
		connections = append(connections, models.SuspectConnection{
			SuspectID:      id,
			ConnectionType: "mentioned",
			Description:    strings.TrimSpace(text),
		})
	}
	return connections
}

var (
	summarySectionPattern   = regexp.MustCompile(`(?im)^\s*(?:summary|significance)\s*:\s*(.+)$`)
	nextStepsSectionPattern = regexp.MustCompile(`(?is)next steps\s*:\s*(.*?)(?:\n\s*\n|$)`)
	stepLinePattern         = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+[.)])?\s*(.+)$`)
)

// scrapeClueAnalysis is the last-resort mapper for completely unparseable
// responses. It scrapes labeled sections out of the prose and turns suspect
// name mentions into ad hoc connections with surrounding context.
func scrapeClueAnalysis(raw string, table resolve.Table, lang string) *models.ClueAnalysis {
	analysis := models.ClueAnalysis{}

	if m := summarySectionPattern.FindStringSubmatch(raw); m != nil {
		analysis.Summary = strings.TrimSpace(m[1])
	} else {
		analysis.Summary = strings.TrimSpace(raw)
	}

	if m := nextStepsSectionPattern.FindStringSubmatch(raw); m != nil {
		for _, line := range stepLinePattern.FindAllStringSubmatch(m[1], -1) {
			if step := strings.TrimSpace(line[1]); step != "" {
				analysis.NextSteps = append(analysis.NextSteps, step)
			}
		}
	}
	if len(analysis.NextSteps) == 0 {
		analysis.NextSteps = []string{genericNextStep(lang)}
	}

	for _, id := range table.Mentions(raw) {
		analysis.Connections = append(analysis.Connections, models.SuspectConnection{
			SuspectID:      id,
			ConnectionType: "mentioned",
			Description:    mentionContext(raw, table, id),
		})
	}

	return &analysis
}

// mentionContext carves out the text surrounding the first mention of the
// entity: up to 50 runes before and 100 after.
func mentionContext(text string, table resolve.Table, id string) string {
	name := table.NameOf(id)
	idx := resolve.NameIndex(text, name)
	if idx < 0 {
		return ""
	}
	const before, after = 50, 100
	prefix := utf8.RuneCountInString(text[:idx])
	runes := []rune(text)
	start := prefix - before
	if start < 0 {
		start = 0
	}
	end := prefix + after
	if end > len(runes) {
		end = len(runes)
	}
	return strings.TrimSpace(string(runes[start:end]))
}
