// Package content holds the static seed cases shipped with the game. The
// same entities exist in every language under the same ids, so switching
// language swaps text without touching progress.
package content

import "github.com/mysterydesk/gumshoe/internal/models"

// DefaultLanguage is used when a session has not chosen a language.
const DefaultLanguage = "en"

// Supported reports whether seed content exists for the language.
func Supported(lang string) bool {
	switch lang {
	case "en", "fi":
		return true
	}
	return false
}

// Seed returns a fresh AppState with the seed content for the language and
// an empty game state. Unknown languages fall back to English.
func Seed(lang string) models.AppState {
	cases, clues, suspects := Dataset(lang)
	return models.AppState{
		Cases:    cases,
		Clues:    clues,
		Suspects: suspects,
		GameState: models.GameState{
			ClueAnalyses:      map[string]models.ClueAnalysis{},
			SuspectInterviews: map[string][]models.InterviewTurn{},
		},
	}
}

// Dataset returns the seed entities for the language, for seeding and for
// content swaps on language change.
func Dataset(lang string) ([]models.Case, []models.Clue, []models.Suspect) {
	switch lang {
	case "fi":
		return casesFI(), cluesFI(), suspectsFI()
	default:
		return casesEN(), cluesEN(), suspectsEN()
	}
}
