package game

import "github.com/mysterydesk/gumshoe/internal/models"

// clone makes a structural copy of the state deep enough that no mutable
// container is shared between the copy and the original. Entities are value
// types, so copying the slices suffices for them; the game state maps and
// their slice values need fresh containers.
func clone(state models.AppState) models.AppState {
	next := models.AppState{
		Cases:    append([]models.Case(nil), state.Cases...),
		Clues:    append([]models.Clue(nil), state.Clues...),
		Suspects: append([]models.Suspect(nil), state.Suspects...),
		GameState: models.GameState{
			ActiveCaseID:        state.GameState.ActiveCaseID,
			DiscoveredClues:     append([]string(nil), state.GameState.DiscoveredClues...),
			ExaminedClues:       append([]string(nil), state.GameState.ExaminedClues...),
			InterviewedSuspects: append([]string(nil), state.GameState.InterviewedSuspects...),
			CasesSolved:         append([]string(nil), state.GameState.CasesSolved...),
			GameProgress:        state.GameState.GameProgress,
			ClueAnalyses:        make(map[string]models.ClueAnalysis, len(state.GameState.ClueAnalyses)),
			SuspectInterviews:   make(map[string][]models.InterviewTurn, len(state.GameState.SuspectInterviews)),
		},
	}
	for id, analysis := range state.GameState.ClueAnalyses {
		analysis.Connections = append([]models.SuspectConnection(nil), analysis.Connections...)
		analysis.NextSteps = append([]string(nil), analysis.NextSteps...)
		next.GameState.ClueAnalyses[id] = analysis
	}
	for id, turns := range state.GameState.SuspectInterviews {
		next.GameState.SuspectInterviews[id] = append([]models.InterviewTurn(nil), turns...)
	}
	return next
}
