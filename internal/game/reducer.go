package game

import "github.com/mysterydesk/gumshoe/internal/models"

// Reduce applies an action to the state and returns the next state. Pure:
// the input state is never mutated, every transition is a structural copy.
// Unknown actions return the state unchanged.
func Reduce(state models.AppState, action Action) models.AppState {
	switch a := action.(type) {
	case AddGeneratedCase:
		next := clone(state)
		next.Cases = append(next.Cases, a.Bundle.Case)
		next.Clues = append(next.Clues, a.Bundle.Clues...)
		next.Suspects = append(next.Suspects, a.Bundle.Suspects...)
		return next

	case AddCase:
		next := clone(state)
		next.Cases = append(next.Cases, a.Case)
		return next

	case AddClues:
		next := clone(state)
		next.Clues = append(next.Clues, a.Clues...)
		return next

	case AddSuspects:
		next := clone(state)
		next.Suspects = append(next.Suspects, a.Suspects...)
		return next

	case SetActiveCase:
		next := clone(state)
		next.GameState.ActiveCaseID = a.CaseID
		next.GameState.GameProgress = Progress(next)
		return next

	case DiscoverClue:
		// One action, three synchronized effects: the entity flag, the
		// tracking list, and the derived progress.
		next := clone(state)
		for i := range next.Clues {
			if next.Clues[i].ID == a.ClueID {
				next.Clues[i].Discovered = true
			}
		}
		next.GameState.DiscoveredClues = appendUnique(next.GameState.DiscoveredClues, a.ClueID)
		next.GameState.GameProgress = Progress(next)
		return next

	case ExamineClue:
		next := clone(state)
		for i := range next.Clues {
			if next.Clues[i].ID == a.ClueID {
				next.Clues[i].Examined = true
			}
		}
		next.GameState.ExaminedClues = appendUnique(next.GameState.ExaminedClues, a.ClueID)
		next.GameState.GameProgress = Progress(next)
		return next

	case InterviewSuspect:
		next := clone(state)
		for i := range next.Suspects {
			if next.Suspects[i].ID == a.SuspectID {
				next.Suspects[i].Interviewed = true
			}
		}
		next.GameState.InterviewedSuspects = appendUnique(next.GameState.InterviewedSuspects, a.SuspectID)
		next.GameState.GameProgress = Progress(next)
		return next

	case SaveInterviewTurn:
		next := clone(state)
		next.GameState.SuspectInterviews[a.SuspectID] = append(next.GameState.SuspectInterviews[a.SuspectID], a.Turn)
		return next

	case SaveClueAnalysis:
		next := clone(state)
		next.GameState.ClueAnalyses[a.ClueID] = a.Analysis
		return next

	case SolveCase:
		next := clone(state)
		for i := range next.Cases {
			if next.Cases[i].ID == a.CaseID {
				next.Cases[i].Solved = true
			}
		}
		next.GameState.CasesSolved = appendUnique(next.GameState.CasesSolved, a.CaseID)
		next.GameState.GameProgress = 100
		return next

	case Reset:
		return clone(a.Seed)

	case Load:
		return clone(a.State)

	case ApplyContent:
		return applyContent(state, a)
	}

	return state
}

// appendUnique appends id unless it is already tracked. Tracking lists stay
// ordered and deduplicated, so dispatching the same discovery twice is a
// no-op for the list.
func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// applyContent overwrites text fields of known entities from the parallel
// dataset, matched by id. Content and progress are independent axes: flags,
// tracking lists, analyses, and interviews survive the swap, and entities
// missing from the dataset keep their current text.
func applyContent(state models.AppState, a ApplyContent) models.AppState {
	next := clone(state)

	for i, existing := range next.Cases {
		for _, replacement := range a.Cases {
			if replacement.ID != existing.ID {
				continue
			}
			next.Cases[i].Title = replacement.Title
			next.Cases[i].Description = replacement.Description
			next.Cases[i].Summary = replacement.Summary
			next.Cases[i].Location = replacement.Location
		}
	}
	for i, existing := range next.Clues {
		for _, replacement := range a.Clues {
			if replacement.ID != existing.ID {
				continue
			}
			next.Clues[i].Title = replacement.Title
			next.Clues[i].Description = replacement.Description
			next.Clues[i].Location = replacement.Location
		}
	}
	for i, existing := range next.Suspects {
		for _, replacement := range a.Suspects {
			if replacement.ID != existing.ID {
				continue
			}
			next.Suspects[i].Name = replacement.Name
			next.Suspects[i].Description = replacement.Description
			next.Suspects[i].Background = replacement.Background
			next.Suspects[i].Motive = replacement.Motive
			next.Suspects[i].Alibi = replacement.Alibi
		}
	}

	return next
}
