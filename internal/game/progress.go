package game

import (
	"math"

	"github.com/mysterydesk/gumshoe/internal/models"
)

// Progress weights for the three investigation activities.
const (
	discoveryWeight   = 0.30
	examinationWeight = 0.40
	interviewWeight   = 0.30
)

// Progress derives the completion percentage for the active case from the
// tracking lists, scoped to the clues and suspects of that case. The result
// is clamped to 99: only an explicit solve reaches 100. No active case means
// zero progress.
//
// Membership checks filter the tracking lists through the per-case entity
// sets, so a duplicate entry could never double-count.
func Progress(state models.AppState) int {
	caseID := state.GameState.ActiveCaseID
	if caseID == "" {
		return 0
	}

	clues := state.CaseClues(caseID)
	suspects := state.CaseSuspects(caseID)

	discovered := countMembers(state.GameState.DiscoveredClues, clueIDs(clues))
	examined := countMembers(state.GameState.ExaminedClues, clueIDs(clues))
	interviewed := countMembers(state.GameState.InterviewedSuspects, suspectIDs(suspects))

	progress := math.Round(100 * (discoveryWeight*fraction(discovered, len(clues)) +
		examinationWeight*fraction(examined, len(clues)) +
		interviewWeight*fraction(interviewed, len(suspects))))

	const unsolvedMax = 99
	if progress > unsolvedMax {
		return unsolvedMax
	}
	if progress < 0 {
		return 0
	}
	return int(progress)
}

func fraction(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// countMembers counts distinct tracked ids that belong to the scope.
func countMembers(tracked []string, scope map[string]struct{}) int {
	seen := make(map[string]struct{}, len(tracked))
	count := 0
	for _, id := range tracked {
		if _, inScope := scope[id]; !inScope {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		count++
	}
	return count
}

func clueIDs(clues []models.Clue) map[string]struct{} {
	ids := make(map[string]struct{}, len(clues))
	for _, c := range clues {
		ids[c.ID] = struct{}{}
	}
	return ids
}

func suspectIDs(suspects []models.Suspect) map[string]struct{} {
	ids := make(map[string]struct{}, len(suspects))
	for _, s := range suspects {
		ids[s.ID] = struct{}{}
	}
	return ids
}
