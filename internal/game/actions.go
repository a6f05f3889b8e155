package game

import "github.com/mysterydesk/gumshoe/internal/models"

// Action is a state transition request handled by Reduce. Actions carry all
// of their inputs so that the reducer stays a pure function.
type Action interface {
	isAction()
}

// AddGeneratedCase folds a generated bundle into the state as one atomic
// transition. Case, clues, and suspects land together, so a failure can
// never leave an orphaned case behind.
type AddGeneratedCase struct {
	Bundle models.GeneratedCase
}

// AddCase appends a single case.
type AddCase struct {
	Case models.Case
}

// AddClues appends clues.
type AddClues struct {
	Clues []models.Clue
}

// AddSuspects appends suspects.
type AddSuspects struct {
	Suspects []models.Suspect
}

// SetActiveCase switches which case progress is computed against.
type SetActiveCase struct {
	CaseID string
}

// DiscoverClue flips the clue's discovered flag, records the id in the
// discovered tracking list, and recomputes progress.
type DiscoverClue struct {
	ClueID string
}

// ExamineClue flips the clue's examined flag, records the id, and recomputes
// progress. Examining an undiscovered clue is allowed.
type ExamineClue struct {
	ClueID string
}

// InterviewSuspect flips the suspect's interviewed flag, records the id, and
// recomputes progress.
type InterviewSuspect struct {
	SuspectID string
}

// SaveInterviewTurn appends a completed question/answer turn to the
// suspect's interview transcript.
type SaveInterviewTurn struct {
	SuspectID string
	Turn      models.InterviewTurn
}

// SaveClueAnalysis caches an analysis result for a clue.
type SaveClueAnalysis struct {
	ClueID   string
	Analysis models.ClueAnalysis
}

// SolveCase marks the case solved and forces progress to exactly 100. The
// only action that does either.
type SolveCase struct {
	CaseID string
}

// Reset discards all progress and reverts to the given seed content.
type Reset struct {
	Seed models.AppState
}

// Load replaces the whole state, e.g. when restoring a persisted session.
// It does not merge.
type Load struct {
	State models.AppState
}

// ApplyContent swaps the text fields of known cases, clues, and suspects
// with a parallel dataset keyed by the same ids. Progress fields and
// entities unknown to the dataset are untouched.
type ApplyContent struct {
	Cases    []models.Case
	Clues    []models.Clue
	Suspects []models.Suspect
}

func (AddGeneratedCase) isAction()  {}
func (AddCase) isAction()           {}
func (AddClues) isAction()          {}
func (AddSuspects) isAction()       {}
func (SetActiveCase) isAction()     {}
func (DiscoverClue) isAction()      {}
func (ExamineClue) isAction()       {}
func (InterviewSuspect) isAction()  {}
func (SaveInterviewTurn) isAction() {}
func (SaveClueAnalysis) isAction()  {}
func (SolveCase) isAction()         {}
func (Reset) isAction()             {}
func (Load) isAction()              {}
func (ApplyContent) isAction()      {}
