package models

// SuspectConnection ties a clue analysis back to a known suspect.
type SuspectConnection struct {
	SuspectID      string `json:"suspectId"`
	ConnectionType string `json:"connectionType"`
	Description    string `json:"description"`
}

// ClueAnalysis is the structured result of analysing a single clue.
// It is cached per clue id once produced.
type ClueAnalysis struct {
	Summary     string              `json:"summary"`
	Connections []SuspectConnection `json:"connections"`
	NextSteps   []string            `json:"nextSteps"`
}

// ClueConnection ties a suspect analysis back to a known clue.
type ClueConnection struct {
	ClueID         string `json:"clueId"`
	ConnectionType string `json:"connectionType"`
	Description    string `json:"description"`
}

// SuspectAnalysis is the structured result of analysing a suspect,
// optionally informed by the interview so far.
type SuspectAnalysis struct {
	SuspectID          string           `json:"suspectId"`
	Trustworthiness    int              `json:"trustworthiness"`
	Inconsistencies    []string         `json:"inconsistencies"`
	Connections        []ClueConnection `json:"connections"`
	SuggestedQuestions []string         `json:"suggestedQuestions"`
}

// CaseSolution is the adjudicated outcome of a solve attempt. Reasoning is
// the player's own argument echoed back; Narrative is the verdict text.
type CaseSolution struct {
	Solved      bool     `json:"solved"`
	CulpritID   string   `json:"culpritId"`
	Reasoning   string   `json:"reasoning"`
	EvidenceIDs []string `json:"evidenceIds"`
	Narrative   string   `json:"narrative"`
}
