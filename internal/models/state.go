package models

// InterviewTurn is one question and answer pair in a suspect interview.
// Every turn gets a stable id at creation time so that slow responses
// resolving out of order cannot corrupt the conversation.
type InterviewTurn struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Custom   bool   `json:"isCustom,omitempty"`
}

// GameState tracks the player's progress through the content. The tracking
// slices are ordered and deduplicated on insert.
type GameState struct {
	ActiveCaseID        string                     `json:"activeCase"`
	DiscoveredClues     []string                   `json:"discoveredClues"`
	ExaminedClues       []string                   `json:"examinedClues"`
	InterviewedSuspects []string                   `json:"interviewedSuspects"`
	CasesSolved         []string                   `json:"casesSolved"`
	GameProgress        int                        `json:"gameProgress"`
	ClueAnalyses        map[string]ClueAnalysis    `json:"clueAnalyses"`
	SuspectInterviews   map[string][]InterviewTurn `json:"suspectInterviews"`
}

// AppState is the aggregate root holding all content and progress. It is the
// unit of persistence and the unit of replacement on content reload. The
// store owns it exclusively; entities are value-copied across its boundary.
type AppState struct {
	Cases     []Case    `json:"cases"`
	Clues     []Clue    `json:"clues"`
	Suspects  []Suspect `json:"suspects"`
	GameState GameState `json:"gameState"`
}

// CaseByID returns a copy of the case with the given id.
func (s AppState) CaseByID(id string) (Case, bool) {
	for _, c := range s.Cases {
		if c.ID == id {
			return c, true
		}
	}
	return Case{}, false
}

// ClueByID returns a copy of the clue with the given id.
func (s AppState) ClueByID(id string) (Clue, bool) {
	for _, c := range s.Clues {
		if c.ID == id {
			return c, true
		}
	}
	return Clue{}, false
}

// SuspectByID returns a copy of the suspect with the given id.
func (s AppState) SuspectByID(id string) (Suspect, bool) {
	for _, sus := range s.Suspects {
		if sus.ID == id {
			return sus, true
		}
	}
	return Suspect{}, false
}

// CaseClues returns copies of all clues belonging to the given case.
func (s AppState) CaseClues(caseID string) []Clue {
	var clues []Clue
	for _, c := range s.Clues {
		if c.CaseID == caseID {
			clues = append(clues, c)
		}
	}
	return clues
}

// CaseSuspects returns copies of all suspects belonging to the given case.
func (s AppState) CaseSuspects(caseID string) []Suspect {
	var suspects []Suspect
	for _, sus := range s.Suspects {
		if sus.CaseID == caseID {
			suspects = append(suspects, sus)
		}
	}
	return suspects
}
