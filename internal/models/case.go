package models

// Difficulty grades how hard a case is to crack.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ClueType classifies the nature of a piece of evidence.
type ClueType string

const (
	ClueTypePhysical    ClueType = "physical"
	ClueTypeTestimonial ClueType = "testimonial"
	ClueTypeDigital     ClueType = "digital"
)

// Relevance grades how important a clue is for solving its case.
type Relevance string

const (
	RelevanceCritical  Relevance = "critical"
	RelevanceImportant Relevance = "important"
	RelevanceMinor     Relevance = "minor"
)

// Case is a mystery the player can investigate. Cases come from the seed
// content or from the case generator. Once created, the only mutation a case
// ever sees is Solved flipping to true.
type Case struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Summary      string     `json:"summary"`
	Difficulty   Difficulty `json:"difficulty"`
	Solved       bool       `json:"solved"`
	Location     string     `json:"location"`
	DateTime     string     `json:"dateTime"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	LLMGenerated bool       `json:"isLLMGenerated"`
}

// Clue is a piece of evidence belonging to a case. Discovered and Examined
// flip false to true and never revert.
//
// Examined does not imply Discovered. A clue can be examined without being
// discovered first, e.g. through direct navigation.
type Clue struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"caseId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Type        ClueType  `json:"type"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Discovered  bool      `json:"discovered"`
	Examined    bool      `json:"examined"`
	Relevance   Relevance `json:"relevance"`
}

// Suspect is a person of interest in a case. Guilty is ground truth known
// only to the system; it is never sent to the player verbatim.
type Suspect struct {
	ID          string `json:"id"`
	CaseID      string `json:"caseId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Background  string `json:"background"`
	Motive      string `json:"motive"`
	Alibi       string `json:"alibi"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Guilty      bool   `json:"isGuilty"`
	Interviewed bool   `json:"interviewed"`
}

// GeneratedCase bundles everything the case generator produced before it is
// folded into the application state with a single dispatch.
type GeneratedCase struct {
	Case     Case      `json:"case"`
	Clues    []Clue    `json:"clues"`
	Suspects []Suspect `json:"suspects"`
	Solution string    `json:"solution"`
}
