package investigation

import (
	"fmt"
	"strings"

	"github.com/mysterydesk/gumshoe/internal/models"
)

// languageName maps a language code to the name used in prompt clauses.
// Unknown codes fall back to English.
func languageName(lang string) string {
	switch lang {
	case "fi":
		return "Finnish"
	default:
		return "English"
	}
}

func languageClause(lang string) string {
	return fmt.Sprintf("Write every piece of narrative text in %s.", languageName(lang))
}

func caseGenerationSystemPrompt(lang string) string {
	var b strings.Builder
	b.WriteString("You are a mystery writer designing cases for a detective game. ")
	b.WriteString("Produce a complete, solvable mystery as a single JSON object with this shape:\n\n")
	b.WriteString("{\n")
	b.WriteString(`  "title": "...",` + "\n")
	b.WriteString(`  "description": "...",` + "\n")
	b.WriteString(`  "summary": "...",` + "\n")
	b.WriteString(`  "location": "...",` + "\n")
	b.WriteString(`  "dateTime": "ISO-8601 timestamp",` + "\n")
	b.WriteString(`  "clues": [{"title": "...", "description": "...", "location": "...", "type": "physical|testimonial|digital", "relevance": "critical|important|minor"}],` + "\n")
	b.WriteString(`  "suspects": [{"name": "...", "description": "...", "background": "...", "motive": "...", "alibi": "..."}],` + "\n")
	b.WriteString(`  "solution": {"culprit": "name of the guilty suspect", "reasoning": "..."}` + "\n")
	b.WriteString("}\n\n")
	b.WriteString("Include 5-8 clues and 3-5 suspects. Exactly one suspect is guilty. ")
	b.WriteString("The clues must make the solution deducible without giving it away. ")
	b.WriteString(languageClause(lang))
	return b.String()
}

func caseGenerationUserPrompt(params GenerationParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s difficulty mystery case.", params.Difficulty)
	// Constraint clauses are appended only when provided. An absent theme
	// must not surface as "theme: none" in the prompt.
	if params.Theme != "" {
		fmt.Fprintf(&b, " The theme is %s.", params.Theme)
	}
	if params.Location != "" {
		fmt.Fprintf(&b, " Set it in %s.", params.Location)
	}
	if params.Era != "" {
		fmt.Fprintf(&b, " The era is %s.", params.Era)
	}
	return b.String()
}

func clueAnalysisSystemPrompt(lang string) string {
	var b strings.Builder
	b.WriteString("You are a forensic analyst helping a detective interpret evidence. ")
	b.WriteString("Respond with a single JSON object:\n\n")
	b.WriteString("{\n")
	b.WriteString(`  "summary": "what this clue means for the case",` + "\n")
	b.WriteString(`  "connections": [{"suspect": "suspect name", "connectionType": "...", "description": "..."}],` + "\n")
	b.WriteString(`  "nextSteps": ["...", "..."]` + "\n")
	b.WriteString("}\n\n")
	b.WriteString("Only reference suspects given in the case context. ")
	b.WriteString(languageClause(lang))
	return b.String()
}

func clueAnalysisUserPrompt(clue models.Clue, suspects []models.Suspect, kase models.Case, discovered []models.Clue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s\n%s\n\n", kase.Title, kase.Description)
	fmt.Fprintf(&b, "Clue under analysis: %s\nDescription: %s\nFound at: %s\nType: %s\n\n",
		clue.Title, clue.Description, clue.Location, clue.Type)
	b.WriteString("Suspects:\n")
	for _, s := range suspects {
		fmt.Fprintf(&b, "- %s: %s\n", s.Name, s.Description)
	}
	var others []models.Clue
	for _, c := range discovered {
		if c.ID != clue.ID {
			others = append(others, c)
		}
	}
	if len(others) > 0 {
		b.WriteString("\nOther discovered clues:\n")
		for _, c := range others {
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, c.Description)
		}
	}
	return b.String()
}

func suspectAnalysisSystemPrompt(lang string) string {
	var b strings.Builder
	b.WriteString("You are a criminal profiler assessing a suspect for a detective. ")
	b.WriteString("Respond with a single JSON object:\n\n")
	b.WriteString("{\n")
	b.WriteString(`  "trustworthiness": 0-100,` + "\n")
	b.WriteString(`  "inconsistencies": ["..."],` + "\n")
	b.WriteString(`  "connections": [{"clue": "clue title", "connectionType": "...", "description": "..."}],` + "\n")
	b.WriteString(`  "suggestedQuestions": ["...", "..."]` + "\n")
	b.WriteString("}\n\n")
	b.WriteString("Only reference clues given in the case context. ")
	b.WriteString(languageClause(lang))
	return b.String()
}

func suspectAnalysisUserPrompt(suspect models.Suspect, clues []models.Clue, kase models.Case, interview []models.InterviewTurn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s\n%s\n\n", kase.Title, kase.Description)
	fmt.Fprintf(&b, "Suspect: %s\nDescription: %s\nBackground: %s\nStated motive: %s\nAlibi: %s\n\n",
		suspect.Name, suspect.Description, suspect.Background, suspect.Motive, suspect.Alibi)
	if len(clues) > 0 {
		b.WriteString("Known clues:\n")
		for _, c := range clues {
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, c.Description)
		}
	}
	if len(interview) > 0 {
		b.WriteString("\nInterview so far:\n")
		for _, turn := range interview {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", turn.Question, turn.Answer)
		}
	}
	return b.String()
}

func interviewSystemPrompt(suspect models.Suspect, clues []models.Clue, kase models.Case, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a suspect being interviewed by a detective about the case %q.\n\n", suspect.Name, kase.Title)
	fmt.Fprintf(&b, "Who you are: %s\nYour background: %s\nYour possible motive: %s\nYour alibi: %s\n\n",
		suspect.Description, suspect.Background, suspect.Motive, suspect.Alibi)
	fmt.Fprintf(&b, "Case background: %s\n\n", kase.Description)
	if len(clues) > 0 {
		b.WriteString("Evidence the detective may bring up:\n")
		for _, c := range clues {
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, c.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("Stay in character and answer as this person would: evasive if you have something to hide, ")
	b.WriteString("cooperative if you do not. Never directly confirm or deny your guilt, even under direct questioning. ")
	b.WriteString("Deflect, equivocate, or get defensive instead. ")
	fmt.Fprintf(&b, "Answer in %s.", languageName(lang))
	return b.String()
}

func solutionSystemPrompt(lang string) string {
	var b strings.Builder
	b.WriteString("You are the adjudicator of a detective game, grading the player's accusation. ")
	b.WriteString("Respond with a single JSON object:\n\n")
	b.WriteString("{\n")
	b.WriteString(`  "solved": true or false,` + "\n")
	b.WriteString(`  "narrative": "a dramatic verdict revealing how the case actually unfolded"` + "\n")
	b.WriteString("}\n\n")
	b.WriteString("Set solved to true only when the accusation names the actual culprit. ")
	b.WriteString("In the narrative, never mention that you were told who is guilty. ")
	b.WriteString(languageClause(lang))
	return b.String()
}

func solutionUserPrompt(
	kase models.Case,
	suspects []models.Suspect,
	evidence []models.Clue,
	accused models.Suspect,
	guilty models.Suspect,
	reasoning string,
) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s\n%s\n\n", kase.Title, kase.Description)
	b.WriteString("Suspects:\n")
	for _, s := range suspects {
		fmt.Fprintf(&b, "- %s: %s\n", s.Name, s.Description)
	}
	fmt.Fprintf(&b, "\nThe player accuses: %s\n", accused.Name)
	fmt.Fprintf(&b, "The player's reasoning: %s\n\n", reasoning)
	if len(evidence) > 0 {
		b.WriteString("Evidence the player selected:\n")
		for _, c := range evidence {
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, c.Description)
		}
	}
	// Adjudication context only. The narrative must not leak this back.
	fmt.Fprintf(&b, "\nHidden from the player, for grading only: the actual culprit is %s.\n", guilty.Name)
	return b.String()
}
