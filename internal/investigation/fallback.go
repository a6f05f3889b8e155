package investigation

import (
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/mysterydesk/gumshoe/internal/random"
)

// genericNextStep is the placeholder investigation step used when the model
// response yields nothing actionable.
func genericNextStep(lang string) string {
	switch lang {
	case "fi":
		return "Tutki muut löydetyt johtolangat ja kuulustele epäiltyjä uudelleen."
	default:
		return "Review the other discovered clues and question the suspects again."
	}
}

// solvedNarrative is the deterministic verdict text used when the
// adjudication response could not be parsed. Adjudication always resolves to
// a definite verdict.
func solvedNarrative(lang string, correct bool, culpritName string) string {
	switch lang {
	case "fi":
		if correct {
			return "Syyllinen oli " + culpritName + ". Päättelysi osui oikeaan ja tapaus on ratkaistu."
		}
		return "Syytöksesi ei osunut oikeaan. Todisteet viittaavat toisaalle, ja tapaus jää avoimeksi."
	default:
		if correct {
			return "The culprit was " + culpritName + ". Your deduction holds together and the case is closed."
		}
		return "Your accusation does not hold. The evidence points elsewhere, and the case remains open."
	}
}

// sampleCase is the predetermined fallback bundle used outside production
// when the model response yields no parseable case. Three clues, two
// suspects, one of them guilty.
func sampleCase(params GenerationParams) (*models.GeneratedCase, error) {
	caseID, err := random.ID("case")
	if err != nil {
		return nil, errors.Wrap(err, "generate case id")
	}
	ids := make([]string, 0, 5)
	for _, prefix := range []string{"clue", "clue", "clue", "suspect", "suspect"} {
		id, idErr := random.ID(prefix)
		if idErr != nil {
			return nil, errors.Wrap(idErr, "generate entity id")
		}
		ids = append(ids, id)
	}

	kase := models.Case{
		ID:           caseID,
		Title:        "The Missing Ledger",
		Description:  "The accountant of the Halloran shipping company vanished overnight, along with the company ledger. His office was found locked from the inside.",
		Summary:      "An accountant and the ledger he kept have both disappeared from a locked office.",
		Difficulty:   params.Difficulty,
		Location:     "Halloran & Sons shipping office",
		DateTime:     "1924-10-03T22:00:00Z",
		LLMGenerated: true,
	}
	clues := []models.Clue{
		{
			ID: ids[0], CaseID: caseID,
			Title:       "Scratched window latch",
			Description: "The latch on the office window carries fresh scratches on the inside.",
			Location:    "Accountant's office",
			Type:        models.ClueTypePhysical,
			Relevance:   models.RelevanceCritical,
		},
		{
			ID: ids[1], CaseID: caseID,
			Title:       "Night watchman's log",
			Description: "The log shows a gap between one and three in the morning with no rounds recorded.",
			Location:    "Gatehouse",
			Type:        models.ClueTypeTestimonial,
			Relevance:   models.RelevanceImportant,
		},
		{
			ID: ids[2], CaseID: caseID,
			Title:       "Telegram stub",
			Description: "A stub for a telegram sent to a bank in Rotterdam two days before the disappearance.",
			Location:    "Accountant's desk",
			Type:        models.ClueTypeDigital,
			Relevance:   models.RelevanceMinor,
		},
	}
	suspects := []models.Suspect{
		{
			ID: ids[3], CaseID: caseID,
			Name:        "Edwin Halloran",
			Description: "Junior partner of the firm, recently passed over for promotion.",
			Background:  "Joined the family firm a decade ago and has managed the books alongside the accountant.",
			Motive:      "The ledger would expose the loans he took against company stock.",
			Alibi:       "Claims he dined at his club until midnight.",
			Guilty:      true,
		},
		{
			ID: ids[4], CaseID: caseID,
			Name:        "Greta Voss",
			Description: "The night watchman's daughter, who cleans the offices in the evening.",
			Background:  "Has worked in the building for three years without incident.",
			Motive:      "Was owed two months of unpaid wages.",
			Alibi:       "Her father says she left with him at eleven.",
		},
	}
	return &models.GeneratedCase{
		Case:     kase,
		Clues:    clues,
		Suspects: suspects,
		Solution: "Edwin Halloran staged the disappearance to destroy the ledger before the audit.",
	}, nil
}
