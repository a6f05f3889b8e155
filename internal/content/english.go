package content

import "github.com/mysterydesk/gumshoe/internal/models"

func casesEN() []models.Case {
	return []models.Case{
		{
			ID:          "case-blackwood",
			Title:       "Death at Blackwood Hall",
			Description: "Professor Arthur Penhaligon was found dead in the library of Blackwood Hall during the faculty's autumn reception. The door was locked and the only key was in his pocket. The coroner suspects poison.",
			Summary:     "A professor lies dead behind a locked library door during a faculty reception.",
			Difficulty:  models.DifficultyMedium,
			Location:    "Blackwood Hall, Cambridge",
			DateTime:    "1931-10-17T21:40:00Z",
		},
	}
}

func cluesEN() []models.Clue {
	return []models.Clue{
		{
			ID:          "clue-decanter",
			CaseID:      "case-blackwood",
			Title:       "Sherry decanter",
			Description: "The professor's private decanter smells faintly of bitter almonds. Only three people knew where he kept it.",
			Location:    "Library sideboard",
			Type:        models.ClueTypePhysical,
			Relevance:   models.RelevanceCritical,
		},
		{
			ID:          "clue-letter",
			CaseID:      "case-blackwood",
			Title:       "Unfinished letter",
			Description: "A half-written letter to the university chancellor mentions 'irregularities in the endowment accounts' and names no one.",
			Location:    "Library desk",
			Type:        models.ClueTypePhysical,
			Relevance:   models.RelevanceImportant,
		},
		{
			ID:          "clue-argument",
			CaseID:      "case-blackwood",
			Title:       "Overheard argument",
			Description: "A waiter heard raised voices from the library an hour before the body was found. One voice was the professor's; the other he could not place.",
			Location:    "Service corridor",
			Type:        models.ClueTypeTestimonial,
			Relevance:   models.RelevanceImportant,
		},
		{
			ID:          "clue-telegrams",
			CaseID:      "case-blackwood",
			Title:       "Telegram records",
			Description: "The village post office logged three telegrams from Blackwood Hall to a London broker in the past week, each instructing a sale of college securities.",
			Location:    "Post office ledger",
			Type:        models.ClueTypeDigital,
			Relevance:   models.RelevanceMinor,
		},
	}
}

func suspectsEN() []models.Suspect {
	return []models.Suspect{
		{
			ID:          "suspect-whitcombe",
			CaseID:      "case-blackwood",
			Name:        "Dean Reginald Whitcombe",
			Description: "The college dean, a polished administrator with sole signing authority over the endowment.",
			Background:  "Steered the college finances for fifteen years and survived two audits without a blemish.",
			Motive:      "The professor's letter threatened to expose shortfalls in accounts only the dean controlled.",
			Alibi:       "Claims he was greeting guests in the great hall all evening.",
			Guilty:      true,
		},
		{
			ID:          "suspect-marsh",
			CaseID:      "case-blackwood",
			Name:        "Dr. Evelyn Marsh",
			Description: "A junior fellow passed over for tenure in favour of the professor's protégé.",
			Background:  "Brilliant chemist with a strained relationship to the department.",
			Motive:      "Resentment over the tenure decision announced the week before.",
			Alibi:       "Says she was in the chemistry wing running an experiment, alone.",
		},
		{
			ID:          "suspect-okafor",
			CaseID:      "case-blackwood",
			Name:        "Samuel Okafor",
			Description: "The professor's research assistant and the last person known to see him alive.",
			Background:  "Joined the college two years ago on the professor's recommendation.",
			Motive:      "Named as sole beneficiary of the professor's academic estate.",
			Alibi:       "Left the reception early; the porter logged him out at nine.",
		},
	}
}
