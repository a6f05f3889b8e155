package content

import "github.com/mysterydesk/gumshoe/internal/models"

func casesFI() []models.Case {
	return []models.Case{
		{
			ID:          "case-blackwood",
			Title:       "Kuolema Blackwood Hallissa",
			Description: "Professori Arthur Penhaligon löydettiin kuolleena Blackwood Hallin kirjastosta tiedekunnan syysvastaanoton aikana. Ovi oli lukossa ja ainoa avain hänen taskussaan. Kuolinsyyntutkija epäilee myrkkyä.",
			Summary:     "Professori makaa kuolleena lukitun kirjastonoven takana kesken tiedekunnan vastaanoton.",
			Difficulty:  models.DifficultyMedium,
			Location:    "Blackwood Hall, Cambridge",
			DateTime:    "1931-10-17T21:40:00Z",
		},
	}
}

func cluesFI() []models.Clue {
	return []models.Clue{
		{
			ID:          "clue-decanter",
			CaseID:      "case-blackwood",
			Title:       "Sherrykarahvi",
			Description: "Professorin oma karahvi tuoksuu heikosti karvasmantelilta. Vain kolme ihmistä tiesi, missä hän sitä säilytti.",
			Location:    "Kirjaston tarjoilupöytä",
			Type:        models.ClueTypePhysical,
			Relevance:   models.RelevanceCritical,
		},
		{
			ID:          "clue-letter",
			CaseID:      "case-blackwood",
			Title:       "Keskeneräinen kirje",
			Description: "Puoliksi kirjoitettu kirje yliopiston kanslerille mainitsee 'epäselvyyksiä rahaston tileissä' nimeämättä ketään.",
			Location:    "Kirjaston työpöytä",
			Type:        models.ClueTypePhysical,
			Relevance:   models.RelevanceImportant,
		},
		{
			ID:          "clue-argument",
			CaseID:      "case-blackwood",
			Title:       "Kuultu riita",
			Description: "Tarjoilija kuuli korotettuja ääniä kirjastosta tuntia ennen ruumiin löytymistä. Toinen ääni oli professorin; toista hän ei tunnistanut.",
			Location:    "Palveluskäytävä",
			Type:        models.ClueTypeTestimonial,
			Relevance:   models.RelevanceImportant,
		},
		{
			ID:          "clue-telegrams",
			CaseID:      "case-blackwood",
			Title:       "Sähkemerkinnät",
			Description: "Kylän postikonttori kirjasi viime viikolla kolme sähkettä Blackwood Hallista lontoolaiselle välittäjälle, jokainen määräyksenä myydä collegen arvopapereita.",
			Location:    "Postikonttorin kirja",
			Type:        models.ClueTypeDigital,
			Relevance:   models.RelevanceMinor,
		},
	}
}

func suspectsFI() []models.Suspect {
	return []models.Suspect{
		{
			ID:          "suspect-whitcombe",
			CaseID:      "case-blackwood",
			Name:        "Dekaani Reginald Whitcombe",
			Description: "Collegen dekaani, hiottu hallintomies, jolla on yksin nimenkirjoitusoikeus rahastoon.",
			Background:  "On ohjannut collegen taloutta viisitoista vuotta ja selvinnyt kahdesta tilintarkastuksesta puhtain paperein.",
			Motive:      "Professorin kirje uhkasi paljastaa vajeita tileissä, joita vain dekaani hallinnoi.",
			Alibi:       "Kertoo tervehtineensä vieraita juhlasalissa koko illan.",
			Guilty:      true,
		},
		{
			ID:          "suspect-marsh",
			CaseID:      "case-blackwood",
			Name:        "Tohtori Evelyn Marsh",
			Description: "Nuorempi tutkija, joka sivuutettiin vakinaistuksessa professorin suosikin hyväksi.",
			Background:  "Loistava kemisti, jonka välit laitokseen ovat kireät.",
			Motive:      "Katkeruus viikkoa aiemmin julkistetusta vakinaistuspäätöksestä.",
			Alibi:       "Sanoo olleensa kemian siivessä kokeen äärellä, yksin.",
		},
		{
			ID:          "suspect-okafor",
			CaseID:      "case-blackwood",
			Name:        "Samuel Okafor",
			Description: "Professorin tutkimusavustaja ja viimeinen, jonka tiedetään nähneen hänet elossa.",
			Background:  "Tuli collegeen kaksi vuotta sitten professorin suosituksesta.",
			Motive:      "Nimetty professorin akateemisen jäämistön ainoaksi perijäksi.",
			Alibi:       "Lähti vastaanotolta aikaisin; vahtimestari kirjasi hänet ulos yhdeksältä.",
		},
	}
}
