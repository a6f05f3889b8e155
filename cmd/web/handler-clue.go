package main

import (
	"net/http"

	"github.com/mysterydesk/gumshoe/internal/game"
	"github.com/mysterydesk/gumshoe/internal/models"
)

func (app *application) discoverClue(w http.ResponseWriter, r *http.Request) {
	clueID := r.PathValue("clueID")
	store := app.sessionStore(r)
	if _, ok := store.State().ClueByID(clueID); !ok {
		app.clientError(w, r, http.StatusNotFound, "clue not found")
		return
	}
	state := store.Dispatch(game.DiscoverClue{ClueID: clueID})
	app.writeJSON(w, r, http.StatusOK, state)
}

// examineClue marks a clue examined. Examining works without discovering
// the clue first.
func (app *application) examineClue(w http.ResponseWriter, r *http.Request) {
	clueID := r.PathValue("clueID")
	store := app.sessionStore(r)
	if _, ok := store.State().ClueByID(clueID); !ok {
		app.clientError(w, r, http.StatusNotFound, "clue not found")
		return
	}
	state := store.Dispatch(game.ExamineClue{ClueID: clueID})
	app.writeJSON(w, r, http.StatusOK, state)
}

type clueAnalysisResponse struct {
	Analysis models.ClueAnalysis `json:"analysis"`
	Cached   bool                `json:"cached"`
}

// analyzeClue runs the clue through the analyzer, serving the cached
// analysis when the clue was analyzed before.
func (app *application) analyzeClue(w http.ResponseWriter, r *http.Request) {
	clueID := r.PathValue("clueID")
	store := app.sessionStore(r)
	state := store.State()

	clue, ok := state.ClueByID(clueID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "clue not found")
		return
	}
	if cached, ok := state.GameState.ClueAnalyses[clueID]; ok {
		app.writeJSON(w, r, http.StatusOK, clueAnalysisResponse{Analysis: cached, Cached: true})
		return
	}
	kase, ok := state.CaseByID(clue.CaseID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "case not found")
		return
	}

	var discovered []models.Clue
	for _, c := range state.CaseClues(clue.CaseID) {
		if c.Discovered {
			discovered = append(discovered, c)
		}
	}

	analysis, err := app.investigator.AnalyzeClue(r.Context(), clue,
		state.CaseSuspects(clue.CaseID), kase, discovered, app.language(r))
	if err != nil {
		app.modelError(w, r, err)
		return
	}

	store.Dispatch(game.SaveClueAnalysis{ClueID: clueID, Analysis: *analysis})
	app.writeJSON(w, r, http.StatusOK, clueAnalysisResponse{Analysis: *analysis})
}
