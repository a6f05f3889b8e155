package main

import (
	"net/http"

	"github.com/justinas/nosurf"
	"github.com/mysterydesk/gumshoe/internal/content"
	"github.com/mysterydesk/gumshoe/internal/game"
	"github.com/mysterydesk/gumshoe/internal/models"
)

type stateResponse struct {
	models.AppState
	Language  string `json:"language"`
	CSRFToken string `json:"csrfToken"`
}

// state returns the full application state for the session, the chosen
// language, and the CSRF token that state-changing requests must echo in the
// X-CSRF-Token header.
func (app *application) state(w http.ResponseWriter, r *http.Request) {
	store := app.sessionStore(r)
	app.writeJSON(w, r, http.StatusOK, stateResponse{
		AppState:  store.State(),
		Language:  app.language(r),
		CSRFToken: nosurf.Token(r),
	})
}

// resetState discards all progress and reverts to the seed content for the
// session's language.
func (app *application) resetState(w http.ResponseWriter, r *http.Request) {
	store := app.sessionStore(r)
	store.Reset()
	// The seed is English; re-apply the session's dataset so a reset in
	// Finnish stays in Finnish.
	cases, clues, suspects := content.Dataset(app.language(r))
	state := store.Dispatch(game.ApplyContent{Cases: cases, Clues: clues, Suspects: suspects})
	app.writeJSON(w, r, http.StatusOK, state)
}

type languageRequest struct {
	Language string `json:"language"`
}

// switchLanguage swaps the text of all known entities to the parallel
// dataset for the requested language. Progress is untouched: content and
// progress are independent axes.
func (app *application) switchLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if !content.Supported(req.Language) {
		app.clientError(w, r, http.StatusUnprocessableEntity, "unsupported language")
		return
	}

	store := app.sessionStore(r)
	app.sessionManager.Put(r.Context(), "language", req.Language)

	cases, clues, suspects := content.Dataset(req.Language)
	state := store.Dispatch(game.ApplyContent{Cases: cases, Clues: clues, Suspects: suspects})
	app.writeJSON(w, r, http.StatusOK, state)
}
