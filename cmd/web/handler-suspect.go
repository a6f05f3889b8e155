package main

import (
	"fmt"
	"net/http"

	"github.com/mysterydesk/gumshoe/internal/game"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/mysterydesk/gumshoe/internal/random"
)

// analyzeSuspect profiles the suspect against the case's clues and the
// interview transcript so far.
func (app *application) analyzeSuspect(w http.ResponseWriter, r *http.Request) {
	suspectID := r.PathValue("suspectID")
	store := app.sessionStore(r)
	state := store.State()

	suspect, ok := state.SuspectByID(suspectID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "suspect not found")
		return
	}
	kase, ok := state.CaseByID(suspect.CaseID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "case not found")
		return
	}

	analysis, err := app.investigator.AnalyzeSuspect(r.Context(), suspect,
		state.CaseClues(suspect.CaseID), kase,
		state.GameState.SuspectInterviews[suspectID], app.language(r))
	if err != nil {
		app.modelError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, analysis)
}

// interviewKey identifies an in-flight interview answer for SSE handover.
type interviewKey struct {
	token     string
	suspectID string
}

type interviewRequest struct {
	Question string `json:"question"`
}

type interviewResponse struct {
	Turn  models.InterviewTurn `json:"turn"`
	State models.AppState      `json:"state"`
}

// interviewSuspect runs one interview turn. The answer is also published to
// the broker so that a reconnecting SSE consumer can pick it up while the
// call is in flight.
func (app *application) interviewSuspect(w http.ResponseWriter, r *http.Request) {
	suspectID := r.PathValue("suspectID")
	var req interviewRequest
	if err := readJSON(r, &req); err != nil || req.Question == "" {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	store := app.sessionStore(r)
	state := store.State()
	suspect, ok := state.SuspectByID(suspectID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "suspect not found")
		return
	}
	kase, ok := state.CaseByID(suspect.CaseID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "case not found")
		return
	}

	turnID, err := random.ID("turn")
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	key := interviewKey{token: app.sessionManager.Token(r.Context()), suspectID: suspectID}
	// Buffered so the answer is never lost between a subscriber picking up
	// the channel and reaching its receive.
	answers := make(chan string, 1)
	app.interviews.Publish(key, answers)
	defer app.interviews.Unpublish(key)

	previous := state.GameState.SuspectInterviews[suspectID]
	answer, err := app.investigator.AskSuspect(r.Context(), req.Question, suspect,
		state.CaseClues(suspect.CaseID), kase, previous, app.language(r))
	if err != nil {
		app.modelError(w, r, err)
		return
	}

	// Hand the answer to a waiting SSE consumer, if any.
	select {
	case answers <- answer:
	default:
	}

	turn := models.InterviewTurn{ID: turnID, Question: req.Question, Answer: answer, Custom: true}
	store.Dispatch(game.InterviewSuspect{SuspectID: suspectID})
	next := store.Dispatch(game.SaveInterviewTurn{SuspectID: suspectID, Turn: turn})

	app.writeJSON(w, r, http.StatusOK, interviewResponse{Turn: turn, State: next})
}

// streamInterview relays an in-flight interview answer over Server Sent
// Events. When no interview is in flight the stream closes immediately and
// the client falls back to the persisted transcript.
func (app *application) streamInterview(w http.ResponseWriter, r *http.Request) {
	suspectID := r.PathValue("suspectID")
	key := interviewKey{token: app.sessionManager.Token(r.Context()), suspectID: suspectID}

	flusher, ok := w.(http.Flusher)
	if !ok {
		app.clientError(w, r, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	subscription := app.interviews.Subscribe(key)
	select {
	case answers, open := <-subscription:
		if !open {
			// No interview in flight.
			return
		}
		select {
		case answer := <-answers:
			_, _ = fmt.Fprintf(w, "event: answer\ndata: %s\n\n", answer)
			flusher.Flush()
		case <-r.Context().Done():
		}
	case <-r.Context().Done():
	}
}
