package main

import (
	"log/slog"
	"net/http"

	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/game"
	"github.com/mysterydesk/gumshoe/internal/investigation"
	"github.com/mysterydesk/gumshoe/internal/models"
)

type generateCaseRequest struct {
	Difficulty string `json:"difficulty"`
	Theme      string `json:"theme,omitempty"`
	Location   string `json:"location,omitempty"`
	Era        string `json:"era,omitempty"`
}

// generateCase asks the model for a fresh mystery and folds the whole
// bundle into the state atomically.
func (app *application) generateCase(w http.ResponseWriter, r *http.Request) {
	var req generateCaseRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	bundle, err := app.investigator.GenerateCase(r.Context(), investigation.GenerationParams{
		Difficulty: models.Difficulty(req.Difficulty),
		Theme:      req.Theme,
		Location:   req.Location,
		Era:        req.Era,
		Language:   app.language(r),
	})
	if err != nil {
		app.modelError(w, r, err)
		return
	}

	store := app.sessionStore(r)
	store.Dispatch(game.AddGeneratedCase{Bundle: *bundle})
	state := store.Dispatch(game.SetActiveCase{CaseID: bundle.Case.ID})
	app.writeJSON(w, r, http.StatusCreated, state)
}

func (app *application) activateCase(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("caseID")
	store := app.sessionStore(r)
	if _, ok := store.State().CaseByID(caseID); !ok {
		app.clientError(w, r, http.StatusNotFound, "case not found")
		return
	}
	state := store.Dispatch(game.SetActiveCase{CaseID: caseID})
	app.writeJSON(w, r, http.StatusOK, state)
}

type solveCaseRequest struct {
	SuspectID   string   `json:"suspectId"`
	EvidenceIDs []string `json:"evidenceIds"`
	Reasoning   string   `json:"reasoning"`
}

type solveCaseResponse struct {
	Solution models.CaseSolution `json:"solution"`
	State    models.AppState     `json:"state"`
}

// solveCase adjudicates the player's accusation. Validation failures are
// reported before any model call; a successful verdict flips the case to
// solved and progress to 100.
func (app *application) solveCase(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("caseID")
	var req solveCaseRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	store := app.sessionStore(r)
	state := store.State()
	kase, ok := state.CaseByID(caseID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "case not found")
		return
	}

	solution, err := app.investigator.EvaluateSolution(r.Context(), kase,
		state.CaseSuspects(caseID), state.CaseClues(caseID),
		investigation.SolveAttempt{
			AccusedSuspectID: req.SuspectID,
			EvidenceIDs:      req.EvidenceIDs,
			Reasoning:        req.Reasoning,
			Language:         app.language(r),
		})
	if err != nil {
		switch {
		case errors.Is(err, investigation.ErrUnknownSuspect),
			errors.Is(err, investigation.ErrNoGuilty),
			errors.Is(err, investigation.ErrNoEvidence):
			app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			app.modelError(w, r, err)
		}
		return
	}

	next := state
	if solution.Solved {
		next = store.Dispatch(game.SolveCase{CaseID: caseID})
		app.logger.LogAttrs(r.Context(), slog.LevelInfo, "case solved", slog.String("case_id", caseID))
	}
	app.writeJSON(w, r, http.StatusOK, solveCaseResponse{Solution: *solution, State: next})
}
