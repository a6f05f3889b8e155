package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/content"
	"github.com/mysterydesk/gumshoe/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.logger.Debug(message, "method", r.Method, "uri", r.URL.RequestURI(), "status", status)
	app.writeJSON(w, r, status, errorResponse{Error: message})
}

// modelError maps a failed model call to a response the client can retry.
// Transport and format failures from the completion endpoint look the same
// to the player.
func (app *application) modelError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ai.ErrTransport) || errors.Is(err, ai.ErrFormat) {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "model call failed", errors.SlogError(err))
		app.writeJSON(w, r, http.StatusBadGateway,
			errorResponse{Error: "the investigation service is unavailable, try again"})
		return
	}
	app.serverError(w, r, err)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

// readJSON decodes the request body into dst, rejecting unknown fields.
func readJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(err, "decode request body")
	}
	return nil
}

// language returns the session's chosen language, defaulting to English.
func (app *application) language(r *http.Request) string {
	lang := app.sessionManager.GetString(r.Context(), "language")
	if !content.Supported(lang) {
		return content.DefaultLanguage
	}
	return lang
}
