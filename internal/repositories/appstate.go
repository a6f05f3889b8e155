package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/mysterydesk/gumshoe/internal/db"
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/models"
)

// ErrNotFound signals that no state has been persisted for the session.
var ErrNotFound = errors.NewSentinel("app state not found")

// AppStateRepository persists the whole AppState as one serialized blob per
// session token. The state is small and written on every transition, so
// wholesale replacement beats row-per-entity bookkeeping here.
type AppStateRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewAppStateRepository(dbs *db.Database, logger *slog.Logger) *AppStateRepository {
	return &AppStateRepository{
		dbs:    dbs,
		logger: logger.With("source", "AppStateRepository"),
	}
}

// Save upserts the serialized state for the session token.
func (r *AppStateRepository) Save(ctx context.Context, token string, state models.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "marshal app state", slog.String("token", token))
	}

	stmt := `INSERT INTO app_states (token, payload, updated_at)
VALUES (@token, @payload, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
ON CONFLICT (token) DO UPDATE SET payload    = excluded.payload,
                                  updated_at = excluded.updated_at`
	params := []any{
		sql.Named("token", token),
		sql.Named("payload", payload),
	}
	if _, err = r.dbs.ReadWrite.ExecContext(ctx, stmt, params...); err != nil {
		return errors.Wrap(err, "upsert app state", slog.String("token", token))
	}
	return nil
}

// Load restores the state for the session token. Returns ErrNotFound when
// the session has no persisted state; an unparseable blob surfaces as an
// unmarshalling error. Callers start fresh from seed content in both cases.
func (r *AppStateRepository) Load(ctx context.Context, token string) (*models.AppState, error) {
	var payload []byte
	stmt := `SELECT payload FROM app_states WHERE token = ?`
	if err := r.dbs.ReadOnly.QueryRowxContext(ctx, stmt, token).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "read app state", slog.String("token", token))
	}

	var state models.AppState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, errors.Wrap(err, "unmarshal app state", slog.String("token", token))
	}
	if state.GameState.ClueAnalyses == nil {
		state.GameState.ClueAnalyses = map[string]models.ClueAnalysis{}
	}
	if state.GameState.SuspectInterviews == nil {
		state.GameState.SuspectInterviews = map[string][]models.InterviewTurn{}
	}
	return &state, nil
}

// Delete removes the persisted state for the session token.
func (r *AppStateRepository) Delete(ctx context.Context, token string) error {
	stmt := `DELETE FROM app_states WHERE token = ?`
	if _, err := r.dbs.ReadWrite.ExecContext(ctx, stmt, token); err != nil {
		return errors.Wrap(err, "delete app state", slog.String("token", token))
	}
	return nil
}
