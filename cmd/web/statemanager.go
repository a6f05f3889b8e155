package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/mysterydesk/gumshoe/internal/content"
	"github.com/mysterydesk/gumshoe/internal/errors"
	"github.com/mysterydesk/gumshoe/internal/game"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/mysterydesk/gumshoe/internal/repositories"
)

// stateManager hands out one game store per session. Stores are created on
// first touch from the persisted state, or from seed content when nothing
// usable was persisted, and every transition is written back synchronously
// through the subscription boundary.
type stateManager struct {
	mu     sync.Mutex
	stores map[string]*game.Store
	repo   *repositories.AppStateRepository
	logger *slog.Logger
}

func newStateManager(repo *repositories.AppStateRepository, logger *slog.Logger) *stateManager {
	return &stateManager{
		stores: map[string]*game.Store{},
		repo:   repo,
		logger: logger.With("source", "stateManager"),
	}
}

func (m *stateManager) store(ctx context.Context, token, lang string) *game.Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[token]; ok {
		return store
	}

	seed := content.Seed(lang)
	store := game.NewStore(seed)

	persisted, err := m.repo.Load(ctx, token)
	switch {
	case err == nil:
		store.Dispatch(game.Load{State: *persisted})
	case errors.Is(err, repositories.ErrNotFound):
		// First visit, start from seed.
	default:
		// Unreadable saves are abandoned rather than recovered.
		m.logger.Warn("discarding unreadable persisted state", errors.SlogError(err))
	}

	store.Subscribe(func(state models.AppState) {
		if saveErr := m.repo.Save(context.Background(), token, state); saveErr != nil {
			m.logger.Error("persist app state failed", errors.SlogError(saveErr))
		}
	})

	m.stores[token] = store
	return store
}

// sessionStore resolves the store for the request's session, forcing a
// session token into existence on first touch.
func (app *application) sessionStore(r *http.Request) *game.Store {
	ctx := r.Context()
	if app.sessionManager.Token(ctx) == "" {
		// scs generates the token at commit time, so a brand new session
		// has none yet. Write the language and commit early; the final
		// commit in LoadAndSave reuses the generated token.
		app.sessionManager.Put(ctx, "language", app.language(r))
		if _, _, err := app.sessionManager.Commit(ctx); err != nil {
			app.logger.Error("commit new session", errors.SlogError(err))
		}
	}
	return app.states.store(ctx, app.sessionManager.Token(ctx), app.language(r))
}
