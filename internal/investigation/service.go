// Package investigation turns untrusted model output into typed domain
// records. Each operation builds a prompt, asks the completion client for a
// single response, and defensively projects the result onto the domain
// model: field names may drift, entities are referenced by approximate name,
// and the whole payload may arrive as prose instead of JSON.
package investigation

import (
	"log/slog"

	"github.com/mysterydesk/gumshoe/internal/ai"
)

type Service struct {
	client ai.Completer
	logger *slog.Logger
	// production disables the hardcoded sample fallback for case
	// generation. In production a failed generation propagates instead.
	production bool
}

func NewService(client ai.Completer, logger *slog.Logger, production bool) *Service {
	return &Service{
		client:     client,
		logger:     logger.With("source", "investigation.Service"),
		production: production,
	}
}
