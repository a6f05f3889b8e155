package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	session := alice.New(app.sessionManager.LoadAndSave)
	// scs needs a different load strategy for Server Sent Events.
	sse := alice.New(app.serverSentEventMiddleware)

	mux.Handle("GET /api/healthy", session.ThenFunc(app.healthy))
	mux.Handle("GET /api/state", session.ThenFunc(app.state))

	mux.Handle("POST /api/cases/generate", session.ThenFunc(app.generateCase))
	mux.Handle("POST /api/cases/{caseID}/activate", session.ThenFunc(app.activateCase))
	mux.Handle("POST /api/cases/{caseID}/solve", session.ThenFunc(app.solveCase))

	mux.Handle("POST /api/clues/{clueID}/discover", session.ThenFunc(app.discoverClue))
	mux.Handle("POST /api/clues/{clueID}/examine", session.ThenFunc(app.examineClue))
	mux.Handle("POST /api/clues/{clueID}/analysis", session.ThenFunc(app.analyzeClue))

	mux.Handle("POST /api/suspects/{suspectID}/analysis", session.ThenFunc(app.analyzeSuspect))
	mux.Handle("POST /api/suspects/{suspectID}/interview", session.ThenFunc(app.interviewSuspect))
	mux.Handle("GET /api/suspects/{suspectID}/interview/stream", sse.ThenFunc(app.streamInterview))

	mux.Handle("POST /api/state/reset", session.ThenFunc(app.resetState))
	mux.Handle("POST /api/language", session.ThenFunc(app.switchLanguage))

	return app.recoverPanic(app.logRequest(secureHeaders(noSurf(mux))))
}
