// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires all API endpoints onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Problems
	mux.HandleFunc("POST /api/problems", h.createProblem)
	mux.HandleFunc("GET /api/problems", h.listProblems)
	mux.HandleFunc("GET /api/problems/{problemID}", h.getProblem)
	mux.HandleFunc("PUT /api/problems/{problemID}", h.updateProblem)
	mux.HandleFunc("PATCH /api/problems/{problemID}/notes", h.updateProblemNotes)
	mux.HandleFunc("DELETE /api/problems/{problemID}", h.deleteProblem)

	// Scheduling
	mux.HandleFunc("POST /api/problems/{problemID}/attempt", h.recordAttempt)
	mux.HandleFunc("POST /api/problems/{problemID}/postpone", h.postponeProblem)

	// Review session & rollups
	mux.HandleFunc("GET /api/today", h.getToday)
	mux.HandleFunc("GET /api/history", h.getHistory)
	mux.HandleFunc("GET /api/stats", h.getStats)

	// Backup
	mux.HandleFunc("GET /api/export", h.exportAll)
	mux.HandleFunc("POST /api/import", h.importAll)
}
