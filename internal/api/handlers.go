package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mouniksai/Challenge-1b/internal/artifact"
)

const maxRequestBytes = 1 << 20

// handleAnalyze runs the pipeline on an input artifact in the request body
// and returns the output artifact. Malformed artifacts are a 400; everything
// downstream degrades instead of failing, so a well-formed request answers
// 200 even when no document could be read.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		jsonError(w, "read request body", http.StatusBadRequest)
		return
	}

	in, err := artifact.ParseInput(raw)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := s.engine.Run(r.Context(), in)
	if err != nil {
		s.log.Error("pipeline run failed", "error", err)
		jsonError(w, "pipeline run failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		jsonError(w, "assistant disabled", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"model": s.client.Model(),
		"stats": s.client.Stats.Snapshot(),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
