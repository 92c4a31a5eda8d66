package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cognovoid/internal/predictor"
	"cognovoid/internal/service"
)

// ScoreHandler handles scoring endpoints
type ScoreHandler struct {
	scoreSvc *service.ScoreService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreSvc *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// Predict handles POST /v1/predict
func (h *ScoreHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// an empty body scores the all-defaults vector
	if payload == nil {
		payload = map[string]interface{}{}
	}

	report, err := h.scoreSvc.Score(r.Context(), payload)
	if err != nil {
		var predErr *predictor.PredictionError
		if errors.As(err, &predErr) {
			writeError(w, http.StatusInternalServerError, predErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
