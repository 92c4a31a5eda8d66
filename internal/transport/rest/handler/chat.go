package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cognovoid/internal/model"
	"cognovoid/internal/service"
)

// ChatHandler handles the companion chat endpoint
type ChatHandler struct {
	chatSvc *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Chat handles POST /v1/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.chatSvc.Reply(r.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotConfigured):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{Reply: reply})
}
