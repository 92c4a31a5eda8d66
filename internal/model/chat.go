package model

// ChatRequest is the request body for the companion chat endpoint
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the companion chat reply
type ChatResponse struct {
	Reply string `json:"reply"`
}
