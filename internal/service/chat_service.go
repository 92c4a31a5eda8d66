package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cognovoid/internal/config"
)

var (
	// ErrEmptyMessage rejects a chat request before any provider call
	ErrEmptyMessage = errors.New("message is required")

	// ErrNotConfigured reports a missing provider credential; the scoring
	// endpoint keeps working when this fires
	ErrNotConfigured = errors.New("GROQ_API_KEY is not configured on the backend")
)

// personaPrompt is the fixed system persona sent with every chat request.
const personaPrompt = `You are Cognovoid — a calm rational companion.

If user sounds anxious:
- First reduce stress.
- Keep sentences short.
- Use gentle tone.
- Then guide logically.

If user wants to share story:
- Be warm and conversational.

Always respond in chat style.
Use small paragraphs.
Do not write long essays.`

// ChatService relays user text to the Groq chat completions API
type ChatService struct {
	config *config.GroqConfig
	client *http.Client
}

// NewChatService creates a new chat service
func NewChatService(cfg *config.GroqConfig) *ChatService {
	return &ChatService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Reply generates a companion reply for one user message. Empty or
// whitespace-only messages are rejected without touching the provider.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if !s.config.IsEnabled() {
		return "", ErrNotConfigured
	}

	reply, err := s.callGroq(ctx, message)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	return reply, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// callGroq makes a request to the Groq chat completions API
func (s *ChatService) callGroq(ctx context.Context, userMessage string) (string, error) {
	reqBody := completionRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: personaPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: s.config.Temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", err
	}

	if len(completion.Choices) > 0 {
		return completion.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("empty response from provider")
}
