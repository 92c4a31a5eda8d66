package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cognovoid/internal/config"
	"cognovoid/internal/model"
	"cognovoid/internal/predictor"
	"cognovoid/internal/scoring"
	"cognovoid/internal/service"
)

type stubModel struct {
	err error
}

func (m *stubModel) Meta() predictor.Meta {
	return predictor.Meta{
		Kind:           predictor.KindClassifier,
		Labels:         []string{"Angry", "Calm", "Impulsive", "Stressed"},
		FeatureColumns: []string{"sleep", "stress", "mood", "focus", "screen", "anxiety", "fatigue"},
	}
}

func (m *stubModel) Predict(row []float64) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return 1, nil
}

func testRouter(modelErr error, groq *config.GroqConfig) http.Handler {
	if groq == nil {
		groq = &config.GroqConfig{BaseURL: "http://127.0.0.1:0", Model: "m", Temperature: 0.6, TimeoutMS: 100}
	}
	adapter := predictor.NewAdapter(&stubModel{err: modelErr})
	return NewRouter(&Container{
		ScoreService: service.NewScoreService(adapter, nil, scoring.PolicyWeighted),
		ChatService:  service.NewChatService(groq),
	})
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(nil, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestPredictEndpoint(t *testing.T) {
	body := strings.NewReader(`{"sleep": 4, "stress": 5, "mood": 1, "focus": 1, "screen": 10, "anxiety": 5, "fatigue": 5}`)
	req := httptest.NewRequest("POST", "/v1/predict", body)
	rec := httptest.NewRecorder()
	testRouter(nil, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var report model.RiskReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.State != "Calm" {
		t.Errorf("state = %q, want Calm", report.State)
	}
	if report.RiskScore < 0 || report.RiskScore > 100 {
		t.Errorf("risk = %d outside [0,100]", report.RiskScore)
	}
	if report.StateProbabilities == nil || report.MissingFeatures == nil || report.ExtraGuidance == nil {
		t.Error("response must never carry null collection fields")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestPredictEmptyBodyScoresDefaults(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/predict", nil)
	rec := httptest.NewRecorder()
	testRouter(nil, nil).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var report model.RiskReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if len(report.MissingFeatures) == 0 {
		t.Error("an empty payload should report every feature missing")
	}
}

func TestPredictSurfacesModelError(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/predict", strings.NewReader(`{"stress": 5}`))
	rec := httptest.NewRecorder()
	testRouter(errors.New("booster shape mismatch"), nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var payload map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload["error"] != "booster shape mismatch" {
		t.Errorf("error = %q, want the model message verbatim", payload["error"])
	}
}

func TestChatValidationAndConfigErrors(t *testing.T) {
	router := testRouter(nil, nil) // no API key configured

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/chat", strings.NewReader(`{"message": ""}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty message: status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/chat", strings.NewReader(`{"message": "hi"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("missing credential: status = %d, want 503", rec.Code)
	}
}

func TestChatRelaysReply(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	}))
	defer upstream.Close()

	router := testRouter(nil, &config.GroqConfig{
		APIKey: "key", BaseURL: upstream.URL, Model: "m", Temperature: 0.6, TimeoutMS: 2000,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/chat", strings.NewReader(`{"message": "hi"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp model.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "hello there" {
		t.Errorf("reply = %q", resp.Reply)
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(nil, nil).ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/v1/predict", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("missing CORS headers on preflight")
	}
}
