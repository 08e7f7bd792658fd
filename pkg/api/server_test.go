package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/utkarshrajputt/concept-ai/pkg/config"
	"github.com/utkarshrajputt/concept-ai/pkg/models"
	"github.com/utkarshrajputt/concept-ai/pkg/provider"
	"github.com/utkarshrajputt/concept-ai/pkg/service"
	"github.com/utkarshrajputt/concept-ai/pkg/store/sqlite"
)

const testAnswer = "### Gravity\n\nGravity is the attraction between masses. It is what keeps " +
	"the moon in orbit and your feet on the ground, and it weakens with distance."

type stubProvider struct {
	answer string
	err    error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Explain(ctx context.Context, topic, level string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.answer, nil
}

func newTestServer(t *testing.T, p service.Explainer) *Server {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "api_test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.Default()
	svc := service.New(st, p, zerolog.Nop())
	return New(cfg, svc, st, zerolog.Nop())
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestExplainEndpoint(t *testing.T) {
	s := newTestServer(t, &stubProvider{answer: testAnswer})

	w := doJSON(t, s, http.MethodPost, "/explain", models.ExplainRequest{Topic: "Gravity", Level: "Student"})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	var resp models.Explanation
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Cached || resp.ProviderUsed != "stub" {
		t.Errorf("unexpected first response: %+v", resp)
	}
	if resp.Level != "student" {
		t.Errorf("level should be lower-cased: %s", resp.Level)
	}

	// Same request again is served from cache.
	w = doJSON(t, s, http.MethodPost, "/explain", models.ExplainRequest{Topic: "What is gravity?", Level: "student"})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Cached || resp.ProviderUsed != "cached" {
		t.Errorf("expected cache hit, got %+v", resp)
	}
}

func TestExplainEndpointValidation(t *testing.T) {
	s := newTestServer(t, &stubProvider{answer: testAnswer})

	cases := []models.ExplainRequest{
		{Topic: "", Level: "student"},
		{Topic: "gravity", Level: ""},
		{Topic: "gravity", Level: "expert"},
		{Topic: "john smith", Level: "student"},
	}
	for _, req := range cases {
		w := doJSON(t, s, http.MethodPost, "/explain", req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("request %+v: expected 400, got %d", req, w.Code)
		}
	}
}

func TestExplainEndpointNoProviderConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.Providers.OpenRouter.APIKey = ""
	cfg.Providers.OpenAI.APIKey = ""
	router := provider.NewRouter(cfg, zerolog.Nop())

	s := newTestServer(t, router)
	w := doJSON(t, s, http.MethodPost, "/explain", models.ExplainRequest{Topic: "gravity", Level: "student"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 for missing credentials, got %d", w.Code)
	}
}

func TestExplainEndpointRejectedAnswer(t *testing.T) {
	s := newTestServer(t, &stubProvider{answer: "That appears to be a person's name."})

	w := doJSON(t, s, http.MethodPost, "/explain", models.ExplainRequest{Topic: "random words here", Level: "student"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for vetoed answer, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteEndpoint(t *testing.T) {
	s := newTestServer(t, &stubProvider{answer: testAnswer})

	doJSON(t, s, http.MethodPost, "/explain", models.ExplainRequest{Topic: "gravity", Level: "student"})

	w := doJSON(t, s, http.MethodDelete, "/explain", deleteRequest{Topic: "gravity", Level: "student"})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var res models.DeleteResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Deleted || res.Removed != 1 {
		t.Errorf("unexpected delete result: %+v", res)
	}

	// Not found is still 200, with deleted false.
	w = doJSON(t, s, http.MethodDelete, "/explain", deleteRequest{Topic: "gravity", Level: "student"})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Deleted {
		t.Error("second delete should report deleted false")
	}
}

func TestReadEndpoints(t *testing.T) {
	s := newTestServer(t, &stubProvider{answer: testAnswer})

	doJSON(t, s, http.MethodPost, "/explain", models.ExplainRequest{Topic: "gravity", Level: "student"})
	doJSON(t, s, http.MethodPost, "/explain", models.ExplainRequest{Topic: "entropy", Level: "eli5"})

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/cache/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cache stats: expected 200, got %d", w.Code)
	}
	var stats models.CacheStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 2 {
		t.Errorf("expected 2 cached entries, got %d", stats.Entries)
	}

	w = doJSON(t, s, http.MethodGet, "/analytics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("analytics: expected 200, got %d", w.Code)
	}
	var analytics models.Analytics
	if err := json.Unmarshal(w.Body.Bytes(), &analytics); err != nil {
		t.Fatal(err)
	}
	if analytics.TotalExplanations != 2 {
		t.Errorf("expected 2 total explanations, got %d", analytics.TotalExplanations)
	}

	w = doJSON(t, s, http.MethodGet, "/suggestions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("suggestions: expected 200, got %d", w.Code)
	}
	var sugg struct {
		Suggestions []string `json:"suggestions"`
		Count       int      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sugg); err != nil {
		t.Fatal(err)
	}
	if sugg.Count != 2 {
		t.Errorf("expected 2 suggestions, got %d", sugg.Count)
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, &stubProvider{answer: testAnswer})

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected generated request ID header")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("expected client request ID echoed, got %q", got)
	}
}
