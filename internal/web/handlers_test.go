package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ksandoval/mood-mirror/internal/engine"
)

func testServer() *Server {
	return NewServer(ServerConfig{
		Engine: engine.New(engine.DefaultConfig()),
		Store:  NewMemoryReportStore(),
	})
}

func postAnalyze(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeHandlerCameraOnly(t *testing.T) {
	s := testServer()

	rec := postAnalyze(t, s, `{
		"camera_moods": [
			{"mood": "Happy"},
			{"mood": "Happy"},
			{"mood": "Sad"}
		]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.DominantMood != "Happy" {
		t.Errorf("DominantMood = %q, want Happy", resp.DominantMood)
	}
	if resp.MoodCounts["Happy"] != 2 || resp.MoodCounts["Sad"] != 1 {
		t.Errorf("MoodCounts = %v", resp.MoodCounts)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != engine.FallbackNoCorrelation {
		t.Errorf("Suggestions = %v, want single generic fallback", resp.Suggestions)
	}
	if resp.ClusterOutcome != string(engine.ClusterOutcomeSkipped) {
		t.Errorf("ClusterOutcome = %q, want skipped", resp.ClusterOutcome)
	}
	if resp.ReportID == "" {
		t.Error("ReportID missing with storage configured")
	}
}

func TestAnalyzeHandlerSurveyCorrelation(t *testing.T) {
	s := testServer()

	rec := postAnalyze(t, s, `{
		"user_name": "Marge",
		"daily_logs": [
			{"mood": "Anxious", "sleep": "Low", "water": "Medium", "exercise": "None", "pain": "Medium", "energy": "Medium"},
			{"mood": "Calm", "sleep": "High", "water": "Medium", "exercise": "None", "pain": "Medium", "energy": "Medium"}
		]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.ClusterOutcome != string(engine.ClusterOutcomeCorrelated) {
		t.Errorf("ClusterOutcome = %q, want correlated", resp.ClusterOutcome)
	}
	if len(resp.Suggestions) != 1 || !strings.Contains(resp.Suggestions[0], "sleep") {
		t.Errorf("Suggestions = %v, want sleep message only", resp.Suggestions)
	}
}

func TestAnalyzeHandlerInputErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "invalid JSON",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty log set",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing mood field",
			body:       `{"daily_logs": [{"sleep": "Low"}]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer()
			rec := postAnalyze(t, s, tt.body)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Status != "error" || resp.Message == "" {
				t.Errorf("error body = %+v", resp)
			}
		})
	}
}

func TestGetReportRoundTrip(t *testing.T) {
	s := testServer()

	rec := postAnalyze(t, s, `{"camera_moods": [{"mood": "Calm"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze status = %d: %s", rec.Code, rec.Body.String())
	}

	var created analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/reports/"+created.ReportID, nil)
	getRec := httptest.NewRecorder()
	s.Router().ServeHTTP(getRec, req)

	if getRec.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", getRec.Code, getRec.Body.String())
	}

	var fetched analyzeResponse
	if err := json.Unmarshal(getRec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if fetched.DominantMood != "Calm" {
		t.Errorf("DominantMood = %q, want Calm", fetched.DominantMood)
	}
	if fetched.ReportID != created.ReportID {
		t.Errorf("ReportID = %q, want %q", fetched.ReportID, created.ReportID)
	}
}

func TestGetReportErrors(t *testing.T) {
	tests := []struct {
		name       string
		store      ReportStore
		path       string
		wantStatus int
	}{
		{
			name:       "storage not configured",
			store:      nil,
			path:       "/reports/5c9cb3c6-7a32-4b3e-9f6a-111111111111",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid id",
			store:      NewMemoryReportStore(),
			path:       "/reports/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown id",
			store:      NewMemoryReportStore(),
			path:       "/reports/5c9cb3c6-7a32-4b3e-9f6a-111111111111",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(ServerConfig{Store: tt.store})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
