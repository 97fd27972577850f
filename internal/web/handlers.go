package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ksandoval/mood-mirror/internal/db"
	"github.com/ksandoval/mood-mirror/internal/engine"
	"github.com/ksandoval/mood-mirror/internal/report"
)

// emailSendTimeout bounds background report delivery.
const emailSendTimeout = 30 * time.Second

// Handlers contains HTTP handlers for the analysis API. Store, mailer, and
// narrator are optional; nil disables the corresponding step.
type Handlers struct {
	engine   *engine.Engine
	store    ReportStore
	mailer   *report.Mailer
	narrator *report.NarrativeGenerator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(e *engine.Engine, store ReportStore, mailer *report.Mailer, narrator *report.NarrativeGenerator) *Handlers {
	return &Handlers{
		engine:   e,
		store:    store,
		mailer:   mailer,
		narrator: narrator,
	}
}

// analyzeRequest is the POST /analyze input contract. Missing sequences
// default to empty.
type analyzeRequest struct {
	UserName      string           `json:"user_name"`
	GuardianEmail string           `json:"guardian_email"`
	ClinicEmail   string           `json:"clinic_email"`
	DailyLogs     []engine.MoodLog `json:"daily_logs"`
	CameraMoods   []engine.MoodLog `json:"camera_moods"`
}

// analyzeResponse is the POST /analyze output contract.
type analyzeResponse struct {
	Status          string             `json:"status"`
	ReportID        string             `json:"report_id,omitempty"`
	DominantMood    string             `json:"dominant_mood"`
	MoodCounts      map[string]int     `json:"mood_counts"`
	MoodPercentages map[string]float64 `json:"mood_percentages"`
	Suggestions     []string           `json:"suggestions"`
	ClusterOutcome  string             `json:"cluster_outcome"`
	Narrative       string             `json:"narrative,omitempty"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Analyze handles POST /analyze: runs the engine, persists the report, and
// delivers the email in the background.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.engine.Analyze(engine.Request{
		UserName:   req.UserName,
		SurveyLogs: req.DailyLogs,
		CameraLogs: req.CameraMoods,
	})
	if err != nil {
		if engine.IsInputError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	narrative := h.generateNarrative(r.Context(), res)

	reportID := h.persist(r.Context(), res, narrative)

	h.deliver(res, narrative, req.GuardianEmail, req.ClinicEmail)

	resp := analyzeResponse{
		Status:          "success",
		ReportID:        reportID,
		DominantMood:    res.Distribution.Dominant,
		MoodCounts:      res.Distribution.Counts,
		MoodPercentages: res.Distribution.Percentages,
		Suggestions:     res.Suggestions,
		ClusterOutcome:  string(res.ClusterOutcome),
		Narrative:       narrative,
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetReport handles GET /reports/{id}.
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "report storage not configured")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	stored, err := h.store.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading report failed")
		return
	}

	resp := analyzeResponse{
		Status:          "success",
		ReportID:        stored.ID.String(),
		DominantMood:    stored.DominantMood,
		MoodCounts:      stored.MoodCounts,
		MoodPercentages: stored.MoodPercentages,
		Suggestions:     stored.Suggestions,
		ClusterOutcome:  stored.ClusterOutcome,
	}
	if stored.Narrative != nil {
		resp.Narrative = *stored.Narrative
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generateNarrative returns the AI narrative, or "" when the narrator is
// disabled or fails. Narrative problems never fail the request.
func (h *Handlers) generateNarrative(ctx context.Context, res *engine.Result) string {
	if h.narrator == nil {
		return ""
	}
	narrative, err := h.narrator.Generate(ctx, res)
	if err != nil {
		log.Printf("web: narrative generation failed: %v", err)
		return ""
	}
	return narrative
}

// persist stores the report and returns its ID, or "" when storage is
// disabled or fails. Storage problems never fail the request.
func (h *Handlers) persist(ctx context.Context, res *engine.Result, narrative string) string {
	if h.store == nil {
		return ""
	}

	stored := &db.Report{
		ID:              uuid.New(),
		UserName:        res.UserName,
		DominantMood:    res.Distribution.Dominant,
		MoodCounts:      res.Distribution.Counts,
		MoodPercentages: res.Distribution.Percentages,
		Suggestions:     res.Suggestions,
		ClusterOutcome:  string(res.ClusterOutcome),
		CreatedAt:       time.Now(),
	}
	if narrative != "" {
		stored.Narrative = &narrative
	}

	if err := h.store.Create(ctx, stored); err != nil {
		log.Printf("web: persisting report failed: %v", err)
		return ""
	}
	return stored.ID.String()
}

// deliver emails the report to the guardian and, when the address looks
// valid, the clinic. Delivery runs in the background so slow SMTP servers do
// not block the response.
func (h *Handlers) deliver(res *engine.Result, narrative, guardianEmail, clinicEmail string) {
	if h.mailer == nil {
		return
	}

	var recipients []struct{ to, subject string }
	if guardianEmail != "" {
		recipients = append(recipients, struct{ to, subject string }{
			guardianEmail, "Well-being Report for " + res.UserName,
		})
	}
	if clinicEmail != "" && strings.Contains(clinicEmail, "@") {
		recipients = append(recipients, struct{ to, subject string }{
			clinicEmail, "[Clinic] Well-being Report for " + res.UserName,
		})
	}
	if len(recipients) == 0 {
		return
	}

	body, err := report.RenderEmailBody(res, narrative)
	if err != nil {
		log.Printf("web: rendering report email failed: %v", err)
		return
	}

	chartPNG, err := report.RenderChart(res.Distribution, res.UserName)
	if err != nil {
		log.Printf("web: rendering mood chart failed: %v", err)
		chartPNG = nil
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		defer cancel()

		for _, rc := range recipients {
			if err := h.mailer.Send(ctx, rc.to, rc.subject, body, chartPNG); err != nil {
				log.Printf("web: sending report to %s failed: %v", rc.to, err)
			}
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: encoding response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: "error", Message: message})
}
