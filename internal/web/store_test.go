package web

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ksandoval/mood-mirror/internal/db"
)

func TestMemoryReportStoreRoundTrip(t *testing.T) {
	store := NewMemoryReportStore()
	ctx := context.Background()

	narrative := "a calm week"
	original := &db.Report{
		ID:              uuid.New(),
		UserName:        "Marge",
		DominantMood:    "Calm",
		MoodCounts:      map[string]int{"Calm": 3, "Sad": 1},
		MoodPercentages: map[string]float64{"Calm": 75, "Sad": 25},
		Suggestions:     []string{"keep it up"},
		ClusterOutcome:  "no_correlation",
		Narrative:       &narrative,
		CreatedAt:       time.Now(),
	}

	if err := store.Create(ctx, original); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(ctx, original.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserName != "Marge" || got.DominantMood != "Calm" {
		t.Errorf("got %+v", got)
	}
	if got.Narrative == nil || *got.Narrative != narrative {
		t.Errorf("Narrative = %v", got.Narrative)
	}
}

func TestMemoryReportStoreNotFound(t *testing.T) {
	store := NewMemoryReportStore()

	_, err := store.Get(context.Background(), uuid.New())
	if !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("error = %v, want db.ErrNotFound", err)
	}
}
