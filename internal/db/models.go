package db

import (
	"time"

	"github.com/google/uuid"
)

// Report represents a persisted mood analysis report.
type Report struct {
	ID              uuid.UUID
	UserName        string
	DominantMood    string
	MoodCounts      map[string]int
	MoodPercentages map[string]float64
	Suggestions     []string
	ClusterOutcome  string
	Narrative       *string // nullable - set when an AI narrative was generated
	CreatedAt       time.Time
}
