// Package engine implements the behavioral correlation engine: mood
// distribution statistics, categorical feature encoding, binary clustering of
// survey entries, and per-feature correlation suggestions.
package engine

// MoodLog represents one mood observation. A survey log carries all six
// fields; a camera log carries only Mood.
type MoodLog struct {
	Mood     string `json:"mood"`
	Sleep    string `json:"sleep,omitempty"`
	Water    string `json:"water,omitempty"`
	Exercise string `json:"exercise,omitempty"`
	Pain     string `json:"pain,omitempty"`
	Energy   string `json:"energy,omitempty"`
}

// IsSurvey reports whether the log carries every survey feature.
func (l MoodLog) IsSurvey() bool {
	return l.Mood != "" &&
		l.Sleep != "" &&
		l.Water != "" &&
		l.Exercise != "" &&
		l.Pain != "" &&
		l.Energy != ""
}

// featureNames defines the survey features used for clustering, in the fixed
// order suggestions are emitted. Mood is tracked alongside but never clustered.
var featureNames = []string{"sleep", "water", "exercise", "pain", "energy"}

// feature extracts the named feature value from a log.
func (l MoodLog) feature(name string) string {
	switch name {
	case "sleep":
		return l.Sleep
	case "water":
		return l.Water
	case "exercise":
		return l.Exercise
	case "pain":
		return l.Pain
	case "energy":
		return l.Energy
	default:
		return ""
	}
}

// Merge combines survey and camera logs into a single sequence for
// distribution statistics. Survey logs come first, preserving input order
// within each source. The inputs are not mutated.
func Merge(survey, camera []MoodLog) []MoodLog {
	merged := make([]MoodLog, 0, len(survey)+len(camera))
	merged = append(merged, survey...)
	merged = append(merged, camera...)
	return merged
}
