package engine

import "fmt"

// Generic fallback suggestions. The generator never returns an empty list:
// one of these is emitted whenever no per-feature message applies.
const (
	// FallbackNoCorrelation is emitted when clustering ran (or was skipped for
	// lack of survey data) but no feature cleared the correlation threshold.
	FallbackNoCorrelation = "No immediate behavioral factors correlated with mood swings this week. Continue with current routines."

	// FallbackUnavailable is emitted when clustering failed on degenerate data.
	FallbackUnavailable = "Could not perform detailed behavioral analysis this week. Data complexity may be a factor."
)

// suggestionTemplates maps each feature to its recommendation template. The
// verb slot takes the higher-mood cluster's representative value.
var suggestionTemplates = map[string]string{
	"sleep":    "Focus on consistent sleep quality; entries reporting %q sleep track the most positive mood states.",
	"water":    "Encourage adequate daily hydration; emotional stability increases on days with %q water intake.",
	"exercise": "Introduce light daily activity and stretching; %q exercise days show a clear mood boost.",
	"pain":     "Monitor and manage pain levels closely; days with %q pain predict a brighter mood outlook.",
	"energy":   "Higher energy levels typically accompany positive mood; %q energy days stand out. Check for daytime dips.",
}

// Suggestions renders one message per correlated feature, preserving the
// fixed feature order the scorer emits. An empty correlation set yields
// exactly the generic no-correlation fallback.
func Suggestions(correlated []Correlation) []string {
	if len(correlated) == 0 {
		return []string{FallbackNoCorrelation}
	}

	msgs := make([]string, 0, len(correlated))
	for _, c := range correlated {
		tmpl, ok := suggestionTemplates[c.Feature]
		if !ok {
			msgs = append(msgs, fmt.Sprintf("Improvement in %s shows potential for better well-being.", c.Feature))
			continue
		}
		msgs = append(msgs, fmt.Sprintf(tmpl, c.HigherValue))
	}
	return msgs
}
