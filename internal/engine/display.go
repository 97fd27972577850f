package engine

import (
	"fmt"
	"sort"
	"strings"
)

// FormatResult returns a human-readable summary of an analysis result,
// suitable for terminal output. Moods are listed by descending share with the
// first-seen order breaking ties, matching the dominant-mood scan.
func FormatResult(res *Result) string {
	var sb strings.Builder

	dist := res.Distribution

	entryWord := "entries"
	if dist.Total == 1 {
		entryWord = "entry"
	}
	sb.WriteString(fmt.Sprintf("Mood report for %s (%d %s)\n", res.UserName, dist.Total, entryWord))
	sb.WriteString(fmt.Sprintf("Dominant mood: %s (%.1f%%)\n", dist.Dominant, dist.Percentages[dist.Dominant]))

	labels := append([]string{}, dist.Labels...)
	sort.SliceStable(labels, func(i, j int) bool {
		return dist.Counts[labels[i]] > dist.Counts[labels[j]]
	})

	sb.WriteString("\nDistribution:\n")
	for _, label := range labels {
		sb.WriteString(fmt.Sprintf("  %-12s %3d  (%.1f%%)\n", label, dist.Counts[label], dist.Percentages[label]))
	}

	sb.WriteString("\nSuggestions:\n")
	for _, s := range res.Suggestions {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}

	if res.ClusterOutcome == ClusterOutcomeSkipped {
		sb.WriteString("\n(behavioral clustering skipped: survey data absent or incomplete)\n")
	}

	return sb.String()
}
