package engine

import "fmt"

// Distribution holds mood-frequency statistics over a merged log set.
type Distribution struct {
	Counts      map[string]int
	Percentages map[string]float64
	Dominant    string
	Total       int

	// Labels lists mood labels in first-seen input order. Dominant-mood
	// tie-breaks follow this order, so identical inputs always produce the
	// same headline mood.
	Labels []string
}

// ComputeDistribution counts moods across the merged log set and determines
// the dominant mood. When two or more labels tie for the maximum count, the
// label seen earliest in the input wins.
func ComputeDistribution(logs []MoodLog) (*Distribution, error) {
	if len(logs) == 0 {
		return nil, ErrNoMoodData
	}

	d := &Distribution{
		Counts:      make(map[string]int),
		Percentages: make(map[string]float64),
	}

	for i, l := range logs {
		if l.Mood == "" {
			return nil, fmt.Errorf("log %d: %w", i, ErrMissingMood)
		}
		if _, seen := d.Counts[l.Mood]; !seen {
			d.Labels = append(d.Labels, l.Mood)
		}
		d.Counts[l.Mood]++
		d.Total++
	}

	for _, label := range d.Labels {
		d.Percentages[label] = float64(d.Counts[label]) / float64(d.Total) * 100
	}

	// Max scan over first-seen order; strict > keeps the earliest label on ties.
	best := -1
	for _, label := range d.Labels {
		if d.Counts[label] > best {
			best = d.Counts[label]
			d.Dominant = label
		}
	}

	return d, nil
}
