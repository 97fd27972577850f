package engine

import "math"

// DefaultCorrelationThreshold is the minimum difference between cluster-wise
// encoded feature means for a feature to count as correlated with mood. It is
// calibrated for the small category vocabularies surveys produce (typically
// 2-4 values per feature); override it via Config when vocabularies differ.
const DefaultCorrelationThreshold = 0.5

// NeutralValue is substituted when the higher-mood cluster's feature mean does
// not map back cleanly to one of the observed categorical values.
const NeutralValue = "Optimal Level"

// Correlation describes one feature whose mean differs meaningfully between
// the lower-mood and higher-mood clusters.
type Correlation struct {
	Feature     string  // feature name, e.g. "sleep"
	Delta       float64 // |higher-cluster mean - lower-cluster mean|
	HigherValue string  // representative value in the higher-mood cluster
}

// ClusterProfile holds the per-cluster mean of every encoded column.
type ClusterProfile struct {
	MeanMood     float64
	FeatureMeans []float64 // featureNames order
	Size         int
}

// profileClusters computes per-cluster means over the encoded matrix.
func profileClusters(enc *EncodedSurvey, assignments []int) [2]ClusterProfile {
	var profiles [2]ClusterProfile
	for i := range profiles {
		profiles[i].FeatureMeans = make([]float64, len(featureNames))
	}

	for row, cluster := range assignments {
		p := &profiles[cluster]
		p.Size++
		p.MeanMood += enc.Moods[row]
		for col, v := range enc.Features[row] {
			p.FeatureMeans[col] += v
		}
	}

	for i := range profiles {
		p := &profiles[i]
		if p.Size == 0 {
			continue
		}
		n := float64(p.Size)
		p.MeanMood /= n
		for col := range p.FeatureMeans {
			p.FeatureMeans[col] /= n
		}
	}

	return profiles
}

// labelClusters orders the two clusters by mean encoded mood. The cluster
// with the smaller mean is lower-mood; on an exact tie, cluster 0 is
// lower-mood.
func labelClusters(profiles [2]ClusterProfile) (lower, higher int) {
	if profiles[1].MeanMood < profiles[0].MeanMood {
		return 1, 0
	}
	return 0, 1
}

// ScoreCorrelations labels the clusters and compares each non-mood feature's
// mean between them. Features whose means differ by at least threshold are
// returned in fixed feature order with the higher-mood cluster's
// representative value.
func ScoreCorrelations(enc *EncodedSurvey, assignments []int, threshold float64) []Correlation {
	profiles := profileClusters(enc, assignments)
	lower, higher := labelClusters(profiles)

	var correlated []Correlation
	for col, name := range featureNames {
		delta := math.Abs(profiles[higher].FeatureMeans[col] - profiles[lower].FeatureMeans[col])
		if delta < threshold {
			continue
		}
		correlated = append(correlated, Correlation{
			Feature:     name,
			Delta:       delta,
			HigherValue: representativeValue(enc.Tables[name], profiles[higher].FeatureMeans[col]),
		})
	}

	return correlated
}

// representativeValue decodes a cluster-mean back to a categorical value.
// A mean sitting halfway between two codes, or rounding outside the table,
// yields NeutralValue.
func representativeValue(table *EncodingTable, mean float64) string {
	const halfway = 0.5 - 1e-9

	nearest := math.Round(mean)
	if math.Abs(mean-nearest) >= halfway {
		return NeutralValue
	}
	v, ok := table.Value(int(nearest))
	if !ok {
		return NeutralValue
	}
	return v
}
