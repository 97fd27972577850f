package engine

import (
	"fmt"

	"github.com/muesli/clusters"
)

// ClusterConfig holds partitioning parameters.
type ClusterConfig struct {
	MaxIterations int // Lloyd iteration cap (default: 100)
}

// DefaultClusterConfig returns the recommended default configuration.
func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		MaxIterations: 100,
	}
}

// rowObservation wraps an encoded survey row to implement the
// clusters.Observation interface.
type rowObservation struct {
	index  int
	coords clusters.Coordinates
}

func (o rowObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o rowObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Partition splits the encoded feature rows into exactly two clusters and
// returns the cluster id (0 or 1) per row.
//
// Centroids are seeded with the two rows farthest apart (first such pair on
// ties), then refined by standard assign/recenter iterations up to the
// configured cap. Initialization uses no randomness, so identical input
// always yields identical assignments.
//
// Returns ErrClusteringFailed when fewer than two distinct rows exist or an
// iteration leaves a cluster empty.
func Partition(rows [][]float64, cfg ClusterConfig) ([]int, error) {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultClusterConfig().MaxIterations
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 survey logs, got %d", ErrClusteringFailed, len(rows))
	}

	obs := make([]rowObservation, len(rows))
	for i, row := range rows {
		coords := make(clusters.Coordinates, len(row))
		copy(coords, row)
		obs[i] = rowObservation{index: i, coords: coords}
	}

	seedA, seedB, maxDist := 0, 1, -1.0
	for i := 0; i < len(obs); i++ {
		for j := i + 1; j < len(obs); j++ {
			if d := obs[i].Distance(obs[j].coords); d > maxDist {
				seedA, seedB, maxDist = i, j, d
			}
		}
	}
	if maxDist == 0 {
		return nil, fmt.Errorf("%w: all survey logs have identical features", ErrClusteringFailed)
	}

	cc := clusters.Clusters{
		{Center: append(clusters.Coordinates{}, obs[seedA].coords...)},
		{Center: append(clusters.Coordinates{}, obs[seedB].coords...)},
	}

	assignments := make([]int, len(obs))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		cc.Reset()

		changed := false
		for i, o := range obs {
			nearest := cc.Nearest(o)
			cc[nearest].Append(o)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed = true
			}
		}

		if len(cc[0].Observations) == 0 || len(cc[1].Observations) == 0 {
			return nil, fmt.Errorf("%w: partition produced an empty cluster", ErrClusteringFailed)
		}

		if !changed {
			break
		}
		cc.Recenter()
	}

	return assignments, nil
}
