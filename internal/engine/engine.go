package engine

import (
	"errors"
	"log"
)

// DefaultUserName is substituted when a request carries no display name.
const DefaultUserName = "User"

// Config holds engine tuning parameters.
type Config struct {
	// CorrelationThreshold is the minimum cluster-mean delta for a feature to
	// count as mood-correlated (default: DefaultCorrelationThreshold).
	CorrelationThreshold float64

	// Cluster configures the partitioner.
	Cluster ClusterConfig
}

// DefaultConfig returns the recommended default configuration.
func DefaultConfig() Config {
	return Config{
		CorrelationThreshold: DefaultCorrelationThreshold,
		Cluster:              DefaultClusterConfig(),
	}
}

// Engine runs the behavioral correlation analysis. It holds only immutable
// configuration, so a single Engine is safe for concurrent use; every Analyze
// call builds its own tables, assignments, and distribution.
type Engine struct {
	cfg Config
}

// New creates an engine, filling zero config fields with defaults.
func New(cfg Config) *Engine {
	if cfg.CorrelationThreshold <= 0 {
		cfg.CorrelationThreshold = DefaultCorrelationThreshold
	}
	if cfg.Cluster.MaxIterations <= 0 {
		cfg.Cluster = DefaultClusterConfig()
	}
	return &Engine{cfg: cfg}
}

// Request is one analysis invocation.
type Request struct {
	UserName   string
	SurveyLogs []MoodLog // survey-shaped entries
	CameraLogs []MoodLog // camera-inferred, mood only
}

// ClusterOutcome names how the clustering branch of an analysis concluded.
type ClusterOutcome string

const (
	// ClusterOutcomeCorrelated: clustering ran and at least one feature
	// cleared the correlation threshold.
	ClusterOutcomeCorrelated ClusterOutcome = "correlated"

	// ClusterOutcomeNoCorrelation: clustering ran but no feature cleared the
	// threshold.
	ClusterOutcomeNoCorrelation ClusterOutcome = "no_correlation"

	// ClusterOutcomeSkipped: survey data absent or incomplete, clustering not
	// attempted.
	ClusterOutcomeSkipped ClusterOutcome = "skipped"

	// ClusterOutcomeFailed: clustering attempted but the partition was
	// degenerate.
	ClusterOutcomeFailed ClusterOutcome = "failed"
)

// Result is the structured output of one analysis.
type Result struct {
	UserName       string
	Distribution   *Distribution
	Suggestions    []string
	Correlations   []Correlation // nil unless ClusterOutcomeCorrelated
	ClusterOutcome ClusterOutcome
}

// Analyze merges the request's logs, computes the mood distribution, and runs
// the clustering branch over the survey logs. Input errors (empty log set,
// missing mood) are returned to the caller; clustering problems degrade to
// the generic fallback suggestion and are reported via ClusterOutcome.
func (e *Engine) Analyze(req Request) (*Result, error) {
	merged := Merge(req.SurveyLogs, req.CameraLogs)

	dist, err := ComputeDistribution(merged)
	if err != nil {
		return nil, err
	}

	name := req.UserName
	if name == "" {
		name = DefaultUserName
	}

	res := &Result{
		UserName:     name,
		Distribution: dist,
	}

	correlated, outcome := e.correlate(req.SurveyLogs)
	res.ClusterOutcome = outcome

	switch outcome {
	case ClusterOutcomeCorrelated:
		res.Correlations = correlated
		res.Suggestions = Suggestions(correlated)
	case ClusterOutcomeFailed:
		res.Suggestions = []string{FallbackUnavailable}
	default:
		res.Suggestions = []string{FallbackNoCorrelation}
	}

	return res, nil
}

// correlate runs the encoding, partitioning, and scoring steps. Any failure
// (including a panic inside the clustering math) terminates in a fallback
// outcome rather than propagating to the caller.
func (e *Engine) correlate(surveyLogs []MoodLog) (correlated []Correlation, outcome ClusterOutcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: clustering panic recovered: %v", r)
			correlated, outcome = nil, ClusterOutcomeFailed
		}
	}()

	enc, err := EncodeSurvey(surveyLogs)
	if errors.Is(err, ErrInsufficientData) {
		return nil, ClusterOutcomeSkipped
	}
	if err != nil {
		log.Printf("engine: encoding failed: %v", err)
		return nil, ClusterOutcomeFailed
	}

	assignments, err := Partition(enc.Features, e.cfg.Cluster)
	if err != nil {
		log.Printf("engine: %v", err)
		return nil, ClusterOutcomeFailed
	}

	correlated = ScoreCorrelations(enc, assignments, e.cfg.CorrelationThreshold)
	if len(correlated) == 0 {
		return nil, ClusterOutcomeNoCorrelation
	}
	return correlated, ClusterOutcomeCorrelated
}
