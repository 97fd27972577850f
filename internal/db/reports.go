package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository handles report database operations.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a new report.
func (r *ReportRepository) Create(ctx context.Context, report *Report) error {
	query := `
		INSERT INTO reports (id, user_name, dominant_mood, mood_counts, mood_percentages, suggestions, cluster_outcome, narrative, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		report.ID,
		report.UserName,
		report.DominantMood,
		report.MoodCounts,
		report.MoodPercentages,
		report.Suggestions,
		report.ClusterOutcome,
		report.Narrative,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}
	return nil
}

// Get retrieves a report by ID.
func (r *ReportRepository) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	query := `
		SELECT id, user_name, dominant_mood, mood_counts, mood_percentages, suggestions, cluster_outcome, narrative, created_at
		FROM reports
		WHERE id = $1
	`
	var report Report
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.UserName,
		&report.DominantMood,
		&report.MoodCounts,
		&report.MoodPercentages,
		&report.Suggestions,
		&report.ClusterOutcome,
		&report.Narrative,
		&report.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying report: %w", err)
	}
	return &report, nil
}

// RecentForUser retrieves the most recent reports for a display name, newest
// first.
func (r *ReportRepository) RecentForUser(ctx context.Context, userName string, limit int) ([]Report, error) {
	query := `
		SELECT id, user_name, dominant_mood, mood_counts, mood_percentages, suggestions, cluster_outcome, narrative, created_at
		FROM reports
		WHERE user_name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var report Report
		if err := rows.Scan(
			&report.ID,
			&report.UserName,
			&report.DominantMood,
			&report.MoodCounts,
			&report.MoodPercentages,
			&report.Suggestions,
			&report.ClusterOutcome,
			&report.Narrative,
			&report.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

// Delete removes a report by ID.
func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reports WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
