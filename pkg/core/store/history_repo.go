package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryEntry is one generated report in the history table.
type HistoryEntry struct {
	ID           string    `json:"id"`
	ReportType   string    `json:"report_type"`
	StudentName  string    `json:"student_name"`
	CareerRoles  string    `json:"career_roles"`
	Filename     string    `json:"filename"`
	SectionCount int       `json:"section_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// HistoryRepo records generated reports. History is a convenience feature:
// callers treat save failures (including a missing pool) as warnings, never
// as generation failures.
type HistoryRepo struct {
	pool *pgxpool.Pool
}

// NewHistoryRepo creates a repository backed by the shared pool. The pool
// may be nil when DATABASE_URL is not configured.
func NewHistoryRepo(pool *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

// Save records one generated report and returns its assigned ID.
func (r *HistoryRepo) Save(ctx context.Context, entry *HistoryEntry) (string, error) {
	if r.pool == nil {
		return "", fmt.Errorf("database pool not configured")
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO report_history (
			id, report_type, student_name, career_roles, filename, section_count
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query,
		entry.ID, entry.ReportType, entry.StudentName, entry.CareerRoles,
		entry.Filename, entry.SectionCount,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save history entry: %w", err)
	}
	return id, nil
}

// List returns the most recent entries, newest first.
func (r *HistoryRepo) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, report_type, student_name, career_roles, filename, section_count, created_at
		FROM report_history
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.ReportType, &e.StudentName, &e.CareerRoles,
			&e.Filename, &e.SectionCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindByStudent returns entries for one student, newest first.
func (r *HistoryRepo) FindByStudent(ctx context.Context, studentName string) ([]HistoryEntry, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT id, report_type, student_name, career_roles, filename, section_count, created_at
		FROM report_history
		WHERE student_name = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, studentName)
	if err != nil {
		return nil, fmt.Errorf("failed to query history by student: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.ReportType, &e.StudentName, &e.CareerRoles,
			&e.Filename, &e.SectionCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
