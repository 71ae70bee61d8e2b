package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cramit/internal/db"
)

// SQLiteSubtopicRepo implements SubtopicRepo.
type SQLiteSubtopicRepo struct {
	db db.DBTX
}

func NewSQLiteSubtopicRepo(conn db.DBTX) *SQLiteSubtopicRepo {
	return &SQLiteSubtopicRepo{db: conn}
}

// Replace swaps the whole subtopic set for labels, keeping their order.
func (r *SQLiteSubtopicRepo) Replace(ctx context.Context, labels []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subtopics`); err != nil {
		return fmt.Errorf("clearing subtopics: %w", err)
	}
	for i, label := range labels {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO subtopics (order_index, label) VALUES (?, ?)`, i, label); err != nil {
			return fmt.Errorf("inserting subtopic %q: %w", label, err)
		}
	}
	return nil
}

func (r *SQLiteSubtopicRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT label FROM subtopics ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing subtopics: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scanning subtopic: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}
