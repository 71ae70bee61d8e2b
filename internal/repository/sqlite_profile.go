package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cramit/internal/db"
	"github.com/alexanderramin/cramit/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo over the single 'default' row.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT streak, rec_subject_id, rec_topic, rec_reviews, rec_estimated_time
		FROM profile WHERE id = 'default'`

	var p domain.Profile
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.Streak,
		&p.Recommended.SubjectID,
		&p.Recommended.Topic,
		&p.Recommended.Reviews,
		&p.Recommended.EstimatedTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR REPLACE INTO profile (id, streak, rec_subject_id, rec_topic,
		rec_reviews, rec_estimated_time) VALUES ('default', ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Streak,
		p.Recommended.SubjectID,
		p.Recommended.Topic,
		p.Recommended.Reviews,
		p.Recommended.EstimatedTime,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
