package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cramit/internal/db"
	"github.com/alexanderramin/cramit/internal/domain"
)

// SQLiteSubjectRepo implements SubjectRepo. Chapters are stored one row per
// ordinal and reassembled in order on read.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

func NewSQLiteSubjectRepo(conn db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: conn}
}

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject, order int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subjects (id, name, color, order_index) VALUES (?, ?, ?, ?)`,
		s.ID, s.Name, string(s.Color), order)
	if err != nil {
		return fmt.Errorf("inserting subject %s: %w", s.ID, err)
	}
	for _, ch := range s.ChapterList() {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO chapters (subject_id, ordinal, name) VALUES (?, ?, ?)`,
			s.ID, ch.Ordinal, ch.Name)
		if err != nil {
			return fmt.Errorf("inserting chapter %s/%s: %w", s.ID, ch.Label(), err)
		}
	}
	return nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	var s domain.Subject
	var color string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, color FROM subjects WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subject %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	s.Color = domain.Color(color)

	chapters, err := r.listChapters(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Chapters = chapters
	return &s, nil
}

func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color FROM subjects ORDER BY order_index, id`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}

	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		var color string
		if err := rows.Scan(&s.ID, &s.Name, &color); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		s.Color = domain.Color(color)
		subjects = append(subjects, &s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	// Release the connection before the per-subject chapter queries.
	rows.Close()

	for _, s := range subjects {
		chapters, err := r.listChapters(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Chapters = chapters
	}
	return subjects, nil
}

func (r *SQLiteSubjectRepo) listChapters(ctx context.Context, subjectID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM chapters WHERE subject_id = ? ORDER BY ordinal`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing chapters for %s: %w", subjectID, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning chapter: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
