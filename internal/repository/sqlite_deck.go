package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cramit/internal/db"
	"github.com/alexanderramin/cramit/internal/domain"
)

// SQLiteDeckRepo implements DeckRepo.
type SQLiteDeckRepo struct {
	db db.DBTX
}

func NewSQLiteDeckRepo(conn db.DBTX) *SQLiteDeckRepo {
	return &SQLiteDeckRepo{db: conn}
}

const deckColumns = `id, name, total, due, status, color`

func (r *SQLiteDeckRepo) Create(ctx context.Context, d *domain.Deck, order int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decks (id, name, total, due, status, color, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.Total, d.Due, string(d.Status), string(d.Color), order)
	if err != nil {
		return fmt.Errorf("inserting deck %s: %w", d.ID, err)
	}
	return nil
}

func (r *SQLiteDeckRepo) GetByID(ctx context.Context, id string) (*domain.Deck, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+deckColumns+` FROM decks WHERE id = ?`, id)
	d, err := scanDeck(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("deck %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning deck: %w", err)
	}
	return d, nil
}

func (r *SQLiteDeckRepo) List(ctx context.Context) ([]*domain.Deck, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+deckColumns+` FROM decks ORDER BY order_index, id`)
	if err != nil {
		return nil, fmt.Errorf("listing decks: %w", err)
	}
	defer rows.Close()

	var decks []*domain.Deck
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning deck: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDeck(s scanner) (*domain.Deck, error) {
	var d domain.Deck
	var status, color string
	if err := s.Scan(&d.ID, &d.Name, &d.Total, &d.Due, &status, &color); err != nil {
		return nil, err
	}
	d.Status = domain.DeckStatus(status)
	d.Color = domain.Color(color)
	return &d, nil
}
