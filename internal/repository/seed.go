package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cramit/internal/catalog"
	"github.com/alexanderramin/cramit/internal/db"
)

// SeedCatalog writes the whole catalog in one transaction. A failure leaves
// the store empty.
func SeedCatalog(ctx context.Context, uow db.UnitOfWork, cat *catalog.Catalog) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		subjects := NewSQLiteSubjectRepo(tx)
		for i := range cat.Subjects {
			if err := subjects.Create(ctx, &cat.Subjects[i], i); err != nil {
				return err
			}
		}

		if err := NewSQLiteSubtopicRepo(tx).Replace(ctx, cat.Subtopics); err != nil {
			return err
		}

		decks := NewSQLiteDeckRepo(tx)
		for i := range cat.Decks {
			if err := decks.Create(ctx, &cat.Decks[i], i); err != nil {
				return err
			}
		}

		if err := NewSQLiteProfileRepo(tx).Upsert(ctx, &cat.Profile); err != nil {
			return fmt.Errorf("seeding profile: %w", err)
		}
		return nil
	})
}
