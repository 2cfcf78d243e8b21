// README: Catalog store backed by PostgreSQL.
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListCities(ctx context.Context) ([]City, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, country
		FROM cities
		ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[City])
}

// SeedDefaults inserts the built-in cities when the table is empty.
func (s *Store) SeedDefaults(ctx context.Context) error {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM cities`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, c := range defaultCities {
		batch.Queue(`INSERT INTO cities (name, country, position) VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`, c.Name, c.Country, i)
	}
	return s.db.SendBatch(ctx, batch).Close()
}
