package domainsettings

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations holds the goose migrations for PostgresStore.
// Apply them with pg.Migrate(ctx, pool, cfg, domainsettings.Migrations, log).
//
//go:embed migrations/*.sql
var Migrations embed.FS

const (
	selectHomeURL = `SELECT home_url FROM site_settings WHERE id`
	selectDomains = `SELECT language, url, is_default FROM language_domains ORDER BY position, language`
	upsertHomeURL = `INSERT INTO site_settings (id, home_url, updated_at) VALUES (TRUE, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET home_url = EXCLUDED.home_url, updated_at = NOW()`
	deleteDomains = `DELETE FROM language_domains`
	insertDomain  = `INSERT INTO language_domains (language, url, position, is_default) VALUES ($1, $2, $3, $4)`
)

// PostgresStore reads settings from the site_settings and language_domains tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a PostgresStore backed by pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Load implements Store.
func (s *PostgresStore) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	err := s.pool.QueryRow(ctx, selectHomeURL).Scan(&snap.HomeURL)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return Snapshot{}, errors.Join(ErrFailedToLoad, err)
	}
	homeMissing := errors.Is(err, pgx.ErrNoRows)

	rows, err := s.pool.Query(ctx, selectDomains)
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToLoad, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d         Domain
			isDefault bool
		)
		if err := rows.Scan(&d.Language, &d.URL, &isDefault); err != nil {
			return Snapshot{}, errors.Join(ErrFailedToLoad, err)
		}
		if isDefault {
			snap.DefaultLanguage = d.Language
		}
		snap.Domains = append(snap.Domains, d)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, errors.Join(ErrFailedToLoad, err)
	}

	if homeMissing && len(snap.Domains) == 0 {
		return Snapshot{}, ErrSettingsNotFound
	}
	return snap, nil
}

// Save replaces the stored settings in a single transaction.
func (s *PostgresStore) Save(ctx context.Context, snap Snapshot) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertHomeURL, snap.HomeURL); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, deleteDomains); err != nil {
			return err
		}
		for i, d := range snap.Domains {
			if _, err := tx.Exec(ctx, insertDomain, d.Language, d.URL, i, d.Language == snap.DefaultLanguage); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}
