// Package repository implements the Postgres link backend over database/sql
// with the pgx stdlib driver.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/storage"
)

// InitDB opens the connection pool and applies pending migrations.
func InitDB(dsn, migrationsPath string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Fatal("cannot open database", zap.Error(err))
	}

	if err := db.Ping(); err != nil {
		logger.Fatal("cannot reach database", zap.Error(err))
	}

	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		logger.Fatal("cannot init migrations", zap.Error(err))
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("cannot apply migrations", zap.Error(err))
	}

	logger.Info("database connected and schema up to date")
	return db
}

// LinkRepository implements storage.Storage on Postgres.
type LinkRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateLinkRepository(db *sql.DB, logger *zap.Logger) *LinkRepository {
	return &LinkRepository{
		db:     db,
		logger: logger,
	}
}

const linkColumns = `id, short_code, custom_code, original_url, password_hash,
	expires_at, direct_link, blocked_countries, blocked_ips, clicks,
	last_clicked_at, created_at`

func (r *LinkRepository) SaveLink(ctx context.Context, record storage.LinkRecord) (*storage.LinkRecord, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO links (id, short_code, custom_code, original_url, password_hash,
			expires_at, direct_link, blocked_countries, blocked_ips, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		record.ID, record.ShortCode, record.CustomCode, record.OriginalURL, record.PasswordHash,
		record.ExpiresAt, record.DirectLink, pq.Array(record.BlockedCountries), pq.Array(record.BlockedIPs), record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return nil, storage.ErrConflict
		}
		return nil, fmt.Errorf("insert link: %w", err)
	}

	return &record, nil
}

// FindByCode matches both code columns; on the rare duplicate it picks the
// oldest row instead of erroring, so a corrupt state never costs availability.
func (r *LinkRepository) FindByCode(ctx context.Context, code string) (*storage.LinkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+linkColumns+`
		 FROM links
		 WHERE short_code = $1 OR (custom_code <> '' AND custom_code = $1)
		 ORDER BY created_at, id
		 LIMIT 1;`, code)

	var record storage.LinkRecord
	var countries, ips pq.StringArray
	err := row.Scan(
		&record.ID, &record.ShortCode, &record.CustomCode, &record.OriginalURL, &record.PasswordHash,
		&record.ExpiresAt, &record.DirectLink, &countries, &ips, &record.Clicks,
		&record.LastClickedAt, &record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find link: %w", err)
	}

	record.BlockedCountries = countries
	record.BlockedIPs = ips
	return &record, nil
}

func (r *LinkRepository) InsertClick(ctx context.Context, click storage.ClickRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clicks (id, link_id, created_at, device, browser, os, referrer, ip, country, city)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		click.ID, click.LinkID, click.CreatedAt, click.Device, click.Browser, click.OS,
		click.Referrer, click.IP, click.Country, click.City,
	)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// IncrementClicks relies on a single UPDATE so concurrent clicks on the same
// link never lose increments.
func (r *LinkRepository) IncrementClicks(ctx context.Context, linkID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE links SET clicks = clicks + 1, last_clicked_at = $2 WHERE id = $1;`,
		linkID, at,
	)
	if err != nil {
		return fmt.Errorf("increment clicks: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *LinkRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
