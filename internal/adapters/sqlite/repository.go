package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aos-tools/intake-server/internal/domain"
)

// recordKey identifies the one intake record a session owns. The suffix
// predates the version column and is kept for backward readability.
const recordKey = "aos:intake:v1"

// schemaVersion is written alongside the record. Rows stored before the
// column existed read back as 0 and go through the same normalization.
const schemaVersion = 1

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database and ensures the intake table exists.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS intake_records (
			key        TEXT PRIMARY KEY,
			version    INTEGER NOT NULL DEFAULT 0,
			data       TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

// Load reads the intake record. Absence, a scan failure, or malformed JSON
// all degrade to the default record — a corrupt row must never make the
// wizard unusable.
func (r *Repository) Load(ctx context.Context) (domain.IntakeData, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM intake_records WHERE key=?`, recordKey).Scan(&raw)
	if err != nil {
		return domain.DefaultIntakeData(), nil
	}
	var data domain.IntakeData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return domain.DefaultIntakeData(), nil
	}
	return data.Normalize(), nil
}

// Save serializes and overwrites the stored record wholesale.
func (r *Repository) Save(ctx context.Context, data domain.IntakeData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO intake_records (key, version, data, updated_at)
		VALUES (?,?,?,?)
		ON CONFLICT(key) DO UPDATE SET
			version=excluded.version,
			data=excluded.data,
			updated_at=excluded.updated_at`,
		recordKey, schemaVersion, string(raw), time.Now())
	return err
}

func (r *Repository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM intake_records WHERE key=?`, recordKey)
	return err
}

// ── Address convenience operations ────────────────────────────────────────────

func (r *Repository) Addresses(ctx context.Context) ([]domain.AddressEntry, error) {
	data, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Addresses, nil
}

func (r *Repository) AddAddress(ctx context.Context, entry domain.AddressEntry) error {
	data, err := r.Load(ctx)
	if err != nil {
		return err
	}
	data.Addresses = append(data.Addresses, entry)
	return r.Save(ctx, data)
}

func (r *Repository) UpdateAddress(ctx context.Context, entry domain.AddressEntry) error {
	data, err := r.Load(ctx)
	if err != nil {
		return err
	}
	data.UpdateAddress(entry)
	return r.Save(ctx, data)
}

func (r *Repository) RemoveAddress(ctx context.Context, id string) error {
	data, err := r.Load(ctx)
	if err != nil {
		return err
	}
	data.RemoveAddress(id)
	return r.Save(ctx, data)
}
