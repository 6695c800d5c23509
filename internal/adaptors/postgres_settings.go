package adaptors

import (
	"context"
	"database/sql"
	"encoding/json"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
)

// PostgresSettingsStore keeps the single per-site settings row.
type PostgresSettingsStore struct {
	DB *sql.DB
}

func NewPostgresSettingsStore(db *sql.DB) *PostgresSettingsStore {
	return &PostgresSettingsStore{DB: db}
}

func (s *PostgresSettingsStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS seo_settings (
		id INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		settings JSONB NOT NULL,
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`)
	if err != nil {
		return errors.Wrap(err, `failed to ensure seo_settings table`)
	}
	return nil
}

// LoadSettings returns nil when no settings were saved yet.
func (s *PostgresSettingsStore) LoadSettings(ctx context.Context) (*models.SeoConfig, error) {
	var raw []byte
	err := s.DB.QueryRowContext(ctx, `SELECT settings FROM seo_settings WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, `failed to load settings`)
	}
	var cfg models.SeoConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, `failed to decode settings`)
	}
	return &cfg, nil
}

func (s *PostgresSettingsStore) SaveSettings(ctx context.Context, cfg models.SeoConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, `failed to encode settings`)
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO seo_settings (id, settings, updated_at) VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET settings = EXCLUDED.settings, updated_at = NOW()`,
		raw,
	)
	if err != nil {
		return errors.Wrap(err, `failed to save settings`)
	}
	return nil
}
