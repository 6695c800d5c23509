package adaptors

import (
	"context"

	"content_intelligence/internal/domain/models"
)

// DocumentSource fetches documents of one collection or global, page by page.
type DocumentSource interface {
	Fetch(ctx context.Context, collection string, limit int, offset int) ([]models.RawDocument, error)
}

// DocumentWriter mirrors saved CMS documents into the document source.
type DocumentWriter interface {
	Upsert(ctx context.Context, doc models.RawDocument) error
}

// SettingsStore holds the persisted per-site settings. LoadSettings returns
// nil when none were saved.
type SettingsStore interface {
	LoadSettings(ctx context.Context) (*models.SeoConfig, error)
	SaveSettings(ctx context.Context, cfg models.SeoConfig) error
}

// ScoreStore persists analysis score snapshots.
type ScoreStore interface {
	RecordSnapshot(ctx context.Context, snapshot models.ScoreSnapshot) error
	LatestScores(ctx context.Context) (map[string]int, error)
	History(ctx context.Context, docKey string, limit int) ([]models.ScoreSnapshot, error)
}
