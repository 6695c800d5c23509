package adaptors

import (
	"context"
	"database/sql"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"

	"github.com/google/uuid"
)

// PostgresScoreStore records analysis score snapshots.
type PostgresScoreStore struct {
	DB *sql.DB
}

func NewPostgresScoreStore(db *sql.DB) *PostgresScoreStore {
	return &PostgresScoreStore{DB: db}
}

func (s *PostgresScoreStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS seo_score_snapshots (
		id UUID PRIMARY KEY,
		doc_key TEXT NOT NULL,
		score INTEGER NOT NULL,
		level TEXT NOT NULL,
		fail_count INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL
	)`)
	if err != nil {
		return errors.Wrap(err, `failed to ensure seo_score_snapshots table`)
	}
	_, err = s.DB.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS seo_score_snapshots_doc_key_idx
		ON seo_score_snapshots (doc_key, recorded_at DESC)`)
	if err != nil {
		return errors.Wrap(err, `failed to ensure seo_score_snapshots index`)
	}
	return nil
}

// RecordSnapshot inserts snapshot, assigning an id when it has none.
func (s *PostgresScoreStore) RecordSnapshot(ctx context.Context, snapshot models.ScoreSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO seo_score_snapshots (id, doc_key, score, level, fail_count, warning_count, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snapshot.ID, snapshot.DocKey, snapshot.Score, string(snapshot.Level),
		snapshot.FailCount, snapshot.WarningCount, snapshot.RecordedAt,
	)
	if err != nil {
		return errors.Wrap(err, `failed to record score snapshot`)
	}
	return nil
}

// LatestScores maps every document key onto its most recent score.
func (s *PostgresScoreStore) LatestScores(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT DISTINCT ON (doc_key) doc_key, score FROM seo_score_snapshots
		ORDER BY doc_key, recorded_at DESC`,
	)
	if err != nil {
		return nil, errors.Wrap(err, `failed to query latest scores`)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			key   string
			score int
		)
		if err := rows.Scan(&key, &score); err != nil {
			return nil, errors.Wrap(err, `failed to scan latest score`)
		}
		out[key] = score
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, `failed to iterate latest scores`)
	}
	return out, nil
}

// History returns the newest snapshots of one document first.
func (s *PostgresScoreStore) History(ctx context.Context, docKey string, limit int) ([]models.ScoreSnapshot, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, doc_key, score, level, fail_count, warning_count, recorded_at
		FROM seo_score_snapshots WHERE doc_key = $1 ORDER BY recorded_at DESC LIMIT $2`,
		docKey, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, `failed to query score history`)
	}
	defer rows.Close()

	out := []models.ScoreSnapshot{}
	for rows.Next() {
		var (
			snap  models.ScoreSnapshot
			level string
		)
		if err := rows.Scan(&snap.ID, &snap.DocKey, &snap.Score, &level, &snap.FailCount, &snap.WarningCount, &snap.RecordedAt); err != nil {
			return nil, errors.Wrap(err, `failed to scan score snapshot`)
		}
		snap.Level = models.Level(level)
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, `failed to iterate score history`)
	}
	return out, nil
}
