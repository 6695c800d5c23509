package adaptors

import (
	"context"
	"database/sql"
	"encoding/json"

	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// PostgresDocumentSource reads CMS documents stored as JSONB rows.
type PostgresDocumentSource struct {
	DB  *sql.DB
	log *log.Logger
}

func NewPostgresDocumentSource(db *sql.DB, log *log.Logger) *PostgresDocumentSource {
	return &PostgresDocumentSource{DB: db, log: log}
}

func (s *PostgresDocumentSource) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS seo_documents (
		id TEXT NOT NULL,
		collection TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		input JSONB NOT NULL,
		updated_at TIMESTAMPTZ DEFAULT NOW(),
		PRIMARY KEY (collection, id)
	)`)
	if err != nil {
		return errors.Wrap(err, `failed to ensure seo_documents table`)
	}
	return nil
}

// Fetch returns one page of a collection ordered by id. Rows whose input does
// not decode are skipped.
func (s *PostgresDocumentSource) Fetch(ctx context.Context, collection string, limit int, offset int) ([]models.RawDocument, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, collection, title, input FROM seo_documents
		WHERE collection = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		collection, limit, offset,
	)
	if err != nil {
		return nil, errors.Wrap(err, `failed to query seo_documents`)
	}
	defer rows.Close()

	var out []models.RawDocument
	for rows.Next() {
		var (
			doc   models.RawDocument
			input []byte
		)
		if err := rows.Scan(&doc.ID, &doc.Collection, &doc.Title, &input); err != nil {
			return nil, errors.Wrap(err, `failed to scan seo_documents row`)
		}
		if err := json.Unmarshal(input, &doc.Input); err != nil {
			s.log.WithError(err).WithField(`id`, doc.ID).Warn(`skipping document with malformed input`)
			continue
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, `failed to iterate seo_documents`)
	}
	return out, nil
}

// Upsert stores a document, replacing any previous version.
func (s *PostgresDocumentSource) Upsert(ctx context.Context, doc models.RawDocument) error {
	input, err := json.Marshal(doc.Input)
	if err != nil {
		return errors.Wrap(err, `failed to encode document input`)
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO seo_documents (id, collection, title, input, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (collection, id) DO UPDATE
		SET title = EXCLUDED.title, input = EXCLUDED.input, updated_at = NOW()`,
		doc.ID, doc.Collection, doc.Title, input,
	)
	if err != nil {
		return errors.Wrap(err, `failed to upsert document`)
	}
	return nil
}
