package adaptors

import (
	"context"
	"database/sql"

	"content_intelligence/internal/pkg/errors"

	_ "github.com/lib/pq"
)

var sqlOpen = sql.Open

// ConnectPostgres opens a lib/pq connection pool and verifies it with a ping.
func ConnectPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sqlOpen("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, `failed to open postgres connection`)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, `failed to ping postgres`)
	}
	return db, nil
}
