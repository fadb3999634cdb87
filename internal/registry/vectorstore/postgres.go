package vectorstore

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// PostgresStore keeps collections in PostgreSQL using the pgvector extension.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects, pings and applies pending migrations.
func NewPostgresStore(ctx context.Context, connectionURI string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connectionURI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PostgreSQL config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnIdleTime = 30 * time.Minute
	config.MaxConnLifetime = 2 * time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrationFS, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create sub filesystem: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(database.DialectPostgres, db, migrationFS)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, collection string, doc Document) error {
	literal, err := vectorLiteral(doc.Embedding)
	if err != nil {
		return err
	}
	metadata := doc.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO vector_collections (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			collection,
		); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collection, err)
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO vector_documents (collection, id, content, metadata, embedding, updated_at)
			VALUES ($1, $2, $3, $4, $5::vector, NOW())
			ON CONFLICT (collection, id) DO UPDATE SET
				content = EXCLUDED.content,
				metadata = EXCLUDED.metadata,
				embedding = EXCLUDED.embedding,
				updated_at = NOW()`,
			collection, doc.ID, doc.Content, metadata, literal,
		)
		if err != nil {
			return fmt.Errorf("failed to store document %s: %w", doc.ID, err)
		}
		return nil
	})
}

func (s *PostgresStore) HasCollection(ctx context.Context, collection string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM vector_collections WHERE name = $1)`, collection,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up collection %s: %w", collection, err)
	}
	return exists, nil
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id FROM vector_documents WHERE collection = $1 ORDER BY id`, collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read document ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *PostgresStore) Query(ctx context.Context, collection string, embedding []float32, k int) ([]Hit, error) {
	exists, err := s.HasCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("collection %s: %w", collection, ErrCollectionNotFound)
	}
	if k < 1 {
		return nil, ErrInvalidTopK
	}

	literal, err := vectorLiteral(embedding)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, content, metadata, 1 - (embedding <=> $2::vector) AS similarity
		FROM vector_documents
		WHERE collection = $1
		ORDER BY embedding <=> $2::vector
		LIMIT $3`,
		collection, literal, k,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	hits := []Hit{}
	for rows.Next() {
		var (
			hit        Hit
			similarity float64
		)
		if err := rows.Scan(&hit.ID, &hit.Content, &hit.Metadata, &similarity); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		hit.Similarity = float32(similarity)
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read query results: %w", err)
	}
	return hits, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// vectorLiteral renders an embedding in pgvector's text input form.
func vectorLiteral(vec []float32) (string, error) {
	if len(vec) == 0 {
		return "", errors.New("embedding vector is empty")
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String(), nil
}
