// Package postgres keeps documents as JSONB rows of a single table.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/repository"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func New(dsn string, opts *dbpg.Options) (*Store, error) {
	db, err := dbpg.New(dsn, nil, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &Store{
		db: db,
		// без повторов: ошибка хранилища сразу уходит клиенту
		strategy: retry.Strategy{
			Attempts: 1,
		},
	}, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Master.PingContext(ctx)
}

func (s *Store) CreateDocument(ctx context.Context, collection domain.Collection, record any) (string, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return "", err
	}

	body, err := repository.EncodeBody(record)
	if err != nil {
		return "", err
	}

	id := repository.NewID()
	query := `INSERT INTO documents (id, collection, body) VALUES ($1, $2, $3)`
	if _, err = s.db.ExecWithRetry(ctx, s.strategy, query, id, collection.String(), string(body)); err != nil {
		return "", domain.NewStorageError("insert into "+collection.String(), err)
	}

	return id, nil
}

func (s *Store) GetDocuments(ctx context.Context, collection domain.Collection) ([]domain.Record, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return nil, err
	}

	query := `SELECT id, body FROM documents WHERE collection = $1 ORDER BY seq`
	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, collection.String())
	if err != nil {
		return nil, domain.NewStorageError("find in "+collection.String(), err)
	}
	defer rows.Close()

	res := make([]domain.Record, 0)
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err = rows.Scan(&id, &body); err != nil {
			return nil, domain.NewStorageError("scan "+collection.String(), err)
		}

		rec, err := repository.DecodeRecord(id, body)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, domain.NewStorageError("read "+collection.String(), err)
	}

	return res, nil
}

func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT collection FROM documents ORDER BY collection`
	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, domain.NewStorageError("list collections", err)
	}
	defer rows.Close()

	names := make([]string, 0, len(domain.Collections))
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, domain.NewStorageError("scan collection name", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, domain.NewStorageError("list collections", err)
	}

	return names, nil
}

func (s *Store) Close() error {
	if err := s.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}
