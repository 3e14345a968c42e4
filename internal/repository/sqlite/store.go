// Package sqlite is an embedded document store backed by a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/repository"
)

type Store struct {
	db *sql.DB
}

// New opens the database at path, creating parent directories and the
// documents table when missing.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// в SQLite один писатель
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
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
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, body, created_at) VALUES (?, ?, ?, ?)`,
		id, collection.String(), string(body), time.Now().Unix(),
	)
	if err != nil {
		return "", domain.NewStorageError("insert into "+collection.String(), err)
	}

	return id, nil
}

func (s *Store) GetDocuments(ctx context.Context, collection domain.Collection) ([]domain.Record, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? ORDER BY seq`,
		collection.String(),
	)
	if err != nil {
		return nil, domain.NewStorageError("find in "+collection.String(), err)
	}
	defer rows.Close()

	res := make([]domain.Record, 0)
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, domain.NewStorageError("scan "+collection.String(), err)
		}

		rec, err := repository.DecodeRecord(id, []byte(body))
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("read "+collection.String(), err)
	}

	return res, nil
}

func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, domain.NewStorageError("list collections", err)
	}
	defer rows.Close()

	names := make([]string, 0, len(domain.Collections))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, domain.NewStorageError("scan collection name", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list collections", err)
	}

	return names, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
