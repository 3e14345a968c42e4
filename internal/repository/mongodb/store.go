// Package mongodb is the MongoDB document store.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const disconnectTimeout = 5 * time.Second

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New создаёт клиента. Драйвер подключается лениво: недоступный сервер
// обнаружится только в Ping или первой операции.
func New(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

func (s *Store) CreateDocument(ctx context.Context, collection domain.Collection, record any) (string, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return "", err
	}

	res, err := s.db.Collection(collection.String()).InsertOne(ctx, record)
	if err != nil {
		return "", domain.NewStorageError("insert into "+collection.String(), err)
	}

	return domain.FormatID(res.InsertedID), nil
}

func (s *Store) GetDocuments(ctx context.Context, collection domain.Collection) ([]domain.Record, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return nil, err
	}

	cur, err := s.db.Collection(collection.String()).Find(ctx, bson.D{})
	if err != nil {
		return nil, domain.NewStorageError("find in "+collection.String(), err)
	}

	var docs []bson.M
	if err = cur.All(ctx, &docs); err != nil {
		return nil, domain.NewStorageError("read "+collection.String(), err)
	}

	res := make([]domain.Record, 0, len(docs))
	for _, d := range docs {
		res = append(res, domain.Record(d))
	}

	return res, nil
}

func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, domain.NewStorageError("list collections", err)
	}
	return names, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}
