package ports

import (
	"context"

	"github.com/django-nerd/ulin/internal/domain"
)

type DocumentStore interface {
	CreateDocument(ctx context.Context, collection domain.Collection, record any) (string, error)
	GetDocuments(ctx context.Context, collection domain.Collection) ([]domain.Record, error)
	ListCollections(ctx context.Context) ([]string, error)
}
