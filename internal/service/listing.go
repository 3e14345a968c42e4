package service

import (
	"context"
	"fmt"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ListingService stores and lists homestays and tour packages.
type ListingService struct {
	store  ports.DocumentStore
	logger logger.Logger
}

func NewListingService(store ports.DocumentStore, logger logger.Logger) *ListingService {
	return &ListingService{
		store:  store,
		logger: logger,
	}
}

func (s *ListingService) CreateHomestay(ctx context.Context, h domain.Homestay) (string, error) {
	id, err := create(ctx, s.store, domain.CollectionHomestay, h)
	if err != nil {
		return "", fmt.Errorf("create homestay: %w", err)
	}

	s.logger.Info("homestay created",
		logger.String("id", id),
		logger.String("location", h.Location),
	)

	return id, nil
}

func (s *ListingService) ListHomestays(ctx context.Context) ([]domain.Record, error) {
	records, err := list(ctx, s.store, domain.CollectionHomestay)
	if err != nil {
		return nil, fmt.Errorf("list homestays: %w", err)
	}
	return records, nil
}

func (s *ListingService) CreatePackage(ctx context.Context, p domain.Package) (string, error) {
	id, err := create(ctx, s.store, domain.CollectionPackage, p)
	if err != nil {
		return "", fmt.Errorf("create package: %w", err)
	}

	s.logger.Info("package created",
		logger.String("id", id),
		logger.String("location", p.Location),
	)

	return id, nil
}

func (s *ListingService) ListPackages(ctx context.Context) ([]domain.Record, error) {
	records, err := list(ctx, s.store, domain.CollectionPackage)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return records, nil
}

func create(ctx context.Context, store ports.DocumentStore, coll domain.Collection, record any) (string, error) {
	if store == nil {
		return "", domain.ErrStorageNotConfigured
	}
	return store.CreateDocument(ctx, coll, record)
}

func list(ctx context.Context, store ports.DocumentStore, coll domain.Collection) ([]domain.Record, error) {
	if store == nil {
		return nil, domain.ErrStorageNotConfigured
	}

	records, err := store.GetDocuments(ctx, coll)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Record, 0, len(records))
	for _, r := range records {
		res = append(res, r.WithPublicID())
	}

	return res, nil
}
