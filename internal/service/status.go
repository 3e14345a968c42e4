package service

import (
	"context"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// StatusService probes the document store for the diagnostic endpoint.
type StatusService struct {
	store  ports.DocumentStore
	logger logger.Logger
}

func NewStatusService(store ports.DocumentStore, logger logger.Logger) *StatusService {
	return &StatusService{
		store:  store,
		logger: logger,
	}
}

// Check не возвращает ошибку: сбой проверки попадает в статус.
func (s *StatusService) Check(ctx context.Context) domain.StorageStatus {
	if s.store == nil {
		return domain.StorageStatus{State: domain.StorageNotConfigured}
	}

	collections, err := s.store.ListCollections(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "storage probe failed",
			logger.String("error", err.Error()),
		)
		return domain.StorageStatus{State: domain.StorageFailing, Error: err.Error()}
	}

	return domain.StorageStatus{State: domain.StorageConnected, Collections: collections}
}
