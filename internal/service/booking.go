package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	store    ports.DocumentStore
	notifier ports.BookingNotifier
	logger   logger.Logger

	notifying sync.WaitGroup
}

func NewBookingService(
	store ports.DocumentStore,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) Create(ctx context.Context, b domain.Booking) (string, error) {
	id, err := create(ctx, s.store, domain.CollectionBooking, b)
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", id),
		logger.String("type", b.Type),
		logger.String("item_id", b.ItemID),
		logger.Int("guests", b.Guests),
	)

	if s.notifier != nil {
		s.notifying.Add(1)
		go func() {
			defer s.notifying.Done()
			s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), id, b)
		}()
	}

	return id, nil
}

// Wait ждёт отправки начатых уведомлений о бронях или отмены ctx.
func (s *BookingService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.notifying.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
