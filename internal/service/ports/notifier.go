package ports

import (
	"context"

	"github.com/django-nerd/ulin/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, id string, booking domain.Booking)
}
