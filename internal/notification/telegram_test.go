package notification

import (
	"context"
	"testing"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestNewTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, n.bot)

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), "b1", domain.Booking{Type: "homestay"})
	})
}

func TestBookingMessage(t *testing.T) {
	phone := "+91 98765 43210"
	checkIn := "2024-12-20"
	empty := ""
	b := domain.Booking{
		Type:          "homestay",
		ItemID:        "h1",
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		CustomerPhone: &phone,
		Guests:        2,
		CheckIn:       &checkIn,
		Note:          &empty,
	}

	got := bookingMessage("b1", b)

	assert.Equal(t, "New homestay booking\n\n"+
		"Booking: b1\n"+
		"Item: h1\n"+
		"Customer: Asha <asha@example.com>\n"+
		"Phone: +91 98765 43210\n"+
		"Guests: 2\n"+
		"Check-in: 2024-12-20", got)
}

func TestBookingMessage_Minimal(t *testing.T) {
	got := bookingMessage("b2", domain.Booking{Type: "package", ItemID: "p1", CustomerName: "Ravi", CustomerEmail: "r@x.in", Guests: 1})

	assert.NotContains(t, got, "Phone")
	assert.NotContains(t, got, "Travel date")
	assert.Contains(t, got, "Guests: 1")
}
