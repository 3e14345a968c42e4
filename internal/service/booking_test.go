package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func testBooking() domain.Booking {
	checkIn := "2024-12-20"
	return domain.Booking{
		Type:          "homestay",
		ItemID:        "65f0c0ffee0000000000abcd",
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		Guests:        2,
		CheckIn:       &checkIn,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(store, notifier, log)
	b := testBooking()

	notified := make(chan struct{})
	store.EXPECT().CreateDocument(mock.Anything, domain.CollectionBooking, b).Return("b1", nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, "b1", b).
		Run(func(context.Context, string, domain.Booking) { close(notified) }).
		Return()

	id, err := svc.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, "b1", id)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestBookingService_Create_StorageError(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(store, notifier, log)

	storeErr := domain.NewStorageError("insert into booking", errors.New("no reachable servers"))
	store.EXPECT().CreateDocument(mock.Anything, domain.CollectionBooking, mock.Anything).Return("", storeErr)

	id, err := svc.Create(context.Background(), testBooking())

	require.Error(t, err)
	assert.Empty(t, id)
	assert.True(t, errors.Is(err, domain.ErrStorage))
	notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Create_NotConfigured(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), testBooking())

	assert.ErrorIs(t, err, domain.ErrStorageNotConfigured)
}

func TestBookingService_Create_WithoutNotifier(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	svc := NewBookingService(store, nil, newTestLogger(t))

	store.EXPECT().CreateDocument(mock.Anything, domain.CollectionBooking, mock.Anything).Return("b2", nil)

	id, err := svc.Create(context.Background(), testBooking())

	require.NoError(t, err)
	assert.Equal(t, "b2", id)
}

func TestBookingService_Wait_BlocksOnNotification(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(store, notifier, newTestLogger(t))
	b := testBooking()

	release := make(chan struct{})
	store.EXPECT().CreateDocument(mock.Anything, domain.CollectionBooking, b).Return("b1", nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, "b1", b).
		Run(func(context.Context, string, domain.Booking) { <-release }).
		Return()

	_, err := svc.Create(context.Background(), b)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Wait(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, svc.Wait(context.Background()))
}

func TestBookingService_Wait_NoNotifier(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))
	assert.NoError(t, svc.Wait(context.Background()))
}
