package service

import (
	"context"
	"errors"
	"testing"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatusService_Check_Connected(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	svc := NewStatusService(store, newTestLogger(t))

	store.EXPECT().ListCollections(mock.Anything).Return([]string{"booking", "homestay"}, nil)

	status := svc.Check(context.Background())

	assert.Equal(t, domain.StorageConnected, status.State)
	assert.Equal(t, []string{"booking", "homestay"}, status.Collections)
}

func TestStatusService_Check_Failing(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	svc := NewStatusService(store, newTestLogger(t))

	store.EXPECT().ListCollections(mock.Anything).Return(nil, errors.New("server selection error"))

	status := svc.Check(context.Background())

	assert.Equal(t, domain.StorageFailing, status.State)
	assert.Equal(t, "server selection error", status.Error)
	assert.Nil(t, status.Collections)
}

func TestStatusService_Check_NotConfigured(t *testing.T) {
	svc := NewStatusService(nil, newTestLogger(t))

	status := svc.Check(context.Background())

	assert.Equal(t, domain.StorageNotConfigured, status.State)
}
