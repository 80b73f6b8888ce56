package services

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type ActivityServiceMock struct {
	mock.Mock
}

func NewActivityServiceMock() *ActivityServiceMock {
	return &ActivityServiceMock{}
}

func (m *ActivityServiceMock) Record(ctx context.Context, entry *model.ActivityLog) {
	m.Called(ctx, entry)
}

func (m *ActivityServiceMock) Persist(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
