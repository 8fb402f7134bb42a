package mocks

import (
	"context"

	"recap-server/internal/models"
	"recap-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock type for the SessionRepository type
type MockSessionRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, session
func (_m *MockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	ret := _m.Called(ctx, session)
	return ret.Error(0)
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockSessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Session)
	}

	return r0, ret.Error(1)
}

// IncrementQuestionCount provides a mock function with given fields: ctx, id
func (_m *MockSessionRepository) IncrementQuestionCount(ctx context.Context, id uuid.UUID) (int, error) {
	ret := _m.Called(ctx, id)

	var r0 int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int)
	}

	return r0, ret.Error(1)
}

// NewMockSessionRepository creates a new instance of MockSessionRepository. It also registers a testing interface on the mock.
func NewMockSessionRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.SessionRepository = (*MockSessionRepository)(nil)
