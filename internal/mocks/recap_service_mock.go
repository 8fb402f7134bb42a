package mocks

import (
	"context"

	"recap-server/internal/models"
	"recap-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecapService is a mock type for the RecapService type
type MockRecapService struct {
	mock.Mock
}

// Summarize provides a mock function with given fields: ctx, videoURL
func (_m *MockRecapService) Summarize(ctx context.Context, videoURL string) (*models.Session, error) {
	ret := _m.Called(ctx, videoURL)

	var r0 *models.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Session)
	}

	return r0, ret.Error(1)
}

// Ask provides a mock function with given fields: ctx, sessionID, question
func (_m *MockRecapService) Ask(ctx context.Context, sessionID uuid.UUID, question string) (*models.Answer, error) {
	ret := _m.Called(ctx, sessionID, question)

	var r0 *models.Answer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Answer)
	}

	return r0, ret.Error(1)
}

// GetSession provides a mock function with given fields: ctx, sessionID
func (_m *MockRecapService) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 *models.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Session)
	}

	return r0, ret.Error(1)
}

// PromptLimit provides a mock function
func (_m *MockRecapService) PromptLimit() int {
	ret := _m.Called()
	return ret.Int(0)
}

// NewMockRecapService creates a new instance of MockRecapService. It also registers a testing interface on the mock.
func NewMockRecapService(t interface {
	mock.TestingT
	Helper()
}) *MockRecapService {
	m := &MockRecapService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.RecapService = (*MockRecapService)(nil)
