package mocks

import (
	"context"

	"recap-server/internal/transcript"

	"github.com/stretchr/testify/mock"
)

// MockTranscriptClient is a mock type for the transcript.Client type
type MockTranscriptClient struct {
	mock.Mock
}

// ExtractVideoID provides a mock function with given fields: rawURL
func (_m *MockTranscriptClient) ExtractVideoID(rawURL string) (string, error) {
	ret := _m.Called(rawURL)

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

// Fetch provides a mock function with given fields: ctx, videoID
func (_m *MockTranscriptClient) Fetch(ctx context.Context, videoID string) (string, error) {
	ret := _m.Called(ctx, videoID)

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

// NewMockTranscriptClient creates a new instance of MockTranscriptClient. It also registers a testing interface on the mock.
func NewMockTranscriptClient(t interface {
	mock.TestingT
	Helper()
}) *MockTranscriptClient {
	m := &MockTranscriptClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ transcript.Client = (*MockTranscriptClient)(nil)
