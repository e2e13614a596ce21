package service

import (
	"context"
	"errors"
	"sync"
)

var errMockExhausted = errors.New("mock: no queued responses")

type MockResponse struct {
	Content string
	Usage   Usage
	Err     error
}

// MockProvider replays queued responses in order and records every request.
// An exhausted queue yields an UnavailableError.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
	Model     string
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses, Model: "mock"}
}

func (m *MockProvider) Queue(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, responses...)
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		m.mu.Unlock()
		return nil, &UnavailableError{Err: errMockExhausted}
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}
	return finish(req, next.Content, m.Model, next.Usage)
}

func (m *MockProvider) ModelID() string {
	return m.Model
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
