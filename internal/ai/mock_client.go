package ai

import (
	"context"
	"sync"
)

// MockClient is a scripted Client for tests
type MockClient struct {
	mu       sync.Mutex
	replies  []string
	err      error
	prompts  []string
	replyIdx int
}

// NewMockClient creates a mock that replies with the given strings in order,
// repeating the last one once exhausted
func NewMockClient(replies ...string) *MockClient {
	return &MockClient{replies: replies}
}

// FailWith makes every Complete call return the given error
func (m *MockClient) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Complete records the prompt and returns the next scripted reply
func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", nil
	}
	reply := m.replies[m.replyIdx]
	if m.replyIdx < len(m.replies)-1 {
		m.replyIdx++
	}
	return reply, nil
}

// Prompts returns the prompts seen so far
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
