package llm

import (
	"context"
	"sync"
)

const mockReply = `{"belief_updates": [], "new_intentions": [], "reasoning": "Mock reasoning"}`

// MockClient is a configurable reasoning client for testing.
// Queued replies are returned first, in order; after that CompleteResponse.
// Complete and Reset are safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	CompleteResponse string
	CompleteError    error
	Queue            []string

	// Call tracking for assertions
	CompleteCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{CompleteResponse: mockReply}
}

func (c *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CompleteCalls = append(c.CompleteCalls, prompt)
	if c.CompleteError != nil {
		return "", c.CompleteError
	}
	if len(c.Queue) > 0 {
		next := c.Queue[0]
		c.Queue = c.Queue[1:]
		return next, nil
	}
	return c.CompleteResponse, nil
}

// Reset clears all recorded calls and resets responses to defaults.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CompleteResponse = mockReply
	c.CompleteError = nil
	c.Queue = nil
	c.CompleteCalls = nil
}
