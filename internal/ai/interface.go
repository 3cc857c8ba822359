package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with chat-completion models.
// Implementations must be safe for concurrent use.
type LLMProvider interface {
	// Complete sends one system turn and one user turn and returns the text of
	// the first completion choice, unmodified.
	Complete(ctx context.Context, system, user string) (string, error)
}
