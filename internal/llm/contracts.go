package llm

import "context"

// Completer is the interface the analysis service depends on.
type Completer interface {
	// Complete sends a single user-role prompt and returns the completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// WithAPIKey returns a Completer that authenticates with the given key.
	// /analyze requests may carry their own key; an empty key keeps the
	// configured one.
	WithAPIKey(key string) Completer
}
