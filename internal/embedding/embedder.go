package embedding

import "context"

// Embedder converts text into a fixed-length unit-normalized vector.
// Implementations must be deterministic for identical input and safe for
// concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
