package embedding

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type jsonCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Cached decorates an Embedder with a best-effort cache. Embedding is
// deterministic for identical input, so results are keyed by a hash of
// model and text. Cache failures fall through to the inner embedder.
type Cached struct {
	inner  Embedder
	cache  jsonCache
	model  string
	ttl    time.Duration
	logger *zap.Logger
}

func NewCached(inner Embedder, cache jsonCache, model string, ttl time.Duration, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{inner: inner, cache: cache, model: model, ttl: ttl, logger: logger}
}

func (c *Cached) Embed(ctx context.Context, text string) ([]float64, error) {
	key := c.key(text)

	var vec []float64
	if hit, err := c.cache.GetJSON(ctx, key, &vec); err == nil && hit && len(vec) > 0 {
		return vec, nil
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, key, vec, c.ttl); err != nil {
		c.logger.Debug("embedding cache write failed", zap.Error(err))
	}

	return vec, nil
}

func (c *Cached) key(text string) string {
	sum := sha256.Sum256([]byte(c.model + "\x00" + text))
	return fmt.Sprintf("embedding:%x", sum)
}
