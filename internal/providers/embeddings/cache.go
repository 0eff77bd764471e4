package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leefowlercu/docweave/internal/providers"
)

const defaultCacheSize = 10000

// Cache provides in-memory LRU caching of embedding vectors keyed by
// content hash.
type Cache struct {
	cache *lru.Cache[string, []float32]
}

// NewCache creates a new embedding cache with LRU eviction.
func NewCache(maxLen int) *Cache {
	if maxLen <= 0 {
		maxLen = defaultCacheSize
	}
	cache, err := lru.New[string, []float32](maxLen)
	if err != nil {
		// Only possible with a non-positive size.
		cache, _ = lru.New[string, []float32](defaultCacheSize)
	}
	return &Cache{cache: cache}
}

// Get retrieves a copy of a cached vector.
func (c *Cache) Get(hash string) ([]float32, bool) {
	vec, ok := c.cache.Get(hash)
	if !ok {
		return nil, false
	}

	// Return a copy so caller mutations never reach the cache.
	out := make([]float32, len(vec))
	copy(out, vec)
	return out, true
}

// Set stores a vector with automatic LRU eviction.
func (c *Cache) Set(hash string, vec []float32) {
	c.cache.Add(hash, vec)
}

// Len returns the current cache size.
func (c *Cache) Len() int {
	return c.cache.Len()
}

// ComputeHash computes the SHA-256 cache key for a text.
func ComputeHash(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// CachedProvider wraps an EmbeddingsProvider with an LRU cache so repeated
// texts are embedded only once per process.
type CachedProvider struct {
	providers.EmbeddingsProvider

	cache *Cache
}

// NewCachedProvider wraps inner with the given cache. A nil cache gets the
// default size.
func NewCachedProvider(inner providers.EmbeddingsProvider, cache *Cache) *CachedProvider {
	if cache == nil {
		cache = NewCache(defaultCacheSize)
	}
	return &CachedProvider{
		EmbeddingsProvider: inner,
		cache:              cache,
	}
}

// Embed serves cached vectors where possible and forwards only the misses
// to the wrapped provider, preserving input order in the result.
func (p *CachedProvider) Embed(ctx context.Context, req providers.EmbeddingsRequest) (*providers.EmbeddingsResult, error) {
	vectors := make([][]float32, len(req.Content))
	hashes := make([]string, len(req.Content))

	var missing []string
	var missingIdx []int
	for i, text := range req.Content {
		hashes[i] = ComputeHash(text)
		if vec, ok := p.cache.Get(hashes[i]); ok {
			vectors[i] = vec
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	result := &providers.EmbeddingsResult{
		ModelName: p.ModelName(),
	}

	if len(missing) > 0 {
		inner, err := p.EmbeddingsProvider.Embed(ctx, providers.EmbeddingsRequest{Content: missing})
		if err != nil {
			return nil, err
		}
		for j, vec := range inner.Vectors {
			i := missingIdx[j]
			vectors[i] = vec
			p.cache.Set(hashes[i], vec)
		}
		result.TokensUsed = inner.TokensUsed
		result.ModelName = inner.ModelName
	}

	result.Vectors = vectors
	return result, nil
}
