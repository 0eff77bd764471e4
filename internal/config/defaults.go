package config

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultLogFile  = "~/.config/docweave/docweave.log"

	// Chunking defaults.
	DefaultChunkSizeChars  = 1000
	DefaultMinSectionWords = 5000
	DefaultMaxSectionWords = 50000
	DefaultOverlapLines    = 20

	// Topic detection defaults.
	DefaultMinTopics = 3
	DefaultMaxTopics = 10

	// Similarity defaults.
	DefaultClusterThreshold = 0.7
	DefaultLinkThreshold    = 0.3
	DefaultLinkTopK         = 5

	// Semantic provider defaults.
	DefaultSemanticProvider  = "openai"
	DefaultSemanticModel     = "gpt-4o-mini"
	DefaultSemanticRateLimit = 60
	DefaultSemanticAPIKeyEnv = "OPENAI_API_KEY"

	// Embeddings provider defaults.
	DefaultEmbeddingsProvider   = "ollama"
	DefaultEmbeddingsModel      = "all-minilm"
	DefaultEmbeddingsDimensions = 384
	DefaultEmbeddingsCacheSize  = 1024
	DefaultEmbeddingsAPIKeyEnv  = "OPENAI_API_KEY"

	// Store defaults.
	DefaultStorePath = "~/.config/docweave/docweave.db"
)

// NewDefaultConfig returns a Config populated with every default value.
func NewDefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
		Chunking: ChunkingConfig{
			ChunkSizeChars:  DefaultChunkSizeChars,
			MinSectionWords: DefaultMinSectionWords,
			MaxSectionWords: DefaultMaxSectionWords,
			OverlapLines:    DefaultOverlapLines,
		},
		Topics: TopicsConfig{
			MinTopics: DefaultMinTopics,
			MaxTopics: DefaultMaxTopics,
		},
		Similarity: SimilarityConfig{
			ClusterThreshold: DefaultClusterThreshold,
			LinkThreshold:    DefaultLinkThreshold,
			LinkTopK:         DefaultLinkTopK,
		},
		Semantic: SemanticConfig{
			Provider:  DefaultSemanticProvider,
			Model:     DefaultSemanticModel,
			RateLimit: DefaultSemanticRateLimit,
			APIKeyEnv: DefaultSemanticAPIKeyEnv,
		},
		Embeddings: EmbeddingsConfig{
			Provider:   DefaultEmbeddingsProvider,
			Model:      DefaultEmbeddingsModel,
			Dimensions: DefaultEmbeddingsDimensions,
			CacheSize:  DefaultEmbeddingsCacheSize,
			APIKeyEnv:  DefaultEmbeddingsAPIKeyEnv,
		},
		Store: StoreConfig{
			Path: DefaultStorePath,
		},
	}
}
