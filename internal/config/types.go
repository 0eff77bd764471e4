package config

import "os"

// Config is the root configuration structure for the application.
type Config struct {
	LogLevel   string           `yaml:"log_level" mapstructure:"log_level"`
	LogFile    string           `yaml:"log_file" mapstructure:"log_file"`
	Chunking   ChunkingConfig   `yaml:"chunking" mapstructure:"chunking"`
	Topics     TopicsConfig     `yaml:"topics" mapstructure:"topics"`
	Similarity SimilarityConfig `yaml:"similarity" mapstructure:"similarity"`
	Semantic   SemanticConfig   `yaml:"semantic" mapstructure:"semantic"`
	Embeddings EmbeddingsConfig `yaml:"embeddings" mapstructure:"embeddings"`
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
}

// ChunkingConfig holds section splitting and chunking parameters.
type ChunkingConfig struct {
	ChunkSizeChars  int `yaml:"chunk_size_chars" mapstructure:"chunk_size_chars"`
	MinSectionWords int `yaml:"min_section_words" mapstructure:"min_section_words"`
	MaxSectionWords int `yaml:"max_section_words" mapstructure:"max_section_words"`
	OverlapLines    int `yaml:"overlap_lines" mapstructure:"overlap_lines"`
}

// TopicsConfig holds topic detection parameters.
type TopicsConfig struct {
	MinTopics int `yaml:"min_topics" mapstructure:"min_topics"`
	MaxTopics int `yaml:"max_topics" mapstructure:"max_topics"`
}

// SimilarityConfig holds clustering and link graph thresholds.
type SimilarityConfig struct {
	ClusterThreshold float64 `yaml:"cluster_threshold" mapstructure:"cluster_threshold"`
	LinkThreshold    float64 `yaml:"link_threshold" mapstructure:"link_threshold"`
	LinkTopK         int     `yaml:"link_top_k" mapstructure:"link_top_k"`
}

// SemanticConfig holds semantic analysis provider configuration.
type SemanticConfig struct {
	Provider  string  `yaml:"provider" mapstructure:"provider"`
	Model     string  `yaml:"model" mapstructure:"model"`
	Endpoint  string  `yaml:"endpoint" mapstructure:"endpoint"`
	RateLimit int     `yaml:"rate_limit" mapstructure:"rate_limit"`
	APIKey    *string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	APIKeyEnv string  `yaml:"api_key_env" mapstructure:"api_key_env"`
}

// ResolveAPIKey returns the API key from config or falls back to environment variable.
func (c *SemanticConfig) ResolveAPIKey() string {
	if c.APIKey != nil && *c.APIKey != "" {
		return *c.APIKey
	}
	return os.Getenv(c.APIKeyEnv)
}

// EmbeddingsConfig holds embeddings provider configuration.
type EmbeddingsConfig struct {
	Provider   string  `yaml:"provider" mapstructure:"provider"`
	Model      string  `yaml:"model" mapstructure:"model"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Dimensions int     `yaml:"dimensions" mapstructure:"dimensions"`
	CacheSize  int     `yaml:"cache_size" mapstructure:"cache_size"`
	APIKey     *string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	APIKeyEnv  string  `yaml:"api_key_env" mapstructure:"api_key_env"`
}

// ResolveAPIKey returns the API key from config or falls back to environment variable.
func (c *EmbeddingsConfig) ResolveAPIKey() string {
	if c.APIKey != nil && *c.APIKey != "" {
		return *c.APIKey
	}
	return os.Getenv(c.APIKeyEnv)
}

// StoreConfig holds vector store configuration.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}
