package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and returns the typed configuration.
// It searches for configuration files in priority order:
//  1. Directory specified by DOCWEAVE_CONFIG_DIR environment variable
//  2. ~/.config/docweave/
//  3. Current working directory (.)
//
// A missing config file is not an error; defaults apply and environment
// variables still override them. An invalid config file is an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")

	if envPath := os.Getenv("DOCWEAVE_CONFIG_DIR"); envPath != "" {
		v.AddConfigPath(envPath)
	}
	if home := os.Getenv("HOME"); home != "" {
		v.AddConfigPath(filepath.Join(home, ".config", "docweave"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config; %w", err)
		}
	}

	return unmarshalConfig(v)
}

// LoadFromPath reads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from %s; %w", path, err)
	}

	return unmarshalConfig(v)
}

// newViper returns a viper instance with env support and defaults set.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("DOCWEAVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setViperDefaults(v)
	return v
}

// unmarshalConfig converts viper config to typed Config struct.
func unmarshalConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config; %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	cfg.LogFile = ExpandPath(cfg.LogFile)
	cfg.Store.Path = ExpandPath(cfg.Store.Path)

	return cfg, nil
}

// setViperDefaults registers all default configuration values with a viper instance.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", DefaultLogFile)

	// Chunking defaults
	v.SetDefault("chunking.chunk_size_chars", DefaultChunkSizeChars)
	v.SetDefault("chunking.min_section_words", DefaultMinSectionWords)
	v.SetDefault("chunking.max_section_words", DefaultMaxSectionWords)
	v.SetDefault("chunking.overlap_lines", DefaultOverlapLines)

	// Topic defaults
	v.SetDefault("topics.min_topics", DefaultMinTopics)
	v.SetDefault("topics.max_topics", DefaultMaxTopics)

	// Similarity defaults
	v.SetDefault("similarity.cluster_threshold", DefaultClusterThreshold)
	v.SetDefault("similarity.link_threshold", DefaultLinkThreshold)
	v.SetDefault("similarity.link_top_k", DefaultLinkTopK)

	// Semantic defaults
	v.SetDefault("semantic.provider", DefaultSemanticProvider)
	v.SetDefault("semantic.model", DefaultSemanticModel)
	v.SetDefault("semantic.rate_limit", DefaultSemanticRateLimit)
	v.SetDefault("semantic.api_key_env", DefaultSemanticAPIKeyEnv)

	// Embeddings defaults
	v.SetDefault("embeddings.provider", DefaultEmbeddingsProvider)
	v.SetDefault("embeddings.model", DefaultEmbeddingsModel)
	v.SetDefault("embeddings.dimensions", DefaultEmbeddingsDimensions)
	v.SetDefault("embeddings.cache_size", DefaultEmbeddingsCacheSize)
	v.SetDefault("embeddings.api_key_env", DefaultEmbeddingsAPIKeyEnv)

	// Store defaults
	v.SetDefault("store.path", DefaultStorePath)
}
