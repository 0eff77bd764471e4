package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the config search path at an empty temp directory so
// host config files never leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DOCWEAVE_CONFIG_DIR", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Chunking.ChunkSizeChars != DefaultChunkSizeChars {
		t.Errorf("ChunkSizeChars = %d, want %d", cfg.Chunking.ChunkSizeChars, DefaultChunkSizeChars)
	}
	if cfg.Chunking.MinSectionWords != DefaultMinSectionWords {
		t.Errorf("MinSectionWords = %d, want %d", cfg.Chunking.MinSectionWords, DefaultMinSectionWords)
	}
	if cfg.Topics.MinTopics != DefaultMinTopics || cfg.Topics.MaxTopics != DefaultMaxTopics {
		t.Errorf("topics range = [%d,%d], want [%d,%d]",
			cfg.Topics.MinTopics, cfg.Topics.MaxTopics, DefaultMinTopics, DefaultMaxTopics)
	}
	if cfg.Similarity.ClusterThreshold != DefaultClusterThreshold {
		t.Errorf("ClusterThreshold = %v, want %v", cfg.Similarity.ClusterThreshold, DefaultClusterThreshold)
	}
	if cfg.Semantic.Provider != DefaultSemanticProvider {
		t.Errorf("Semantic.Provider = %q, want %q", cfg.Semantic.Provider, DefaultSemanticProvider)
	}
	if cfg.Embeddings.Provider != DefaultEmbeddingsProvider {
		t.Errorf("Embeddings.Provider = %q, want %q", cfg.Embeddings.Provider, DefaultEmbeddingsProvider)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)

	content := `log_level: debug
chunking:
  min_section_words: 2000
topics:
  min_topics: 2
  max_topics: 5
similarity:
  link_threshold: 0.5
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Chunking.MinSectionWords != 2000 {
		t.Errorf("MinSectionWords = %d, want 2000", cfg.Chunking.MinSectionWords)
	}
	if cfg.Topics.MaxTopics != 5 {
		t.Errorf("MaxTopics = %d, want 5", cfg.Topics.MaxTopics)
	}
	if cfg.Similarity.LinkThreshold != 0.5 {
		t.Errorf("LinkThreshold = %v, want 0.5", cfg.Similarity.LinkThreshold)
	}

	// Unset values keep their defaults.
	if cfg.Chunking.MaxSectionWords != DefaultMaxSectionWords {
		t.Errorf("MaxSectionWords = %d, want default %d", cfg.Chunking.MaxSectionWords, DefaultMaxSectionWords)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("DOCWEAVE_LOG_LEVEL", "warn")
	t.Setenv("DOCWEAVE_TOPICS_MAX_TOPICS", "7")
	t.Setenv("DOCWEAVE_EMBEDDINGS_PROVIDER", "openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.Topics.MaxTopics != 7 {
		t.Errorf("MaxTopics = %d, want 7", cfg.Topics.MaxTopics)
	}
	if cfg.Embeddings.Provider != "openai" {
		t.Errorf("Embeddings.Provider = %q, want openai", cfg.Embeddings.Provider)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	isolate(t)

	if _, err := Load(); err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	dir := isolate(t)

	content := `topics:
  min_topics: 5
  max_topics: 2
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted max_topics < min_topics")
	}
	if !strings.Contains(err.Error(), "topics.max_topics") {
		t.Errorf("error %q does not name the failing field", err)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	isolate(t)

	if _, err := LoadFromPath("/nonexistent/config.yaml"); err == nil {
		t.Fatal("LoadFromPath accepted a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero chunk size", func(c *Config) { c.Chunking.ChunkSizeChars = 0 }, "chunking.chunk_size_chars"},
		{"max below min words", func(c *Config) { c.Chunking.MaxSectionWords = c.Chunking.MinSectionWords - 1 }, "chunking.max_section_words"},
		{"negative overlap", func(c *Config) { c.Chunking.OverlapLines = -1 }, "chunking.overlap_lines"},
		{"zero min topics", func(c *Config) { c.Topics.MinTopics = 0 }, "topics.min_topics"},
		{"cluster threshold above one", func(c *Config) { c.Similarity.ClusterThreshold = 1.5 }, "similarity.cluster_threshold"},
		{"negative link threshold", func(c *Config) { c.Similarity.LinkThreshold = -0.1 }, "similarity.link_threshold"},
		{"zero link top k", func(c *Config) { c.Similarity.LinkTopK = 0 }, "similarity.link_top_k"},
		{"unknown semantic provider", func(c *Config) { c.Semantic.Provider = "anthropic" }, "semantic.provider"},
		{"empty semantic model", func(c *Config) { c.Semantic.Model = "" }, "semantic.model"},
		{"negative rate limit", func(c *Config) { c.Semantic.RateLimit = -1 }, "semantic.rate_limit"},
		{"unknown embeddings provider", func(c *Config) { c.Embeddings.Provider = "azure" }, "embeddings.provider"},
		{"zero dimensions", func(c *Config) { c.Embeddings.Dimensions = 0 }, "embeddings.dimensions"},
		{"zero cache size", func(c *Config) { c.Embeddings.CacheSize = 0 }, "embeddings.cache_size"},
		{"empty store path", func(c *Config) { c.Store.Path = "" }, "store.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(&cfg)

			err := Validate(&cfg)
			if err == nil {
				t.Fatal("Validate accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %q", err, tt.field)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestGetBeforeInit(t *testing.T) {
	Reset()

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get returned nil before Init")
	}
	if cfg.Chunking.ChunkSizeChars != DefaultChunkSizeChars {
		t.Errorf("pre-Init Get did not return defaults")
	}
}

func TestInitAndGet(t *testing.T) {
	isolate(t)
	t.Setenv("DOCWEAVE_LOG_LEVEL", "error")

	Reset()
	t.Cleanup(Reset)

	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := Get().LogLevel; got != "error" {
		t.Errorf("LogLevel = %q, want error", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~/x/y.db"); got != filepath.Join(home, "x/y.db") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath mangled an absolute path: %q", got)
	}
}
