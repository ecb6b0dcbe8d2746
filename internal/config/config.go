// internal/config/config.go
//
// This package handles configuration and the .hirekit directory structure.
// Every project that uses hirekit gets a .hirekit/ folder created in its root.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// HirekitDir is the name of the directory we create in each project
	HirekitDir = ".hirekit"

	// RedisURLEnv overrides storage.redis_url when set.
	RedisURLEnv = "HIREKIT_REDIS_URL"

	BackendFile  = "file"
	BackendRedis = "redis"

	defaultStorageKey  = "hiring-oracle-data"
	defaultExportDir   = HirekitDir + "/exports"
	defaultFormat      = "txt"
	defaultPerCategory = 3
	defaultLogLevel    = "info"
)

const defaultProjectConfigYAML = `# hirekit project configuration
version: 1

# Where positions are persisted. backend: file keeps them in .hirekit/state,
# backend: redis stores them under the same key in Redis.
storage:
  backend: file
  key: hiring-oracle-data
  # redis_url: redis://localhost:6379/0

export:
  dir: .hirekit/exports
  default_format: txt

questions:
  per_category: 3

log:
  level: info
`

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend  string `yaml:"backend"`
	Key      string `yaml:"key"`
	RedisURL string `yaml:"redis_url,omitempty"`
}

// ExportConfig controls where exported documents go.
type ExportConfig struct {
	Dir           string `yaml:"dir"`
	DefaultFormat string `yaml:"default_format"`
}

// QuestionsConfig tunes the interview question generator.
type QuestionsConfig struct {
	PerCategory int `yaml:"per_category"`
}

// LogConfig controls diagnostics verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ProjectConfig models .hirekit/config.yaml.
type ProjectConfig struct {
	Version   int             `yaml:"version"`
	Storage   StorageConfig   `yaml:"storage"`
	Export    ExportConfig    `yaml:"export"`
	Questions QuestionsConfig `yaml:"questions"`
	Log       LogConfig       `yaml:"log"`
}

// Config holds the runtime configuration for hirekit.
type Config struct {
	// ProjectDir is the directory where the user ran `hirekit` from
	ProjectDir string

	// HirekitProjectDir is ProjectDir/.hirekit
	HirekitProjectDir string

	Project ProjectConfig
}

// InitHirekitDir creates the .hirekit directory structure in the given project directory.
//
// Structure created:
// .hirekit/
// ├── config.yaml
// ├── state/     <- persisted position collection (file backend)
// ├── logs/      <- diagnostics and the activity journal
// └── exports/   <- exported documents
func InitHirekitDir(projectDir string) error {
	hirekitDir := filepath.Join(projectDir, HirekitDir)

	dirs := []string{
		filepath.Join(hirekitDir, "state"),
		filepath.Join(hirekitDir, "logs"),
		filepath.Join(hirekitDir, "exports"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return ensureProjectConfig(filepath.Join(hirekitDir, "config.yaml"))
}

// NewConfig creates a new Config instance populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:        projectDir,
		HirekitProjectDir: filepath.Join(projectDir, HirekitDir),
		Project:           defaultProjectConfig(),
	}
	cfg.Project.normalize(projectDir)

	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if url := strings.TrimSpace(os.Getenv(RedisURLEnv)); url != "" {
		cfg.Project.Storage.RedisURL = url
		if err := cfg.Project.validate(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return cfg, nil
}

// StateDir returns the directory the file backend writes into
func (c *Config) StateDir() string {
	return filepath.Join(c.HirekitProjectDir, "state")
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.HirekitProjectDir, "logs")
}

// ActivityLogPath returns the activity journal shown in the TUI
func (c *Config) ActivityLogPath() string {
	return filepath.Join(c.LogsDir(), "activity.log")
}

// ExportDir returns the resolved export directory
func (c *Config) ExportDir() string {
	return c.Project.Export.Dir
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.HirekitProjectDir, "config.yaml")
}

// StorageBackend returns "file" or "redis".
func (c *Config) StorageBackend() string {
	return c.Project.Storage.Backend
}

// StorageKey returns the slot key positions are stored under.
func (c *Config) StorageKey() string {
	return c.Project.Storage.Key
}

// RedisURL returns the Redis connection URL for the redis backend.
func (c *Config) RedisURL() string {
	return c.Project.Storage.RedisURL
}

// DefaultExportFormat returns the format used when none is requested.
func (c *Config) DefaultExportFormat() string {
	return c.Project.Export.DefaultFormat
}

// QuestionsPerCategory returns how many questions each bank category yields.
func (c *Config) QuestionsPerCategory() int {
	return c.Project.Questions.PerCategory
}

// LogLevel returns the configured diagnostics level.
func (c *Config) LogLevel() string {
	return c.Project.Log.Level
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	pc := ProjectConfig{}
	pc.applyDefaults()
	return pc
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Storage.Backend) == "" {
		pc.Storage.Backend = BackendFile
	}
	if strings.TrimSpace(pc.Storage.Key) == "" {
		pc.Storage.Key = defaultStorageKey
	}
	if strings.TrimSpace(pc.Export.Dir) == "" {
		pc.Export.Dir = defaultExportDir
	}
	if strings.TrimSpace(pc.Export.DefaultFormat) == "" {
		pc.Export.DefaultFormat = defaultFormat
	}
	if pc.Questions.PerCategory == 0 {
		pc.Questions.PerCategory = defaultPerCategory
	}
	if strings.TrimSpace(pc.Log.Level) == "" {
		pc.Log.Level = defaultLogLevel
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Storage.Backend = normalizeEnum(pc.Storage.Backend)
	pc.Storage.Key = strings.TrimSpace(pc.Storage.Key)
	pc.Storage.RedisURL = strings.TrimSpace(pc.Storage.RedisURL)
	pc.Export.Dir = resolvePath(base, pc.Export.Dir)
	pc.Export.DefaultFormat = strings.TrimPrefix(normalizeEnum(pc.Export.DefaultFormat), ".")
	pc.Log.Level = normalizeEnum(pc.Log.Level)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version != 1 {
		return fmt.Errorf("config version must be 1")
	}
	switch pc.Storage.Backend {
	case BackendFile:
	case BackendRedis:
		if pc.Storage.RedisURL == "" {
			return fmt.Errorf("storage.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("storage.backend must be 'file' or 'redis'")
	}
	if pc.Storage.Key == "" {
		return fmt.Errorf("storage.key is required")
	}
	switch pc.Export.DefaultFormat {
	case "txt", "pdf", "xlsx":
	default:
		return fmt.Errorf("export.default_format must be txt, pdf or xlsx")
	}
	if pc.Questions.PerCategory < 1 {
		return fmt.Errorf("questions.per_category must be >= 1")
	}
	return nil
}

func normalizeEnum(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}
