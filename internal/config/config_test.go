package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadProjectConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	hirekitDir := filepath.Join(projectDir, ".hirekit")
	if err := os.MkdirAll(hirekitDir, 0755); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, HirekitProjectDir: hirekitDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if c.StorageBackend() != BackendFile {
		t.Fatalf("expected file backend, got %q", c.StorageBackend())
	}
	if c.StorageKey() != defaultStorageKey {
		t.Fatalf("expected key %q, got %q", defaultStorageKey, c.StorageKey())
	}
	if c.QuestionsPerCategory() != 3 {
		t.Fatalf("expected 3 questions per category, got %d", c.QuestionsPerCategory())
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	hirekitDir := filepath.Join(projectDir, ".hirekit")
	if err := os.MkdirAll(hirekitDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
storage:
  backend: Redis
  key: studio-roles
  redis_url: redis://localhost:6379/2
export:
  dir: out/docs
  default_format: .PDF
questions:
  per_category: 2
log:
  level: DEBUG
`)
	if err := os.WriteFile(filepath.Join(hirekitDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, HirekitProjectDir: hirekitDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.StorageBackend() != BackendRedis {
		t.Fatalf("expected redis backend, got %q", c.StorageBackend())
	}
	if c.StorageKey() != "studio-roles" {
		t.Fatalf("wrong key: %s", c.StorageKey())
	}
	if c.RedisURL() != "redis://localhost:6379/2" {
		t.Fatalf("wrong redis url: %s", c.RedisURL())
	}
	if c.ExportDir() != filepath.Join(projectDir, "out", "docs") {
		t.Fatalf("expected export dir to be resolved, got %s", c.ExportDir())
	}
	if c.DefaultExportFormat() != "pdf" {
		t.Fatalf("wrong default format: %s", c.DefaultExportFormat())
	}
	if c.QuestionsPerCategory() != 2 {
		t.Fatalf("wrong per category: %d", c.QuestionsPerCategory())
	}
	if c.LogLevel() != "debug" {
		t.Fatalf("wrong log level: %s", c.LogLevel())
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	cases := map[string]string{
		"redis without url": "version: 1\nstorage:\n  backend: redis\n",
		"unknown backend":   "version: 1\nstorage:\n  backend: sqlite\n",
		"bad format":        "version: 1\nexport:\n  default_format: docx\n",
		"bad version":       "version: 2\n",
		"negative count":    "version: 1\nquestions:\n  per_category: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			projectDir := t.TempDir()
			hirekitDir := filepath.Join(projectDir, ".hirekit")
			if err := os.MkdirAll(hirekitDir, 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(hirekitDir, "config.yaml"), []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			c := &Config{ProjectDir: projectDir, HirekitProjectDir: hirekitDir, Project: defaultProjectConfig()}
			if err := c.loadProjectConfig(); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}

func TestInitHirekitDirWritesDefaultConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitHirekitDir(projectDir); err != nil {
		t.Fatalf("InitHirekitDir: %v", err)
	}
	for _, sub := range []string{"state", "logs", "exports"} {
		info, err := os.Stat(filepath.Join(projectDir, HirekitDir, sub))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected %s dir, err=%v", sub, err)
		}
	}

	t.Setenv(RedisURLEnv, "")
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.ExportDir() != filepath.Join(projectDir, ".hirekit", "exports") {
		t.Fatalf("unexpected export dir %s", cfg.ExportDir())
	}
	if cfg.ActivityLogPath() != filepath.Join(projectDir, ".hirekit", "logs", "activity.log") {
		t.Fatalf("unexpected activity log path %s", cfg.ActivityLogPath())
	}

	// a second init leaves an edited config alone
	custom := []byte("version: 1\nquestions:\n  per_category: 5\n")
	if err := os.WriteFile(cfg.ProjectConfigPath(), custom, 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitHirekitDir(projectDir); err != nil {
		t.Fatalf("second InitHirekitDir: %v", err)
	}
	data, err := os.ReadFile(cfg.ProjectConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Fatalf("config was overwritten: %s", data)
	}
}

func TestNewConfigRedisURLFromEnv(t *testing.T) {
	projectDir := t.TempDir()
	hirekitDir := filepath.Join(projectDir, HirekitDir)
	if err := os.MkdirAll(hirekitDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hirekitDir, "config.yaml"), []byte("version: 1\nstorage:\n  backend: file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(RedisURLEnv, " redis://cache:6379/0 ")
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.RedisURL() != "redis://cache:6379/0" {
		t.Fatalf("expected env override, got %q", cfg.RedisURL())
	}
}
