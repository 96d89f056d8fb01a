package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "config.json")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
		"db_path": "/tmp/tutor.db",
		"listen_addr": ":8088",
		"rate_limit_per_minute": 30,
		"max_question_len": 500,
		"cache_size": 64
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/tutor.db" {
		t.Errorf("DBPath = %q, want /tmp/tutor.db", cfg.DBPath)
	}
	if cfg.ListenAddr != ":8088" {
		t.Errorf("ListenAddr = %q, want :8088", cfg.ListenAddr)
	}
	if cfg.RateLimitPerMinute != 30 {
		t.Errorf("RateLimitPerMinute = %d, want 30", cfg.RateLimitPerMinute)
	}
	if !cfg.History() {
		t.Error("history should default to enabled")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"db_path": "/tmp/tutor.db"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9600" {
		t.Errorf("ListenAddr = %q, want :9600", cfg.ListenAddr)
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Errorf("RateLimitPerMinute = %d, want 60", cfg.RateLimitPerMinute)
	}
	if cfg.MaxQuestionLen != 2000 {
		t.Errorf("MaxQuestionLen = %d, want 2000", cfg.MaxQuestionLen)
	}
	if cfg.CacheSize != 256 {
		t.Errorf("CacheSize = %d, want 256", cfg.CacheSize)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{not valid json}`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoad_MissingDBPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"listen_addr": ":8088"}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing db_path, got nil")
	}
	if !strings.Contains(err.Error(), "db_path") {
		t.Errorf("error = %v, want db_path mention", err)
	}
}

func TestLoad_NegativeLimits(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"db_path": "x.db", "rate_limit_per_minute": -1}`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative rate limit, got nil")
	}
}

func TestHistoryDisabled(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"db_path": "x.db", "history_enabled": false}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History() {
		t.Error("history should be disabled")
	}
}
