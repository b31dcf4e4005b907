package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"MOCKDATA_LOG_LEVEL", "MOCKDATA_SEED", "MOCKDATA_COUNT", "MOCKDATA_MAX_RETRIES", "MOCKDATA_BATCH_SIZE", "MOCKDATA_COUNTRY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	def := Default()
	if cfg.LogLevel != def.LogLevel || cfg.Count != def.Count || cfg.MaxRetries != def.MaxRetries ||
		cfg.BatchSize != def.BatchSize || cfg.Country != def.Country {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Seed != nil {
		t.Fatalf("expected no seed, got %d", *cfg.Seed)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	d := t.TempDir()
	if err := os.WriteFile(filepath.Join(d, ".env"), []byte("MOCKDATA_SEED=42\nMOCKDATA_LOG_LEVEL=debug\nMOCKDATA_COUNT=0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, d)

	for _, k := range []string{"MOCKDATA_SEED", "MOCKDATA_LOG_LEVEL", "MOCKDATA_COUNT"} {
		old, had := os.LookupEnv(k)
		_ = os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, old)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}

	cfg := Load()
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Fatalf("expected MOCKDATA_SEED from .env, got %v", cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected MOCKDATA_LOG_LEVEL from .env, got %q", cfg.LogLevel)
	}
	if cfg.Count != 0 {
		t.Fatalf("expected explicit zero count, got %d", cfg.Count)
	}
}

func TestLoad_InvalidNumberFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MOCKDATA_BATCH_SIZE", "lots")
	t.Setenv("MOCKDATA_SEED", "nope")

	cfg := Load()
	if cfg.BatchSize != 1000 {
		t.Fatalf("expected default batch size, got %d", cfg.BatchSize)
	}
	if cfg.Seed != nil {
		t.Fatalf("expected unparsable seed to be ignored, got %d", *cfg.Seed)
	}
}
