package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Grading.DefaultWeight != 0.5 {
		t.Errorf("default weight = %v, want 0.5", cfg.Grading.DefaultWeight)
	}
	if cfg.Grading.QuestionCount != 0 {
		t.Errorf("question count = %d, want 0", cfg.Grading.QuestionCount)
	}
	if cfg.Ingest.BatchConcurrency != 4 {
		t.Errorf("batch concurrency = %d, want 4", cfg.Ingest.BatchConcurrency)
	}
}

func TestLoadEnvFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	env := "SERVER_PORT=9090\nDATABASE_DRIVER=SQLite\nGRADING_QUESTION_COUNT=20\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, environment should win over .env", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Grading.QuestionCount != 20 {
		t.Errorf("question count = %d, want 20", cfg.Grading.QuestionCount)
	}
}

func TestLoadRejectsNonPositiveWeight(t *testing.T) {
	t.Setenv("GRADING_DEFAULT_WEIGHT", "0")
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for zero default weight")
	}
}
