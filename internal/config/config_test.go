package config_test

import (
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/postkit/internal/config"
)

func TestSaveThenLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "postkit.yaml")
	in := &config.Manifest{Title: "Notes", Author: "A. Writer", BaseURL: "https://example.org/", Workers: 8}
	if err := config.Save(in, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *out != *in {
		t.Fatalf("got %+v, want %+v", *out, *in)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "postkit.yaml")
	if err := config.Save(&config.Manifest{Author: "file"}, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	t.Setenv("POSTKIT_AUTHOR", "env")
	m, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Author != "env" {
		t.Fatalf("author = %q, want env", m.Author)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	m, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.BaseURL != "/" || m.Workers != 4 {
		t.Fatalf("unexpected defaults: %+v", *m)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
