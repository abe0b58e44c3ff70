package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
output = "jsonl"
exclude = ["CDS", "five_prime_UTR"]
children_root_type = "mRNA"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output != "jsonl" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "CDS" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if cfg.ChildrenRootType != "mRNA" || cfg.ParentsRootType != "" {
		t.Errorf("root types = %q / %q", cfg.ChildrenRootType, cfg.ParentsRootType)
	}
}

func TestLoad_MissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for explicit missing path")
	}
}

func TestLoad_UnknownKeyFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("outputt = \"text\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
