package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	yaml := `
server:
  address: ":5050"
source:
  url: "https://example.com/reviews.json"
  timeout_seconds: 3
page:
  title: "Pint Size Bakery"
  container_id: "cards"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config fixture failed: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg := LoadConfig()
	if cfg.Server.Address != ":5050" {
		t.Errorf("unexpected address: %q", cfg.Server.Address)
	}
	if cfg.Source.URL != "https://example.com/reviews.json" || cfg.Source.TimeoutSeconds != 3 {
		t.Errorf("unexpected source config: %#v", cfg.Source)
	}
	if cfg.Page.Title != "Pint Size Bakery" || cfg.Page.ContainerID != "cards" {
		t.Errorf("unexpected page config: %#v", cfg.Page)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	yaml := `
source:
  url: "https://example.com/reviews.json"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config fixture failed: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg := LoadConfig()
	if cfg.Source.TimeoutSeconds != 10 {
		t.Errorf("timeout default not applied: %d", cfg.Source.TimeoutSeconds)
	}
	if cfg.Page.ContainerID != "reviews" {
		t.Errorf("container id default not applied: %q", cfg.Page.ContainerID)
	}
}
