package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlaskit.toml")
	content := `
[catalog]
url = "https://example.com/catalog.json"

[serve]
addr = ":9090"
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Catalog.URL != "https://example.com/catalog.json" {
		t.Errorf("Catalog.URL = %q", cfg.Catalog.URL)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}
	if cfg.Serve.RedisAddr != "localhost:6379" {
		t.Errorf("Serve.RedisAddr = %q", cfg.Serve.RedisAddr)
	}
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	// Point the search away from any real config.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("default Serve.Addr = %q, want :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlaskit.toml")
	if err := os.WriteFile(path, []byte("[catalog]\nfile = \"local.json\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Catalog.File != "local.json" {
		t.Errorf("Catalog.File = %q", cfg.Catalog.File)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want default :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlaskit.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted invalid TOML")
	}
}
