package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable Load consults so the host environment
// cannot leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, b := range flagBindings {
		for _, name := range b.envs {
			t.Setenv(name, "")
		}
	}
	for _, name := range []string{"POSTGRES_HOST", "POSTGRES_PASSWORD", "HTTP_SERVER_PUBLIC_URL", "RATE_LIMIT_REQUESTS_PER_MIN"} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Host != "localhost" || cfg.HTTPServer.Port != 8080 {
		t.Errorf("unexpected address %s", cfg.Addr())
	}
	if cfg.Storage.Driver != DriverMemory || cfg.Storage.CacheDir != "./cache" {
		t.Errorf("unexpected storage %+v", cfg.Storage)
	}
	if cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout %s", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.BaseURL() != "http://localhost:8080" {
		t.Errorf("unexpected base url %q", cfg.BaseURL())
	}
}

func TestLoadFlags(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"-h", "0.0.0.0", "-p", "3000", "-c", "/tmp/photos", "--storage", "sqlite"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Host != "0.0.0.0" || cfg.HTTPServer.Port != 3000 {
		t.Errorf("unexpected address %s", cfg.Addr())
	}
	if cfg.Storage.CacheDir != "/tmp/photos" || cfg.Storage.Driver != DriverSQLite {
		t.Errorf("unexpected storage %+v", cfg.Storage)
	}
}

func TestEnvironmentBeatsFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_SERVER_HOST", "example.internal")

	cfg, err := Load([]string{"--host", "127.0.0.1", "--port", "3000"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected env port 9090, got %d", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.Host != "example.internal" {
		t.Errorf("expected env host, got %q", cfg.HTTPServer.Host)
	}
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	content := []byte(`
http_server:
  port: 7000
  public_url: https://inventory.example.com/
storage:
  cache_dir: /srv/photos
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"--config", path, "-p", "7100"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 7100 {
		t.Errorf("flag must beat config file, got port %d", cfg.HTTPServer.Port)
	}
	if cfg.Storage.CacheDir != "/srv/photos" {
		t.Errorf("unexpected cache dir %q", cfg.Storage.CacheDir)
	}
	if cfg.BaseURL() != "https://inventory.example.com" {
		t.Errorf("unexpected base url %q", cfg.BaseURL())
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown driver", []string{"-s", "mongo"}},
		{"bad port", []string{"-p", "0"}},
		{"empty cache", []string{"-c", ""}},
		{"unknown flag", []string{"--nope"}},
		{"missing config file", []string{"--config", "/does/not/exist.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	clearEnv(t)

	if _, err := Load([]string{"-H"}); !errors.Is(err, ErrHelp) {
		t.Errorf("expected ErrHelp, got %v", err)
	}
}
