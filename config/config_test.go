package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Web.Port != DefaultAppConfig.Web.Port {
		t.Fatalf("port = %d, want default %d", cfg.Web.Port, DefaultAppConfig.Web.Port)
	}
	if cfg.System.Location != "Asia/Dhaka" {
		t.Fatalf("location = %q", cfg.System.Location)
	}
}

func TestLoadConfigReadsFileAndFillsLogFile(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "tripdesk.yml")
	content := []byte(`
system:
  workdir: /tmp/tripdesk-test
web:
  port: 9090
logger:
  mode: production
`)
	if err := os.WriteFile(cfile, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(cfile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Web.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Web.Port)
	}
	if cfg.Logger.Mode != "production" {
		t.Fatalf("mode = %q", cfg.Logger.Mode)
	}
	// host not named in the file keeps its default
	if cfg.Web.Host != DefaultAppConfig.Web.Host {
		t.Fatalf("host = %q", cfg.Web.Host)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TRIPDESK_WEB_PORT", "7070")
	t.Setenv("TRIPDESK_WEB_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Web.Port != 7070 {
		t.Fatalf("port = %d, want 7070", cfg.Web.Port)
	}
	if cfg.Web.Secret != "env-secret" {
		t.Fatalf("secret not overridden")
	}
}
