package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestServeConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cmd := newServeCmd()
	config, err := serveConfigSetup(viper.New(), cmd, "")
	if err != nil {
		t.Fatalf("serveConfigSetup: %v", err)
	}

	if config.port != 4000 {
		t.Errorf("port = %d, want 4000", config.port)
	}
	if config.env != "development" {
		t.Errorf("env = %q, want development", config.env)
	}
	if !config.limiter.enabled {
		t.Error("limiter should default to enabled")
	}
}

func TestServeConfigFileAndFlagLayering(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	file := filepath.Join(dir, "viventa.toml")
	content := "[server]\nport = 9000\nenv = \"production\"\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cmd := newServeCmd()
	// A flag set explicitly wins over the config file.
	if err := cmd.Flags().Set("env", "staging"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}

	config, err := serveConfigSetup(viper.New(), cmd, file)
	if err != nil {
		t.Fatalf("serveConfigSetup: %v", err)
	}

	if config.port != 9000 {
		t.Errorf("port = %d, want 9000 from config file", config.port)
	}
	if config.env != "staging" {
		t.Errorf("env = %q, want staging from flag", config.env)
	}
}

func TestServeConfigMissingExplicitFile(t *testing.T) {
	cmd := newServeCmd()
	_, err := serveConfigSetup(viper.New(), cmd, "/nonexistent/viventa.toml")
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
