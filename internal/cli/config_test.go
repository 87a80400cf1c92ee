package cli

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaultsWithNoSources(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	initConfig()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":8087" {
		t.Fatalf("Addr = %q, want :8087", cfg.Addr)
	}
	if !strings.HasSuffix(cfg.DBPath, "trustreply.db") {
		t.Fatalf("DBPath = %q, want the default database path", cfg.DBPath)
	}
	if cfg.OTelEnabled {
		t.Fatal("tracing should be off by default")
	}
}

func TestLoadConfigDefaultsSurviveBoundFlags(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	initConfig()

	// The serve flags default to empty strings; binding them must not
	// shadow the documented defaults when the flags are not set.
	if err := viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr")); err != nil {
		t.Fatalf("bind addr: %v", err)
	}
	if err := viper.BindPFlag("db_path", serveCmd.Flags().Lookup("db")); err != nil {
		t.Fatalf("bind db_path: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":8087" {
		t.Fatalf("Addr = %q, want :8087", cfg.Addr)
	}
	if cfg.DBPath == "" {
		t.Fatal("DBPath was emptied by the unset flag")
	}
}

func TestLoadConfigEnvEnablesTracing(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TRUSTREPLY_OTEL_ENABLED", "true")
	initConfig()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.OTelEnabled {
		t.Fatal("TRUSTREPLY_OTEL_ENABLED=true did not enable tracing")
	}
}
