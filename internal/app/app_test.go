package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tonsecurity/internal/app"
	"tonsecurity/internal/domain"
)

func TestLoadConfig_Env(t *testing.T) {
	home := t.TempDir()
	t.Setenv(app.EnvHome, home)
	t.Setenv(app.EnvLogLevel, "DEBUG")
	t.Setenv(app.EnvLogFormat, "json")
	t.Setenv(app.EnvMaxMemoryKiB, "65536")

	cfg, err := app.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Home != home || cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.MaxMemoryKiB != 65536 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := app.EnvLogFormat + "=json\n" + app.EnvMaxMemoryKiB + "=1024\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Clear the variables so the file values apply; t.Setenv restores them.
	t.Setenv(app.EnvLogFormat, "")
	t.Setenv(app.EnvMaxMemoryKiB, "")
	os.Unsetenv(app.EnvLogFormat)
	os.Unsetenv(app.EnvMaxMemoryKiB)
	t.Setenv(app.EnvLogLevel, "warn")

	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogFormat != "json" || cfg.MaxMemoryKiB != 1024 || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"format", app.EnvLogFormat, "xml", "LogFormat"},
		{"level", app.EnvLogLevel, "loud", "LogLevel"},
		{"memory", app.EnvMaxMemoryKiB, "-1", app.EnvMaxMemoryKiB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := app.LoadConfig("")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	if _, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := app.NewLogger(app.Config{LogLevel: "info", LogFormat: "json", LogOutput: &buf})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Str("k", "v").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"k":"v"`) {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestNew_Wire(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Home = filepath.Join(t.TempDir(), "home")
	cfg.LogOutput = &bytes.Buffer{}
	cfg.MaxMemoryKiB = 1 << 16

	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fi, err := os.Stat(cfg.Home); err != nil || !fi.IsDir() {
		t.Fatalf("home not created: %v", err)
	}
	if a.Engine == nil || a.Hasher == nil || a.Box == nil || a.Passcodes == nil || a.KeyPairs == nil || a.Verifiers == nil {
		t.Fatal("wire has nil members")
	}

	kp, err := a.Box.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	path := a.Path("keypair.json")
	if err := a.KeyPairs.SaveKeyPair(path, "", kp); err != nil {
		t.Fatalf("SaveKeyPair: %v", err)
	}
	got, err := a.KeyPairs.LoadKeyPair(path, "")
	if err != nil || got != kp {
		t.Fatalf("LoadKeyPair = %v, %v", got == kp, err)
	}

	// The configured budget reaches the hasher.
	_, err = a.Hasher.DeriveKey([]byte("pw"), make([]byte, 16),
		domain.HashParams{TimeCost: 1, MemoryCost: 1<<16 + 8, Parallelism: 1, OutputLength: 32})
	if err == nil {
		t.Fatal("expected memory budget error")
	}
}
