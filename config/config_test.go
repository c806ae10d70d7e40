package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/evanx/component-validator/errors"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Environment != "development" {
		t.Errorf("expected development default, got %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("expected debug enabled in development")
	}
	if cfg.ProbePrefix != "hello-" {
		t.Errorf("expected default probe prefix 'hello-', got %q", cfg.ProbePrefix)
	}
	if cfg.HookTimeout != 30*time.Second {
		t.Errorf("expected 30s hook timeout default, got %v", cfg.HookTimeout)
	}
	if cfg.Metrics.Endpoint != "localhost:4318" {
		t.Errorf("expected default metrics endpoint, got %q", cfg.Metrics.Endpoint)
	}
	if cfg.Tracing.SampleRate != 1.0 {
		t.Errorf("expected full sampling default, got %v", cfg.Tracing.SampleRate)
	}
	if cfg.Logging.ServiceName != ServiceName {
		t.Errorf("expected logging tagged with service name, got %q", cfg.Logging.ServiceName)
	}
}

func TestConfig_Validate_MissingModule(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing module reference")
	}
	if !errors.HasCode(err, errors.ErrCodeConfig) {
		t.Errorf("expected INVALID_CONFIG, got %s", errors.CodeOf(err))
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	cfg := Config{Module: "demo/hello-component"}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestConfig_Validate_HookTimeoutRange(t *testing.T) {
	cfg := Config{Module: "m", HookTimeout: 100 * time.Millisecond}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for hook timeout below 1s")
	}
	if !errors.HasCode(err, errors.ErrCodeConfig) {
		t.Errorf("expected INVALID_CONFIG, got %s", errors.CodeOf(err))
	}

	cfg.HookTimeout = 11 * time.Minute
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for hook timeout above 10m")
	}
}

func TestConfig_Validate_BadEnvironment(t *testing.T) {
	cfg := Config{Module: "m", Environment: "testing"}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown environment")
	}
}

// fakeFileSystem serves configured paths from memory.
type fakeFileSystem struct {
	files map[string]bool
}

func (f *fakeFileSystem) Exists(path string) bool { return f.files[path] }
func (f *fakeFileSystem) LoadEnv(path string) error {
	return nil
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("COMPONENT_MODULE", "demo/hello-component")
	t.Setenv("PROBE_PREFIX", "hello-")

	var cfg Config
	err := LoadConfig(&cfg, WithFileSystem(&fakeFileSystem{files: map[string]bool{}}))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Module != "demo/hello-component" {
		t.Errorf("expected module from COMPONENT_MODULE, got %q", cfg.Module)
	}
	if cfg.ProbePrefix != "hello-" {
		t.Errorf("expected probe prefix from env, got %q", cfg.ProbePrefix)
	}
}

func TestLoadConfig_MissingModuleSurfacesInValidate(t *testing.T) {
	os.Unsetenv("COMPONENT_MODULE")

	var cfg Config
	if err := LoadConfig(&cfg, WithFileSystem(&fakeFileSystem{files: map[string]bool{}})); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure before any load attempt")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("module: demo/hello-component-class\nhook_timeout: 5s\nprops:\n  greeting: hi\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := LoadConfig(&cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Module != "demo/hello-component-class" {
		t.Errorf("expected module from file, got %q", cfg.Module)
	}
	if cfg.HookTimeout != 5*time.Second {
		t.Errorf("expected 5s hook timeout from file, got %v", cfg.HookTimeout)
	}
	if cfg.Props["greeting"] != "hi" {
		t.Errorf("expected props from file, got %v", cfg.Props)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("module: demo/from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COMPONENT_MODULE", "demo/from-env")

	var cfg Config
	if err := LoadConfig(&cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Module != "demo/from-env" {
		t.Errorf("expected env to override file, got %q", cfg.Module)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("LOGGING_LEVEL")
	found := false
	for _, v := range variants {
		if v == "logging.level" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected nested variant logging.level, got %v", variants)
	}

	single := envKeyVariants("DEBUG")
	if len(single) != 1 || single[0] != "debug" {
		t.Errorf("expected single lowercase variant, got %v", single)
	}
}
