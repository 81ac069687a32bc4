package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvInput, "")
	t.Setenv(EnvOutputDir, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_LocalFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvInput, "")
	t.Setenv(EnvOutputDir, "")

	content := `input: authors.txt
output_dir: out
sentinels: ["none", "-"]
scroll_cooldown: 250ms
`
	if err := os.WriteFile(filepath.Join(dir, LocalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input != "authors.txt" {
		t.Errorf("Input = %q, want authors.txt", cfg.Input)
	}
	if cfg.WordFile != DefaultWordFile {
		t.Errorf("WordFile = %q, want default %q", cfg.WordFile, DefaultWordFile)
	}
	if cfg.ScrollCooldown != 250*time.Millisecond {
		t.Errorf("ScrollCooldown = %v, want 250ms", cfg.ScrollCooldown)
	}
	if !cfg.SentinelSet().IsNone("none") || cfg.SentinelSet().IsNone("nil") {
		t.Errorf("SentinelSet() = %v, want {none, -}", cfg.SentinelSet().Values())
	}
	if got, want := cfg.OutputPath(cfg.ListFile), filepath.Join("out", DefaultListFile); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestLoad_GlobalFile(t *testing.T) {
	chdir(t, t.TempDir())
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv(EnvInput, "")
	t.Setenv(EnvOutputDir, "")

	dir := filepath.Join(xdg, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte("input: global.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input != "global.txt" {
		t.Errorf("Input = %q, want global.txt", cfg.Input)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvInput, "from-env.txt")
	t.Setenv(EnvOutputDir, "/tmp/lal-out")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input != "from-env.txt" {
		t.Errorf("Input = %q, want from-env.txt", cfg.Input)
	}
	if got := cfg.OutputPath("x.txt"); got != "/tmp/lal-out/x.txt" {
		t.Errorf("OutputPath() = %q, want /tmp/lal-out/x.txt", got)
	}
}

func TestLoad_ExplicitMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Load() succeeded with a missing explicit path")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("word_file: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lal.yml")
	t.Setenv(EnvInput, "")
	t.Setenv(EnvOutputDir, "")

	cfg := Default()
	cfg.WorkbookFile = DefaultWorkbookFile
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputPath_Absolute(t *testing.T) {
	cfg := Default()
	if got := cfg.OutputPath("/abs/file.txt"); got != "/abs/file.txt" {
		t.Errorf("OutputPath() = %q, want unchanged absolute path", got)
	}
	if got := cfg.OutputPath(""); got != "" {
		t.Errorf("OutputPath(\"\") = %q, want empty", got)
	}
}

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := GlobalConfigPath(), "/custom/config/lal/config.yml"; got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input, want string
	}{
		{"~/papers", filepath.Join(home, "papers")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
