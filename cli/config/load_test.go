package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "framelift.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
out_dir: /tmp/shots
container: bmp
keep_raw: true
display:
  width: 128
  height: 160
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutDir != "/tmp/shots" || cfg.Container != "bmp" || !cfg.KeepRaw {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Display.Width != 128 || cfg.Display.Height != 160 {
		t.Errorf("display = %+v, want 128x160", cfg.Display)
	}
	// Unset fields keep defaults.
	if cfg.Markers.Start == "" || cfg.Markers.End == "" {
		t.Errorf("markers lost their defaults: %+v", cfg.Markers)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "out_dir: shots\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if cfg.Container != def.Container {
		t.Errorf("container = %q, want default %q", cfg.Container, def.Container)
	}
	if cfg.Display != def.Display {
		t.Errorf("display = %+v, want default %+v", cfg.Display, def.Display)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bad yaml", content: "out_dir: [unclosed", want: "invalid YAML"},
		{name: "bad container", content: "container: tiff\n", want: "unknown container"},
		{name: "bad geometry", content: "display:\n  width: -1\n", want: "positive"},
		{name: "empty marker", content: "markers:\n  start: \"\"\n", want: "markers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("Load() error = %v, want not found", err)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FRAMELIFT_TEST_DIR", "/data/shots")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "set variable", input: "out_dir: ${FRAMELIFT_TEST_DIR}", want: "out_dir: /data/shots"},
		{name: "unset with default", input: "${FRAMELIFT_TEST_UNSET:-fallback}", want: "fallback"},
		{name: "unset without default", input: "x${FRAMELIFT_TEST_UNSET}y", want: "xy"},
		{name: "set beats default", input: "${FRAMELIFT_TEST_DIR:-other}", want: "/data/shots"},
		{name: "no pattern untouched", input: "plain $DOLLAR text", want: "plain $DOLLAR text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
