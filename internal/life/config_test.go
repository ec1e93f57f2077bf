package life

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"minimal", Config{Width: 1, Height: 1}, false},
		{"zero width", Config{Width: 0, Height: 10, Density: 0.5}, true},
		{"negative height", Config{Width: 10, Height: -3, Density: 0.5}, true},
		{"density below range", Config{Width: 10, Height: 10, Density: -0.1}, true},
		{"density above range", Config{Width: 10, Height: 10, Density: 1.5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{Width: 0, Height: 0}); err == nil {
		t.Fatal("New accepted a zero-sized grid")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"width": 64, "density": 0.35, "parallel": true}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 64 {
		t.Fatalf("Width = %d, expected 64", cfg.Width)
	}
	if cfg.Height != 30 {
		t.Fatalf("Height = %d, expected the default 30", cfg.Height)
	}
	if cfg.Density != 0.35 {
		t.Fatalf("Density = %g, expected 0.35", cfg.Density)
	}
	if !cfg.Parallel {
		t.Fatal("Parallel = false, expected true")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("LoadConfig succeeded on a missing file")
	}
}
