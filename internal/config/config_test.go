package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if cfg.Color != ColorAuto || cfg.Output.Suffix != ".edited" || cfg.Diff {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "otd.yaml")
	data := `schematic: design.asc
board: design_pcb.asc
output:
  board: out/board.asc
diff: true
color: NEVER
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := &Config{
		Schematic: "design.asc",
		Board:     "design_pcb.asc",
		Output:    OutputConfig{Board: "out/board.asc", Suffix: ".edited"},
		Diff:      true,
		Color:     ColorNever,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
	}{
		{"bad color", "color: sometimes\n"},
		{"overwrite input", "schematic: a.asc\noutput:\n  schematic: a.asc\n"},
		{"wrong type", "diff: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of an explicit missing file should fail")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Board = "b.asc"
	cfg.Color = ColorAlways
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputPath(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		input, explicit, want string
	}{
		{"design.asc", "", "design.edited.asc"},
		{"dir/board", "", "dir/board.edited"},
		{"design.asc", "new.asc", "new.asc"},
	}
	for _, tt := range tests {
		if got := cfg.OutputPath(tt.input, tt.explicit); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.explicit, got, tt.want)
		}
	}
}

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	if cfg.UseColor(f) {
		t.Error("auto mode should not color a regular file")
	}
	cfg.Color = ColorAlways
	if !cfg.UseColor(f) {
		t.Error("always mode should color")
	}
	cfg.Color = ColorNever
	if cfg.UseColor(f) {
		t.Error("never mode should not color")
	}
}
