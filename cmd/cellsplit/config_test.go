package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/cellsplit/split"
	"github.com/lixenwraith/cellsplit/terminal"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellsplit.toml")
	data := `
layout = "screens/main.cell"
color = "256"
width = 100
watch = true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	want := Config{Layout: "screens/main.cell", Color: "256", Width: 100, Watch: true}
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Expected missing config to be ignored, got %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("width = \"wide\""), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestOptionsMerge(t *testing.T) {
	cfg := Config{Layout: "a.cell", Color: "256", Width: 120, Height: 40, Watch: true, Debug: true}

	tests := []struct {
		name string
		set  map[string]bool
		want options
	}{
		{
			name: "Config fills unset flags",
			set:  map[string]bool{},
			want: options{layout: "a.cell", color: "256", width: 120, height: 40, watch: true, debug: true},
		},
		{
			name: "Explicit flags win",
			set:  map[string]bool{"layout": true, "width": true, "debug": true},
			want: options{layout: "b.cell", color: "256", width: 80, height: 40, watch: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options{layout: "b.cell", color: "auto", width: 80, height: 24}
			opts.merge(cfg, tt.set)
			if opts != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, opts)
			}
		})
	}
}

func TestOptionsWatchPath(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		want    string
		wantErr string
	}{
		{name: "Off", opts: options{layout: "a.cell"}, want: ""},
		{name: "Screen", opts: options{layout: "a.cell", watch: true}, want: "a.cell"},
		{name: "Demo", opts: options{watch: true}, wantErr: "needs a layout file"},
		{name: "Inline", opts: options{layout: "a.cell", watch: true, inline: true}, wantErr: "-inline"},
		{name: "Tea", opts: options{layout: "a.cell", watch: true, tea: true}, wantErr: "-tea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.watchPath()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("watchPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRunRejectsWatchWithoutLayout(t *testing.T) {
	err := run(options{watch: true, inline: true, width: 10, height: 2})
	if err == nil || !strings.Contains(err.Error(), "needs a layout file") {
		t.Errorf("Expected watch error before rendering, got %v", err)
	}
}

func TestWatchLayoutReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.cell")
	if err := os.WriteFile(path, []byte(`text "old"`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded := make(chan split.Cell, 4)
	stop, err := watchLayout(path, func(root split.Cell) { loaded <- root })
	if err != nil {
		t.Fatalf("watchLayout() error = %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte(`text "new"`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	// Truncate and write may arrive as separate events
	timeout := time.After(3 * time.Second)
	got := ""
	for got != "new" {
		select {
		case root := <-loaded:
			buf := terminal.NewBuffer(3, 1)
			split.Render(root, buf)
			got = buf.Lines()[0]
		case <-timeout:
			t.Fatalf("Expected reloaded layout to render %q within 3s, last got %q", "new", got)
		}
	}
}

func TestWatchLayoutMissingDir(t *testing.T) {
	if _, err := watchLayout(filepath.Join(t.TempDir(), "gone", "x.cell"), func(split.Cell) {}); err == nil {
		t.Error("Expected error watching a missing directory")
	}
}
