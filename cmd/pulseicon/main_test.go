package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestOutputPath(t *testing.T) {
	got := outputPath()
	if filepath.Base(got) != "AppIcon.png" || filepath.Base(filepath.Dir(got)) != "Resources" {
		t.Fatalf("outputPath() = %q, want .../Resources/AppIcon.png", got)
	}

	// The module root holds go.mod.
	root := filepath.Dir(filepath.Dir(got))
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Errorf("outputPath() root %q has no go.mod: %v", root, err)
	}
}

func TestRunCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "Resources", "AppIcon.png")
	var logs bytes.Buffer
	size, err := run(path, zerolog.New(&logs))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.DecodeConfig() error = %v", err)
	}
	if got := image.Pt(cfg.Width, cfg.Height); got != size {
		t.Errorf("run() size = %v, file is %v", size, got)
	}
	if size != image.Pt(1024, 1024) {
		t.Errorf("run() size = %v, want 1024x1024", size)
	}
	if !strings.Contains(logs.String(), `"message":"icon written"`) {
		t.Errorf("log output = %q, want an icon written record", logs.String())
	}
}
