package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	// Create a temporary directory with a studio.toml
	dir := t.TempDir()
	tomlContent := `
[canvas]
width = 1024
height = 768

[evolve]
program-length = 30
mutation-chance = 0.25
steps-per-frame = 5000
seed = 7

[gallery]
path = "test.db"
`
	if err := os.WriteFile(filepath.Join(dir, "studio.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Canvas.Width != 1024 {
		t.Errorf("canvas width = %d, want 1024", m.Canvas.Width)
	}
	if m.Canvas.Height != 768 {
		t.Errorf("canvas height = %d, want 768", m.Canvas.Height)
	}
	if m.Evolve.ProgramLength != 30 {
		t.Errorf("program length = %d, want 30", m.Evolve.ProgramLength)
	}
	if m.Evolve.MutationChance != 0.25 {
		t.Errorf("mutation chance = %v, want 0.25", m.Evolve.MutationChance)
	}
	if m.Evolve.StepsPerFrame != 5000 {
		t.Errorf("steps per frame = %d, want 5000", m.Evolve.StepsPerFrame)
	}
	if m.Evolve.Seed != 7 {
		t.Errorf("seed = %d, want 7", m.Evolve.Seed)
	}
	if m.Gallery.Path != "test.db" {
		t.Errorf("gallery path = %q, want test.db", m.Gallery.Path)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "studio.toml"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Canvas.Width != 512 || m.Canvas.Height != 512 {
		t.Errorf("canvas = %dx%d, want 512x512", m.Canvas.Width, m.Canvas.Height)
	}
	if m.Evolve.ProgramLength != 20 {
		t.Errorf("program length = %d, want 20", m.Evolve.ProgramLength)
	}
	if m.Evolve.MutationChance != 3.0/20.0 {
		t.Errorf("mutation chance = %v, want 0.15", m.Evolve.MutationChance)
	}
	if m.Evolve.StepsPerFrame != 10000 {
		t.Errorf("steps per frame = %d, want 10000", m.Evolve.StepsPerFrame)
	}
	if m.Gallery.Path != "gallery.db" {
		t.Errorf("gallery path = %q, want gallery.db", m.Gallery.Path)
	}
}

func TestGalleryPath(t *testing.T) {
	m := &Manifest{
		Dir:     "/studio",
		Gallery: Gallery{Path: "gallery.db"},
	}
	if got := m.GalleryPath(); got != filepath.Join("/studio", "gallery.db") {
		t.Errorf("GalleryPath() = %q, want /studio/gallery.db", got)
	}

	m.Gallery.Path = "/elsewhere/g.db"
	if got := m.GalleryPath(); got != "/elsewhere/g.db" {
		t.Errorf("GalleryPath() = %q, want absolute path unchanged", got)
	}
}

func TestFindAndLoad(t *testing.T) {
	// Create nested directory structure
	dir := t.TempDir()
	subDir := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}

	tomlContent := `[canvas]
width = 99
`
	if err := os.WriteFile(filepath.Join(dir, "studio.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	// Should find manifest when starting from a deep subdirectory
	m, err := FindAndLoad(subDir)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil")
	}
	if m.Canvas.Width != 99 {
		t.Errorf("canvas width = %d, want 99", m.Canvas.Width)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	m, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("FindAndLoad error: %v", err)
	}
	if m != nil {
		t.Error("expected nil manifest when no studio.toml exists")
	}
}
