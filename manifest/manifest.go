// Package manifest handles studio.toml configuration for the art engine.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a studio.toml configuration.
type Manifest struct {
	Canvas  Canvas  `toml:"canvas"`
	Evolve  Evolve  `toml:"evolve"`
	Gallery Gallery `toml:"gallery"`

	// Dir is the directory containing the studio.toml file (set at load time).
	Dir string `toml:"-"`
}

// Canvas configures the render target.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Evolve configures program generation and mutation.
type Evolve struct {
	ProgramLength  int     `toml:"program-length"`
	MutationChance float64 `toml:"mutation-chance"`
	StepsPerFrame  int64   `toml:"steps-per-frame"`
	Seed           int64   `toml:"seed"`
}

// Gallery configures where interesting programs are kept.
type Gallery struct {
	Path string `toml:"path"`
}

// Default returns the configuration used when no studio.toml exists.
func Default() *Manifest {
	m := &Manifest{}
	m.applyDefaults()
	return m
}

func (m *Manifest) applyDefaults() {
	if m.Canvas.Width == 0 {
		m.Canvas.Width = 512
	}
	if m.Canvas.Height == 0 {
		m.Canvas.Height = 512
	}
	if m.Evolve.ProgramLength == 0 {
		m.Evolve.ProgramLength = 20
	}
	if m.Evolve.MutationChance == 0 {
		m.Evolve.MutationChance = 3.0 / float64(m.Evolve.ProgramLength)
	}
	if m.Evolve.StepsPerFrame == 0 {
		m.Evolve.StepsPerFrame = 10000
	}
	if m.Gallery.Path == "" {
		m.Gallery.Path = "gallery.db"
	}
}

// Load parses a studio.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "studio.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	m.applyDefaults()
	return &m, nil
}

// FindAndLoad walks up from startDir to find a studio.toml file, then loads
// and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "studio.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// GalleryPath returns the absolute path of the gallery database.
func (m *Manifest) GalleryPath() string {
	if filepath.IsAbs(m.Gallery.Path) || m.Dir == "" {
		return m.Gallery.Path
	}
	return filepath.Join(m.Dir, m.Gallery.Path)
}
