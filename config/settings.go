package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"spheregen/core"
)

// DefaultPath is where binaries look for settings when no path is given
const DefaultPath = "settings.json"

type Settings struct {
	Generation GenerationSettings `json:"generation"`
	Server     ServerSettings     `json:"server"`
	Viewer     ViewerSettings     `json:"viewer"`
}

// GenerationSettings lists the fixture tiers. Sizes are requested vertex
// counts; the file for each lands at <OutputDir>/sphere_<size>.obj.
type GenerationSettings struct {
	Sizes     []int  `json:"sizes"`
	OutputDir string `json:"outputDir"`
}

type ServerSettings struct {
	Port int `json:"port"`
}

type ViewerSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Default returns the settings used when no settings file exists
func Default() Settings {
	return Settings{
		Generation: GenerationSettings{
			Sizes:     []int{100, 1000, 10000, 100000, 1000000},
			OutputDir: "../../obj",
		},
		Server: ServerSettings{
			Port: 8080,
		},
		Viewer: ViewerSettings{
			Width:  1280,
			Height: 720,
		},
	}
}

// Load reads settings from path on top of the defaults. A missing file is
// not an error.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid %s: %w", path, err)
	}

	fmt.Printf("Loaded settings: %d sphere sizes -> %s\n",
		len(settings.Generation.Sizes), settings.Generation.OutputDir)

	return settings, nil
}

// Validate rejects settings the binaries cannot run with
func (s Settings) Validate() error {
	if len(s.Generation.Sizes) == 0 {
		return errors.New("generation.sizes is empty")
	}
	for _, size := range s.Generation.Sizes {
		if size < core.MinVertexCount {
			return fmt.Errorf("generation.sizes: %d is below the minimum of %d", size, core.MinVertexCount)
		}
	}
	if s.Generation.OutputDir == "" {
		return errors.New("generation.outputDir is empty")
	}
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", s.Server.Port)
	}
	if s.Viewer.Width <= 0 || s.Viewer.Height <= 0 {
		return fmt.Errorf("viewer size %dx%d is invalid", s.Viewer.Width, s.Viewer.Height)
	}
	return nil
}
