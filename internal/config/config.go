// Package config decodes the demo binary's TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo's tunable state: output resolution, and the
// camera/light placement used to build the Phong uniforms.
type Config struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`

	Camera Vec3 `toml:"camera"`
	Light  Vec3 `toml:"light"`
}

// Vec3 is a 3-component vector, written in TOML as a table with x, y
// and z keys.
type Vec3 struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
	Z float32 `toml:"z"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Width:  512,
		Height: 512,
		Camera: Vec3{0, 2, 5},
		Light:  Vec3{3, 5, 3},
	}
}

// Load decodes path as TOML into a copy of Default, so a partial file
// only overrides the fields it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
