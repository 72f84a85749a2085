package shifty

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// fileConfig is the YAML shape of an engine config file:
//
//	fps: 60
//	easing: inOutQuad
//	durationMs: 750
type fileConfig struct {
	FPS        int    `yaml:"fps"`
	Easing     string `yaml:"easing"`
	DurationMs int    `yaml:"durationMs"`
}

// LoadConfig reads engine defaults from a YAML file. Omitted fields come
// back zero-valued, so passing the result to Configure keeps the instance
// defaults for anything the file doesn't mention.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	if err := yaml.NewDecoder(f).Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return Config{
		FPS:      fc.FPS,
		Easing:   fc.Easing,
		Duration: time.Duration(fc.DurationMs) * time.Millisecond,
	}, nil
}
