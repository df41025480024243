package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the window and asset settings that can be overridden by
// a yaml file next to the binary.
type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TextureDir string `yaml:"texture_dir"`
}

func defaultConfig() Config {
	return Config{
		Width:      1000,
		Height:     800,
		Title:      "Desk Scene",
		TextureDir: "textures",
	}
}

// LoadConfig reads path and fills unset fields with defaults. A missing
// file is not an error; the defaults are used as-is.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: read %s: %v", path, err)
		}
		return cfg
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.Printf("config: parse %s: %v", path, err)
		return cfg
	}

	if file.Width > 0 {
		cfg.Width = file.Width
	}
	if file.Height > 0 {
		cfg.Height = file.Height
	}
	if file.Title != "" {
		cfg.Title = file.Title
	}
	if file.TextureDir != "" {
		cfg.TextureDir = file.TextureDir
	}
	return cfg
}
