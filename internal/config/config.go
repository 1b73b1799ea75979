package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds window and snapshot settings shared by the commands.
type Config struct {
	// Window
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	Demo   string `json:"demo"`

	// Snapshot settings
	Output      string   `json:"output"`
	Time        *float64 `json:"time,omitempty"` // seconds; nil means the default
	Supersample int      `json:"supersample"`
	Wireframe   bool     `json:"wireframe"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	Demo        string
	Output      string
	Time        *float64 // nil leaves the file value; zero is a valid time
	Supersample int
	Wireframe   bool
}

// Resolve applies non-zero flags over the file values, then fills defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Demo != "" {
		c.Demo = flags.Demo
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Time != nil {
		t := *flags.Time
		c.Time = &t
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Wireframe {
		c.Wireframe = true
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Title == "" {
		c.Title = "glxform"
	}
	if c.Demo == "" {
		c.Demo = "rotated-triangle"
	}
	if c.Output == "" {
		c.Output = c.Demo + ".webp"
	}
	if c.Time == nil || *c.Time < 0 {
		t := 1.0
		c.Time = &t
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}
