package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "rslox.yml"

// config mirrors the optional rslox.yml found next to or above the
// working directory.
type config struct {
	Debug       bool   `yaml:"debug"`
	PrintTokens bool   `yaml:"print_tokens"`
	PrintAst    bool   `yaml:"print_ast"`
	History     string `yaml:"history"`
}

// findConfig walks from dir toward the filesystem root and returns the
// first rslox.yml it sees, or "" when there is none.
func findConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, configFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadConfig reads the nearest rslox.yml. A missing file is not an
// error, it just yields the zero config.
func loadConfig(dir string) (config, error) {
	var cfg config
	path := findConfig(dir)
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
