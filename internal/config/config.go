package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"spacecraft/internal/craft"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config is the resolved run configuration.
type Config struct {
	Start    craft.Coordinate
	Facing   craft.Facing
	Strict   bool
	Format   Format
	LogLevel string
}

type fileConfig struct {
	Start    string `toml:"start"`
	Facing   string `toml:"facing"`
	Strict   bool   `toml:"strict"`
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		Facing:   craft.North,
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Load reads a TOML file on top of Default. Keys missing from the file keep
// their default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load craft config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load craft config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("start") {
		c, err := craft.ParseCoordinate(raw.Start)
		if err != nil {
			return Config{}, fmt.Errorf("parse start: %w", err)
		}
		cfg.Start = c
	}

	if meta.IsDefined("facing") {
		f, err := craft.ParseFacing(raw.Facing)
		if err != nil {
			return Config{}, fmt.Errorf("parse facing: %w", err)
		}
		cfg.Facing = f
	}

	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}

	if meta.IsDefined("format") {
		f, err := ParseFormat(raw.Format)
		if err != nil {
			return Config{}, err
		}
		cfg.Format = f
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", raw)
}
