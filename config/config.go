// Package config loads the calculator's adjustable settings from a
// YAML file, tolerating a missing file by falling back to defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"axioncore/tokenizer"
	"axioncore/value"
)

// Config holds the variable-reference alphabet, the default arithmetic
// type, the default display precision, and the history file path.
type Config struct {
	VarFlag          string `yaml:"var_flag"`
	VarStart         string `yaml:"var_start"`
	VarEnd           string `yaml:"var_end"`
	DefaultDataType  string `yaml:"default_data_type"`
	DefaultPrecision int    `yaml:"default_precision"`
	HistoryPath      string `yaml:"history_path"`
}

// Default returns the built-in configuration, matching
// tokenizer.DefaultConfig and a 6-digit double precision.
func Default() Config {
	return Config{
		VarFlag:          "$",
		VarStart:         "{",
		VarEnd:           "}",
		DefaultDataType:  "double",
		DefaultPrecision: 6,
		HistoryPath:      "history.json",
	}
}

// Load reads path as YAML and merges it over Default. A missing file
// is not an error; it leaves every field at its default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// TokenizerConfig translates the YAML variable-reference alphabet into
// the single-byte form the tokenizer package consumes.
func (c Config) TokenizerConfig() (tokenizer.Config, error) {
	flag, err := firstByte("var_flag", c.VarFlag)
	if err != nil {
		return tokenizer.Config{}, err
	}
	start, err := firstByte("var_start", c.VarStart)
	if err != nil {
		return tokenizer.Config{}, err
	}
	end, err := firstByte("var_end", c.VarEnd)
	if err != nil {
		return tokenizer.Config{}, err
	}
	return tokenizer.Config{VarFlag: flag, VarStart: start, VarEnd: end}, nil
}

func firstByte(field, s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("config: %s must be exactly one character, got %q", field, s)
	}
	return s[0], nil
}

// DataType parses DefaultDataType into a value.DataType.
func (c Config) DataType() (value.DataType, error) {
	switch c.DefaultDataType {
	case "long":
		return value.Long, nil
	case "double":
		return value.Double, nil
	default:
		return 0, fmt.Errorf("config: unrecognised default_data_type %q", c.DefaultDataType)
	}
}
