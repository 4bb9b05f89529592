// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from zero values so CLI flags keep precedence.
type FileConfig struct {
	Learn    LearnConfig    `toml:"learn"`
	Disguise DisguiseConfig `toml:"disguise"`
	Explain  ExplainConfig  `toml:"explain"`
}

// LearnConfig maps learning-session settings.
type LearnConfig struct {
	WordsFile *string `toml:"words-file"`
	Theme     *string `toml:"theme"`
	Review    *bool   `toml:"review"`
}

// DisguiseConfig maps the disguise hotkey settings.
type DisguiseConfig struct {
	Style       *string `toml:"style"`
	QuitEnabled *bool   `toml:"quit-enabled"`
	DebounceMs  *int    `toml:"debounce-ms"`
	TickMs      *int    `toml:"tick-ms"`
}

// ExplainConfig maps the word-explanation settings. API keys come from the
// environment, never from the file.
type ExplainConfig struct {
	LLMBaseURL *string `toml:"llm-base-url"`
	LLMModel   *string `toml:"llm-model"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
