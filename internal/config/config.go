// Package config holds operator-level configuration for an anonymization
// run. Options are supplied once at startup via flags, ANONYMIZE_* env vars,
// or anonymize.config.yaml, and are immutable for the run's lifetime.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Viper keys. Each maps to an env var with the ANONYMIZE prefix
// (e.g. "lang_code" → ANONYMIZE_LANG_CODE) and to a YAML field in
// anonymize.config.yaml.
const (
	KeyEngineName       = "engine_name"
	KeyLangCode         = "lang_code"
	KeyModelName        = "model_name"
	KeyInputPath        = "input_path"
	KeyOutputPath       = "output_path"
	KeyPatternsFile     = "patterns_file"
	KeyProgressInterval = "progress_interval"
)

// Defaults mirror the zero-flag invocation: segment Japanese text with the
// kagome IPA dictionary, read data.csv, write result.csv.
const (
	DefaultEngineName       = "kagome"
	DefaultLangCode         = "ja"
	DefaultModelName        = "ipa"
	DefaultInputPath        = "data.csv"
	DefaultOutputPath       = "result.csv"
	DefaultProgressInterval = 10
)

// Config holds the resolved options for one run.
type Config struct {
	EngineName       string // segmentation backend to load
	LangCode         string // working-language tag
	ModelName        string // segmentation model/dictionary name
	InputPath        string // source CSV file
	OutputPath       string // destination CSV file
	PatternsFile     string // optional operator recognizer override file
	ProgressInterval int    // records between progress log events
}

func init() {
	viper.SetEnvPrefix("ANONYMIZE")
	viper.AutomaticEnv()
	viper.SetDefault(KeyEngineName, DefaultEngineName)
	viper.SetDefault(KeyLangCode, DefaultLangCode)
	viper.SetDefault(KeyModelName, DefaultModelName)
	viper.SetDefault(KeyInputPath, DefaultInputPath)
	viper.SetDefault(KeyOutputPath, DefaultOutputPath)
	viper.SetDefault(KeyProgressInterval, DefaultProgressInterval)
}

// Load reads configuration from Viper (which merges flags, env vars, config
// file, and defaults) and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		EngineName:       viper.GetString(KeyEngineName),
		LangCode:         viper.GetString(KeyLangCode),
		ModelName:        viper.GetString(KeyModelName),
		InputPath:        viper.GetString(KeyInputPath),
		OutputPath:       viper.GetString(KeyOutputPath),
		PatternsFile:     viper.GetString(KeyPatternsFile),
		ProgressInterval: viper.GetInt(KeyProgressInterval),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.EngineName == "" {
		return fmt.Errorf("engine_name must not be empty")
	}
	if c.LangCode == "" {
		return fmt.Errorf("lang_code must not be empty")
	}
	if c.ModelName == "" {
		return fmt.Errorf("model_name must not be empty")
	}
	if c.InputPath == "" {
		return fmt.Errorf("input_path must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	if c.ProgressInterval <= 0 {
		return fmt.Errorf("progress_interval must be positive")
	}
	return nil
}
