package recognizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RecognizerFile is the top-level YAML structure for a recognizer config
// file. Mirrors Presidio's recognizer registry YAML format, extended with a
// per-recognizer replacement literal.
type RecognizerFile struct {
	Recognizers []RecognizerConfig `yaml:"recognizers"`
}

// RecognizerConfig declares one pattern recognizer.
type RecognizerConfig struct {
	Name              string          `yaml:"name" json:"name"`
	SupportedEntity   string          `yaml:"supported_entity" json:"supported_entity"`
	SupportedLanguage string          `yaml:"supported_language,omitempty" json:"supported_language,omitempty"`
	Replacement       string          `yaml:"replacement,omitempty" json:"replacement,omitempty"`
	Enabled           *bool           `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Patterns          []PatternConfig `yaml:"patterns,omitempty" json:"patterns,omitempty"`
}

// PatternConfig is a single regex pattern within a recognizer.
type PatternConfig struct {
	Name  string  `yaml:"name" json:"name"`
	Regex string  `yaml:"regex" json:"regex"`
	Score float64 `yaml:"score" json:"score"`
}

// isEnabled returns true if the recognizer is enabled (defaults to true when nil).
func (r *RecognizerConfig) isEnabled() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}

// ParseRecognizerFile parses recognizer YAML bytes into a RecognizerFile.
func ParseRecognizerFile(data []byte) (*RecognizerFile, error) {
	var rf RecognizerFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing recognizer YAML: %w", err)
	}
	return &rf, nil
}

// LoadRecognizerFile reads and parses a recognizer YAML file from disk.
// Returns nil (not an error) if the file does not exist, so callers can
// treat a missing operator override file as a no-op.
func LoadRecognizerFile(path string) (*RecognizerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading recognizer file %s: %w", path, err)
	}
	return ParseRecognizerFile(data)
}

// MergeRecognizers layers recognizer configs: embedded defaults first, then
// operator overrides. Later layers override earlier ones by matching on the
// Name field; new recognizers are appended.
func MergeRecognizers(layers ...[]RecognizerConfig) []RecognizerConfig {
	index := make(map[string]int)
	var merged []RecognizerConfig

	for _, layer := range layers {
		for _, rc := range layer {
			if idx, exists := index[rc.Name]; exists {
				merged[idx] = rc
			} else {
				index[rc.Name] = len(merged)
				merged = append(merged, rc)
			}
		}
	}

	return merged
}

// FilterByEntities applies enabled/disabled entity filters to a recognizer
// list. A non-empty enabled list is a whitelist on supported_entity; the
// disabled list is a blacklist applied on top.
func FilterByEntities(configs []RecognizerConfig, enabled, disabled []string) []RecognizerConfig {
	if len(enabled) == 0 && len(disabled) == 0 {
		return configs
	}

	toSet := func(entities []string) map[string]bool {
		set := make(map[string]bool, len(entities))
		for _, e := range entities {
			set[e] = true
		}
		return set
	}
	allowed := toSet(enabled)
	blocked := toSet(disabled)

	var filtered []RecognizerConfig
	for _, c := range configs {
		if len(allowed) > 0 && !allowed[c.SupportedEntity] {
			continue
		}
		if blocked[c.SupportedEntity] {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// Compile converts recognizer configs into runtime pattern recognizers for
// the given working language. Disabled recognizers and recognizers declared
// for another language are skipped. Each regex pattern in a config produces
// one PatternRecognizer, in file order.
func Compile(configs []RecognizerConfig, language string) ([]Recognizer, error) {
	var recognizers []Recognizer
	for _, rc := range configs {
		if !rc.isEnabled() {
			continue
		}
		if rc.SupportedLanguage != "" && rc.SupportedLanguage != language {
			continue
		}
		for _, p := range rc.Patterns {
			rec, err := NewPattern(p.Name, rc.SupportedEntity, p.Regex, p.Score)
			if err != nil {
				return nil, fmt.Errorf("recognizer %q: %w", rc.Name, err)
			}
			recognizers = append(recognizers, rec)
		}
	}
	return recognizers, nil
}

// Replacements collects the entity label → replacement literal pairs
// declared by enabled configs. Configs without a replacement contribute
// nothing; the policy totality check catches the gap downstream.
func Replacements(configs []RecognizerConfig) map[string]string {
	out := make(map[string]string)
	for _, rc := range configs {
		if !rc.isEnabled() || rc.Replacement == "" {
			continue
		}
		out[rc.SupportedEntity] = rc.Replacement
	}
	return out
}
