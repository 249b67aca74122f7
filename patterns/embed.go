// Package patterns provides embedded default recognizer definitions.
// The YAML file uses the Presidio-compatible recognizer format with one
// extension (replacement) consumed by the anonymizer policy.
package patterns

import _ "embed"

//go:embed pii_ja.yaml
var piiJAYAML []byte

// PIIJAYAML returns the embedded default recognizer definitions for Japanese.
func PIIJAYAML() []byte { return piiJAYAML }
