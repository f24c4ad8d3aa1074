// Package textkit provides small text utilities.
//
// The shortening core uses only the standard library. Decoding option records
// (Decode, DecodeJSON, DecodeYAML, DecodeTOML) and Schema pull in yaml.v3,
// BurntSushi/toml and invopop/jsonschema.
//
// Each subpackage can be imported on its own:
//
//   - shorten: Truncate strings to a maximum length, keeping whole words
//     and appending a configurable ellipsis
//
// # Quick Start
//
//	import "github.com/randalmurphal/textkit/shorten"
//	s := shorten.Shorten("Some long string to shorten", shorten.Overrides{Length: shorten.Int(20)})
//	// "Some long string..."
//
// # Design Philosophy
//
//   - Pure functions with no hidden state
//   - Sensible defaults, every default overridable per call
package textkit
