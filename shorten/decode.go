package shorten

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Format names an encoding for an options record.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// knownKeys are the option keys shared by every format.
var knownKeys = []string{"length", "ellipsis", "words", "lax"}

// Decode parses a partial options record in the given format.
// Empty input yields empty Overrides. Keys match without regard to case in
// every format. Unknown keys are ignored.
func Decode(format Format, data []byte) (Overrides, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatTOML:
		return DecodeTOML(data)
	default:
		return Overrides{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeJSON parses a JSON object into Overrides.
func DecodeJSON(data []byte) (Overrides, error) {
	var o Overrides
	if len(bytes.TrimSpace(data)) == 0 {
		return o, nil
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return Overrides{}, &DecodeError{Format: FormatJSON, Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err == nil {
		reportUnknown(FormatJSON, unknownKeys(raw))
	}
	return o, nil
}

// DecodeYAML parses a YAML mapping into Overrides.
// yaml.v3 matches field names exactly, so top-level keys are folded onto
// the canonical names first.
func DecodeYAML(data []byte) (Overrides, error) {
	var o Overrides
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Overrides{}, &DecodeError{Format: FormatYAML, Err: err}
	}
	if len(doc.Content) == 0 {
		return o, nil
	}

	root := doc.Content[0]
	var unknown []string
	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			key := root.Content[i]
			if name, ok := canonicalKey(key.Value); ok {
				key.Value = name
			} else {
				unknown = append(unknown, key.Value)
			}
		}
	}

	if err := root.Decode(&o); err != nil {
		return Overrides{}, &DecodeError{Format: FormatYAML, Err: err}
	}
	reportUnknown(FormatYAML, unknown)
	return o, nil
}

// DecodeTOML parses a TOML document into Overrides.
func DecodeTOML(data []byte) (Overrides, error) {
	var o Overrides
	md, err := toml.Decode(string(data), &o)
	if err != nil {
		return Overrides{}, &DecodeError{Format: FormatTOML, Err: err}
	}

	undecoded := md.Undecoded()
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	reportUnknown(FormatTOML, keys)
	return o, nil
}

// Schema returns the JSON Schema of the Overrides record. Every property is
// optional and additional properties are allowed.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	s := r.Reflect(&Overrides{})
	s.Title = "shorten options"
	return s
}

// canonicalKey returns the option key equal to k under case folding.
func canonicalKey(k string) (string, bool) {
	for _, name := range knownKeys {
		if strings.EqualFold(k, name) {
			return name, true
		}
	}
	return "", false
}

func unknownKeys(raw map[string]json.RawMessage) []string {
	var keys []string
	for k := range raw {
		if _, ok := canonicalKey(k); !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func reportUnknown(format Format, keys []string) {
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)
	slog.Debug("ignoring unknown shorten options",
		slog.String("format", string(format)),
		slog.Any("keys", keys))
}
