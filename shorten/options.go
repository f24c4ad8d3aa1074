package shorten

// Default option values.
const (
	DefaultLength   = 50
	DefaultEllipsis = "..."
	DefaultWords    = true
	DefaultLax      = false
)

// Options is a fully resolved set of shortening options.
type Options struct {
	// Length is the maximum output length in runes.
	Length int

	// Ellipsis is appended when the value is truncated.
	Ellipsis string

	// Words backs off to the last whole word instead of cutting mid-word.
	Words bool

	// Lax excludes the ellipsis from the Length budget, so the output may
	// be longer than Length.
	Lax bool
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		Length:   DefaultLength,
		Ellipsis: DefaultEllipsis,
		Words:    DefaultWords,
		Lax:      DefaultLax,
	}
}

// Overrides is a partial options record. Nil fields keep the base value.
type Overrides struct {
	Length   *int    `json:"length,omitempty" yaml:"length,omitempty" toml:"length,omitempty" jsonschema:"default=50,description=Maximum output length in characters"`
	Ellipsis *string `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty" toml:"ellipsis,omitempty" jsonschema:"default=...,description=Marker appended when the value is truncated"`
	Words    *bool   `json:"words,omitempty" yaml:"words,omitempty" toml:"words,omitempty" jsonschema:"default=true,description=Keep whole words"`
	Lax      *bool   `json:"lax,omitempty" yaml:"lax,omitempty" toml:"lax,omitempty" jsonschema:"default=false,description=Do not count the ellipsis against the length"`
}

// Apply returns base with every set field of o written over it.
func (o Overrides) Apply(base Options) Options {
	if o.Length != nil {
		base.Length = *o.Length
	}
	if o.Ellipsis != nil {
		base.Ellipsis = *o.Ellipsis
	}
	if o.Words != nil {
		base.Words = *o.Words
	}
	if o.Lax != nil {
		base.Lax = *o.Lax
	}
	return base
}

// IsZero reports whether no field is set.
func (o Overrides) IsZero() bool {
	return o.Length == nil && o.Ellipsis == nil && o.Words == nil && o.Lax == nil
}

// Resolve layers overrides over the defaults, left to right.
func Resolve(overrides ...Overrides) Options {
	opts := DefaultOptions()
	for _, o := range overrides {
		opts = o.Apply(opts)
	}
	return opts
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
