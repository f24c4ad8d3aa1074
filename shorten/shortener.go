package shorten

import (
	"strings"
	"unicode/utf8"
)

// Shortener truncates strings with a fixed set of options.
// A Shortener is never modified after construction and is safe for
// concurrent use.
type Shortener struct {
	opts Options
}

// New creates a shortener with the given options.
func New(opts Options) *Shortener {
	return &Shortener{opts: opts}
}

// NewDefault creates a shortener with DefaultOptions.
func NewDefault() *Shortener {
	return New(DefaultOptions())
}

// WithLength returns a copy with a different maximum length.
func (s *Shortener) WithLength(length int) *Shortener {
	c := *s
	c.opts.Length = length
	return &c
}

// WithEllipsis returns a copy with a different ellipsis.
func (s *Shortener) WithEllipsis(ellipsis string) *Shortener {
	c := *s
	c.opts.Ellipsis = ellipsis
	return &c
}

// WithWords returns a copy that does or does not keep whole words.
func (s *Shortener) WithWords(words bool) *Shortener {
	c := *s
	c.opts.Words = words
	return &c
}

// WithLax returns a copy with lax mode switched on or off.
func (s *Shortener) WithLax(lax bool) *Shortener {
	c := *s
	c.opts.Lax = lax
	return &c
}

// Options returns the shortener's options.
func (s *Shortener) Options() Options {
	return s.opts
}

// Shorten truncates value to the configured length.
// Returns the result and whether truncation occurred.
func (s *Shortener) Shorten(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	if utf8.RuneCountInString(value) <= s.opts.Length {
		return value, false
	}

	trimmed := trimToLength(value, s.opts.Length, s.opts.Ellipsis, s.opts.Lax)
	if !s.opts.Words {
		return trimmed + s.opts.Ellipsis, true
	}
	return trimToWords(trimmed, s.opts.Ellipsis), true
}

// Shorten truncates value using the defaults layered with overrides.
func Shorten(value string, overrides ...Overrides) string {
	result, _ := New(Resolve(overrides...)).Shorten(value)
	return result
}

// ShortenPtr is Shorten for an optional value. A nil value yields "".
func ShortenPtr(value *string, overrides ...Overrides) string {
	if value == nil {
		return ""
	}
	return Shorten(*value, overrides...)
}

// trimToLength keeps the first length runes of value, minus the ellipsis
// unless lax. Out of range counts clamp to [0, len(value)].
func trimToLength(value string, length int, ellipsis string, lax bool) string {
	pad := 0
	if !lax {
		pad = utf8.RuneCountInString(ellipsis)
	}

	keep := max(0, length-pad)
	n := 0
	for i := range value {
		if n == keep {
			return value[:i]
		}
		n++
	}
	return value
}

// trimToWords cuts value at its last space and appends ellipsis.
// Without a space the index is -1 and the whole content is dropped.
func trimToWords(value, ellipsis string) string {
	lastSpace := strings.LastIndexByte(value, ' ')
	index := min(len(value), lastSpace)
	if index < 0 {
		return ellipsis
	}
	return value[:index] + ellipsis
}
