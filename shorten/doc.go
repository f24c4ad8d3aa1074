// Package shorten truncates strings to a maximum length.
//
// By default the result keeps whole words and ends with "..." when the
// input had to be cut. The ellipsis counts against the length budget unless
// lax mode is enabled.
//
// # Basic Usage
//
//	s := shorten.Shorten("Some long string to shorten with arbitrary length.",
//	    shorten.Overrides{Length: shorten.Int(20)})
//	// "Some long string..."
//
// Overrides are partial: only the fields that are set replace the defaults
// (length 50, ellipsis "...", whole words, strict budget). Several overrides
// are applied left to right.
//
// # Reusable Shortener
//
//	sh := shorten.NewDefault().WithEllipsis("[+]").WithLength(20)
//	result, truncated := sh.Shorten(text)
//
// # Decoding Options
//
// A partial options record can be decoded from JSON, YAML or TOML:
//
//	o, err := shorten.Decode(shorten.FormatYAML, []byte("length: 20\nlax: true\n"))
//	result := shorten.Shorten(text, o)
//
// Schema returns the JSON Schema of that record.
//
// # Word Boundaries
//
// Word mode backs off to the last space inside the trimmed prefix. When the
// prefix has no space at all, nothing of the content is kept and the result
// is the ellipsis alone.
//
// # UTF-8 Support
//
// Lengths are counted in runes, so multi-byte characters are never split.
package shorten
