package shorten

// ToLength shortens value to length runes with the default ellipsis,
// keeping whole words.
func ToLength(value string, length int) string {
	return Shorten(value, Overrides{Length: &length})
}

// ToChars shortens value to length runes, cutting mid-word if needed.
func ToChars(value string, length int) string {
	return Shorten(value, Overrides{Length: &length, Words: Bool(false)})
}

// ToWords shortens value to length runes at a word boundary, ending with
// the given ellipsis.
func ToWords(value string, length int, ellipsis string) string {
	return Shorten(value, Overrides{Length: &length, Ellipsis: &ellipsis, Words: Bool(true)})
}
