package shorten

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	assert.Equal(t, 50, opts.Length)
	assert.Equal(t, "...", opts.Ellipsis)
	assert.True(t, opts.Words)
	assert.False(t, opts.Lax)
}

func TestOverrides_Apply(t *testing.T) {
	t.Parallel()

	base := DefaultOptions()

	t.Run("empty overrides keep base", func(t *testing.T) {
		assert.Equal(t, base, Overrides{}.Apply(base))
	})

	t.Run("set fields replace base", func(t *testing.T) {
		got := Overrides{Length: Int(10), Lax: Bool(true)}.Apply(base)
		assert.Equal(t, Options{Length: 10, Ellipsis: "...", Words: true, Lax: true}, got)
	})

	t.Run("zero values are still overrides", func(t *testing.T) {
		got := Overrides{Length: Int(0), Ellipsis: String(""), Words: Bool(false)}.Apply(base)
		assert.Equal(t, Options{Length: 0, Ellipsis: "", Words: false, Lax: false}, got)
	})
}

func TestOverrides_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Overrides{}.IsZero())
	assert.False(t, Overrides{Words: Bool(true)}.IsZero())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultOptions(), Resolve())

	got := Resolve(
		Overrides{Length: Int(20), Ellipsis: String("[+]")},
		Overrides{Length: Int(30)},
	)
	assert.Equal(t, Options{Length: 30, Ellipsis: "[+]", Words: true, Lax: false}, got)
}
