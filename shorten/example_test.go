package shorten_test

import (
	"fmt"

	"github.com/randalmurphal/textkit/shorten"
)

func ExampleShorten() {
	text := "Some long string to shorten with arbitrary length."

	fmt.Println(shorten.Shorten(text, shorten.Overrides{Length: shorten.Int(20)}))
	fmt.Println(shorten.Shorten(text, shorten.Overrides{
		Length:   shorten.Int(20),
		Ellipsis: shorten.String("[+]"),
		Lax:      shorten.Bool(true),
	}))
	// Output:
	// Some long string...
	// Some long string to[+]
}

func ExampleShortener_Shorten() {
	sh := shorten.NewDefault().WithLength(15).WithWords(false)

	result, truncated := sh.Shorten("Some long string to shorten with arbitrary length.")
	fmt.Println(result, truncated)
	// Output: Some long st... true
}
