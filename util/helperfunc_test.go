package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"  Asha Rao  ":      "Asha Rao",
		"Asha    Rao":       "Asha Rao",
		"\tAsha\n Rao ":     "Asha Rao",
		"Asha Rao":          "Asha Rao",
		"":                  "",
		"   ":               "",
		"Single":            "Single",
		" A  B   C  D ":     "A B C D",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeName(input), "input %q", input)
	}
}
