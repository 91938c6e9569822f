package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	cases := map[int64]string{
		0:        "$0",
		999:      "$999",
		1000:     "$1.000",
		12500:    "$12.500",
		100000:   "$100.000",
		1234567:  "$1.234.567",
		-4500:    "-$4.500",
		25000000: "$25.000.000",
	}

	for amount, want := range cases {
		assert.Equal(t, want, FormatCOP(amount), "amount %d", amount)
	}
}
