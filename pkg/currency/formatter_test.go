package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{1200000, "IDR", "IDR 1.200.000"},
		{950, "IDR", "IDR 950"},
		{1234567.4, "USD", "USD 1,234,567"},
		{-2500000, "IDR", "-IDR 2.500.000"},
		{1500, "", "1,500"},
		{0, "IDR", "IDR 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.amount, tt.code))
	}
}
