package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     float64
	}{
		{3.14159, 2, 3.14},
		{2.675, 1, 2.7},
		{1234.565, 0, 1235},
		{-1.005, 1, -1.0},
		{-2.5, 0, -3},
		{10, 2, 10},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundDecimal(tt.value, tt.decimals), 1e-9, "value=%v", tt.value)
	}
}
