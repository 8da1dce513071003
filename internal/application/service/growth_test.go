package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"no previous value", 150, 0, 0},
		{"both zero", 0, 0, 0},
		{"doubled", 200, 100, 100},
		{"halved", 50, 100, -50},
		{"rounded to one decimal", 4, 3, 33.3},
		{"dropped to zero", 0, 40, -100},
		{"tie rounds down to even", 401, 400, 0.2},
		{"tie rounds up to even", 403, 400, 0.8},
		{"negative tie", 399, 400, -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GrowthRate(tt.current, tt.previous))
		})
	}
}

func TestDecimalGrowth(t *testing.T) {
	assert.Equal(t, 25.0, decimalGrowth(decimal.RequireFromString("125000.00"), decimal.RequireFromString("100000.00")))
	assert.Equal(t, 0.0, decimalGrowth(decimal.RequireFromString("10"), decimal.Zero))
}

func TestCountGrowth(t *testing.T) {
	assert.Equal(t, 50.0, countGrowth(3, 2))
	assert.Equal(t, 0.0, countGrowth(3, 0))
}
