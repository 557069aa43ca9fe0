package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampBalance(t *testing.T) {
	const max = 1_000

	assert.Equal(t, int64(0), ClampBalance(-50, max))
	assert.Equal(t, int64(0), ClampBalance(math.MinInt64, max))
	assert.Equal(t, int64(500), ClampBalance(500, max))
	assert.Equal(t, int64(max), ClampBalance(max, max))
	assert.Equal(t, int64(max), ClampBalance(max+1, max))
	assert.Equal(t, int64(max), ClampBalance(math.MaxInt64, max))
}

func TestAddClamped(t *testing.T) {
	const max = 1_000_000_000

	assert.Equal(t, int64(300), AddClamped(100, 200, max))
	assert.Equal(t, int64(0), AddClamped(100, -200, max))
	assert.Equal(t, int64(max), AddClamped(100, max, max))

	// Wrapping sums land on the boundary the delta was heading for.
	assert.Equal(t, int64(max), AddClamped(100, math.MaxInt64, max))
	assert.Equal(t, int64(0), AddClamped(-100, math.MinInt64, max))
	assert.Equal(t, int64(max), AddClamped(math.MaxInt64, 1, max))
}

func TestSafeMul(t *testing.T) {
	r, ok := SafeMul(300, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(900), r)

	_, ok = SafeMul(math.MaxInt64, 2)
	assert.False(t, ok)

	_, ok = SafeMul(math.MaxInt64/2+1, 2)
	assert.False(t, ok)

	r, ok = SafeMul(0, math.MaxInt64)
	assert.True(t, ok)
	assert.Zero(t, r)
}

func TestTaxAmount_RoundHalfUp(t *testing.T) {
	tests := []struct {
		price, bps, want int64
	}{
		{300, 500, 15},    // exactly 5%
		{101, 500, 5},     // 5.05 -> 5
		{110, 500, 6},     // 5.5 rounds up
		{1, 500, 0},       // 0.05 -> 0
		{10, 500, 1},      // 0.5 rounds up
		{300, 0, 0},       // tax disabled
		{0, 500, 0},       // free trade
		{-5, 500, 0},      // negative price taxes nothing
		{300, 10000, 300}, // 100% tax
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TaxAmount(tt.price, tt.bps), "price=%d bps=%d", tt.price, tt.bps)
	}
}
