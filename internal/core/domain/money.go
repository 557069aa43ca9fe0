package domain

// ClampBalance truncates v into [0, max]. Out-of-range values are silently
// clamped rather than rejected; arithmetic mistakes become harmless floor or
// ceiling hits instead of user-facing errors.
func ClampBalance(v, max int64) int64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// AddClamped computes clamp(v + delta) into [0, max] without wrapping: a sum
// overflowing int64 lands on the ceiling or the floor, matching the sign of
// the delta that caused it.
func AddClamped(v, delta, max int64) int64 {
	sum := v + delta
	if delta > 0 && sum < v {
		return max
	}
	if delta < 0 && sum > v {
		return 0
	}
	return ClampBalance(sum, max)
}

// SafeMul multiplies two non-negative amounts, reporting ok=false on overflow.
func SafeMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/a != b {
		return 0, false
	}
	return r, true
}

// TaxAmount computes the market tax withheld from a trade price, in basis
// points, rounded half up. The withheld amount is destroyed, not redistributed.
func TaxAmount(price, taxBps int64) int64 {
	if price <= 0 || taxBps <= 0 {
		return 0
	}
	return (price*taxBps + 5_000) / 10_000
}
