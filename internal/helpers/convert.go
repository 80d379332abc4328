// Package helpers provides clamped integer conversions for wire-width fields.
//
// Values arriving from flags, JSON bodies or length computations are plain
// ints; the DNS fields they end up in are 8 or 16 bits wide. These helpers
// clamp instead of silently wrapping.
package helpers

import "math"

func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// ClampIntToUint8 converts v to uint8 with clamping.
func ClampIntToUint8(v int) uint8 {
	return uint8(clampInt(v, 0, math.MaxUint8)) //nolint:gosec // clamped to valid range
}

// ClampIntToUint16 converts v to uint16 with clamping.
// Values below 0 become 0; values above math.MaxUint16 become math.MaxUint16.
func ClampIntToUint16(v int) uint16 {
	return uint16(clampInt(v, 0, math.MaxUint16)) //nolint:gosec // clamped to valid range
}
