// SPDX-License-Identifier: EPL-2.0

// Package utils converts between float32 samples in [-1, 1] and integer PCM
// of a given bit depth.
package utils

import "fmt"

// FullScale is 2^(bitDepth-1), the magnitude of the most negative sample at
// that depth. It returns 0 for depths other than 8, 16, 24 and 32.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 1 << 7
	case 16:
		return 1 << 15
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	}
	return 0
}

// CheckBitDepth returns an error unless bitDepth is one FullScale knows.
func CheckBitDepth(bitDepth int) error {
	if FullScale(bitDepth) == 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	return nil
}

// IntToFloat32 scales a signed PCM sample to [-1, 1). bitDepth must pass
// CheckBitDepth.
func IntToFloat32(v, bitDepth int) float32 {
	return float32(float64(v) / FullScale(bitDepth))
}

// Float32ToInt scales x by FullScale, the inverse of IntToFloat32, so every
// integer sample survives a round trip. -1 maps to -2^(bitDepth-1); values at
// or above 1 clip to 2^(bitDepth-1)-1. bitDepth must pass CheckBitDepth.
func Float32ToInt(x float32, bitDepth int) int {
	fs := FullScale(bitDepth)
	v := float64(x) * fs
	if v > fs-1 {
		return int(fs - 1)
	}
	if v < -fs {
		return int(-fs)
	}
	return int(v)
}

// Float32ToInt16 is Float32ToInt at 16 bits.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToInt(x, 16))
}
