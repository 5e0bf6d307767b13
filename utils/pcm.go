// SPDX-License-Identifier: EPL-2.0

package utils

// ClampUnit limits x to the representable range [-1, 1].
// Values outside the range lose information; the clamp is lossy.
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Float32ToInt16 quantizes a [-1,1] sample to 16-bit PCM.
// Out-of-range input is clamped first.
func Float32ToInt16(x float32) int16 {
	// Use 32767 for positive max to avoid overflow
	return int16(ClampUnit(x) * 32767.0)
}

// Int16ToFloat32 expands a 16-bit PCM sample to [-1,1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
