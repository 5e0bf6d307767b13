// SPDX-License-Identifier: EPL-2.0

// Package wave defines the in-memory waveform container used across the
// module: a PCM sample buffer paired with its format descriptor.
//
// A Waveform can be built from raw float32 samples, from raw 16-bit PCM
// bytes, from a WAV byte buffer, or by draining any audio.Source. It can
// be rendered back to PCM bytes or a WAV buffer; the round trip preserves
// magnitudes up to 16-bit quantization.
//
// The package also hosts the peak scanner: a single linear pass over every
// sample that yields the maximum absolute magnitude, the measurement the
// gain normalizer is built on.
//
// Capacity is bounded by MaxBufferSamples. Declared sample counts beyond
// it fail with ErrTooLarge rather than truncating.
package wave
