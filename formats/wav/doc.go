// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes PCM 16-bit WAV streams.
//
// Decoding is delegated to go-audio/wav and exposed through the
// audio.Source interface so WAV input plugs into the same pipelines as
// every other format. WriteWAV16 renders int16 samples back to a WAV
// stream.
package wav
