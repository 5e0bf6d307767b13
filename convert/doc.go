// SPDX-License-Identifier: EPL-2.0

// Package convert changes a waveform's sample rate and channel count.
//
// The package owns the conversion contract, not the filter math: it
// decides when a conversion can be skipped, which components to chain,
// and how failure surfaces. The actual resampling and down-mixing are
// delegated to the audio package.
package convert
