// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/sndprint/audio"
	"github.com/ik5/sndprint/wave"
)

// To converts w to the target sample rate and channel count, preserving
// bit depth. When the waveform is already at the target format the input
// is returned unchanged and the resampler is never touched.
//
// Resampling is delegated to audio.Resampler (cubic interpolation) and
// channel reduction to audio.MonoMixer (deterministic averaging). Only
// down-mix to mono is defined; any other channel change fails with
// ErrUnsupportedChannels. Total duration is preserved within one sample
// period of the target rate.
func To(w *wave.Waveform, sampleRate, channels int) (*wave.Waveform, error) {
	if w == nil || len(w.Samples) == 0 {
		return nil, wave.ErrNoInput
	}
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("target %d Hz/%d ch: %w", sampleRate, channels, ErrConversionFailed)
	}

	if w.Format.SampleRate == sampleRate && w.Format.Channels == channels {
		return w, nil
	}

	if channels != w.Format.Channels && channels != 1 {
		return nil, fmt.Errorf("%d ch to %d ch: %w", w.Format.Channels, channels, ErrUnsupportedChannels)
	}

	var src audio.Source = w.Source()
	if w.Format.SampleRate != sampleRate {
		src = audio.NewResampler(src, sampleRate)
	}
	if channels == 1 && w.Format.Channels != 1 {
		src = audio.NewMonoMixer(src)
	}

	samples, err := audio.Collect(src, 4096, wave.MaxBufferSamples)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	format := wave.Format{
		SampleRate:    sampleRate,
		BitsPerSample: w.Format.BitsPerSample,
		Channels:      channels,
	}

	out, err := wave.New(format, samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	return out, nil
}
