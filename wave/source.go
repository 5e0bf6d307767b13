// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/sndprint/audio"
)

// MaxBufferSamples is the largest sample count a single Waveform may hold.
// Counts beyond this overflow a 32-bit allocation size; building the
// waveform fails with ErrTooLarge instead of silently truncating.
const MaxBufferSamples = math.MaxInt32

// Source adapts the waveform to the streaming audio.Source interface so it
// can feed a Resampler or MonoMixer. The returned source reads the sample
// slice in place; the waveform must not be mutated while it is being read.
func (w *Waveform) Source() audio.Source {
	return &bufferSource{w: w}
}

type bufferSource struct {
	w   *Waveform
	off int
}

func (s *bufferSource) SampleRate() int { return s.w.Format.SampleRate }
func (s *bufferSource) Channels() int   { return s.w.Format.Channels }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.off >= len(s.w.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.w.Samples[s.off:])
	s.off += n

	if s.off >= len(s.w.Samples) {
		return n, io.EOF
	}
	return n, nil
}

// FromSource drains src into a Waveform. The format descriptor is taken
// from the stream; bit depth is recorded as 16, the depth every sample is
// quantized to when the waveform is re-encoded. Sources longer than
// MaxBufferSamples fail with ErrTooLarge.
func FromSource(src audio.Source) (*Waveform, error) {
	samples, err := audio.Collect(src, 4096, MaxBufferSamples)
	if err != nil {
		if errors.Is(err, audio.ErrTooManySamples) {
			return nil, fmt.Errorf("draining source: %w", ErrTooLarge)
		}
		return nil, fmt.Errorf("draining source: %w", err)
	}

	format, err := NewFormat(src.SampleRate(), 16, src.Channels())
	if err != nil {
		return nil, err
	}

	return New(format, samples)
}
