// SPDX-License-Identifier: EPL-2.0

package wave

import "fmt"

// Format describes a PCM stream: sample rate in Hz, bits per sample, and
// interleaved channel count. Formats are value types and are never mutated
// after construction.
type Format struct {
	SampleRate    int
	BitsPerSample int
	Channels      int
}

// NewFormat validates the fields and returns the Format. Every field must
// be positive.
func NewFormat(sampleRate, bitsPerSample, channels int) (Format, error) {
	f := Format{
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
		Channels:      channels,
	}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}

	return f, nil
}

// Validate rejects formats with non-positive fields.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", f.SampleRate, ErrInvalidFormat)
	}
	if f.BitsPerSample <= 0 {
		return fmt.Errorf("bits per sample %d: %w", f.BitsPerSample, ErrInvalidFormat)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("channels %d: %w", f.Channels, ErrInvalidFormat)
	}

	return nil
}

// Equal reports whether both formats match on all three fields.
func (f Format) Equal(other Format) bool {
	return f == other
}

// BytesPerFrame returns the encoded size of one frame (all channels).
func (f Format) BytesPerFrame() int {
	return f.Channels * f.BitsPerSample / 8
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz/%d-bit/%d ch", f.SampleRate, f.BitsPerSample, f.Channels)
}
