// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ik5/sndprint/utils"
)

// Waveform is an in-memory PCM buffer together with its format descriptor.
// Samples are interleaved by channel, float32, conceptually in [-1, 1].
type Waveform struct {
	Format  Format
	Samples []float32
}

// New validates format and payload and returns a Waveform. The sample count
// must divide evenly by the channel count so every frame is complete.
func New(format Format, samples []float32) (*Waveform, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if len(samples)%format.Channels != 0 {
		return nil, fmt.Errorf("%d samples over %d channels: %w",
			len(samples), format.Channels, ErrInvalidPayload)
	}

	return &Waveform{Format: format, Samples: samples}, nil
}

// FromPCM16 builds a Waveform from raw little-endian 16-bit PCM bytes.
// The format must declare 16 bits per sample and the payload length must
// divide evenly by the frame size.
func FromPCM16(format Format, data []byte) (*Waveform, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if format.BitsPerSample != 16 {
		return nil, fmt.Errorf("%d bits: %w", format.BitsPerSample, ErrUnsupportedBitDepth)
	}
	if len(data)%format.BytesPerFrame() != 0 {
		return nil, fmt.Errorf("%d bytes over %d-byte frames: %w",
			len(data), format.BytesPerFrame(), ErrInvalidPayload)
	}

	samples := make([]float32, len(data)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(data[2*i : 2*i+2]))
		samples[i] = utils.Int16ToFloat32(v)
	}

	return &Waveform{Format: format, Samples: samples}, nil
}

// PCM16 quantizes the samples to little-endian 16-bit PCM bytes. Samples
// outside [-1, 1] are clamped to the representable range; the clamp is
// lossy.
func (w *Waveform) PCM16() []byte {
	data := make([]byte, len(w.Samples)*2)
	for i, s := range w.Samples {
		binary.LittleEndian.PutUint16(data[2*i:2*i+2], uint16(utils.Float32ToInt16(s)))
	}

	return data
}

// Frames returns the number of complete frames (samples per channel).
func (w *Waveform) Frames() int {
	if w.Format.Channels == 0 {
		return 0
	}
	return len(w.Samples) / w.Format.Channels
}

// Duration of the signal at its declared sample rate.
func (w *Waveform) Duration() time.Duration {
	if w.Format.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(w.Frames()) / float64(w.Format.SampleRate) * float64(time.Second))
}

// Clone returns a deep copy that shares nothing with the receiver.
func (w *Waveform) Clone() *Waveform {
	samples := make([]float32, len(w.Samples))
	copy(samples, w.Samples)

	return &Waveform{Format: w.Format, Samples: samples}
}
