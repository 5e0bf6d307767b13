// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sndprint/utils"
)

// DecodeWAV parses a WAV byte buffer into a Waveform. Only PCM 16-bit
// payloads are supported. A header whose declared payload cannot be
// addressed by a single in-memory buffer fails with ErrTooLarge.
func DecodeWAV(data []byte) (*Waveform, error) {
	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%d bits: %w", dec.BitDepth, ErrUnsupportedBitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wav data chunk: %w", err)
	}
	if declared := int64(dec.PCMSize) / 2; declared > MaxBufferSamples {
		return nil, fmt.Errorf("%d declared samples: %w", declared, ErrTooLarge)
	}

	format, err := NewFormat(int(dec.SampleRate), int(dec.BitDepth), int(dec.NumChans))
	if err != nil {
		return nil, err
	}

	samples := make([]float32, 0, dec.PCMSize/2)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: format.Channels,
			SampleRate:  format.SampleRate,
		},
		Data: make([]int, 4096),
	}

	for {
		n, err := dec.PCMBuffer(intBuf)
		if n == 0 {
			break
		}
		for _, v := range intBuf.Data[:n] {
			samples = append(samples, utils.Int16ToFloat32(int16(v)))
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("wav pcm: %w", err)
		}
	}

	return New(format, samples)
}

// EncodeWAV renders the waveform as a WAV byte buffer. Samples are
// quantized to 16-bit PCM with clamping to [-1, 1]; the round trip loses
// no magnitude information beyond that quantization.
func (w *Waveform) EncodeWAV() ([]byte, error) {
	if w.Format.BitsPerSample != 16 {
		return nil, fmt.Errorf("%d bits: %w", w.Format.BitsPerSample, ErrUnsupportedBitDepth)
	}
	if err := w.Format.Validate(); err != nil {
		return nil, err
	}

	buf := &seekBuffer{}
	enc := gowav.NewEncoder(buf, w.Format.SampleRate, w.Format.BitsPerSample, w.Format.Channels, 1)

	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: w.Format.Channels,
			SampleRate:  w.Format.SampleRate,
		},
		Data:           make([]int, len(w.Samples)),
		SourceBitDepth: 16,
	}
	for i, s := range w.Samples {
		intBuf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := enc.Write(intBuf); err != nil {
		return nil, fmt.Errorf("wav encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("wav finalize: %w", err)
	}

	return buf.Bytes(), nil
}

// seekBuffer implements io.WriteSeeker for in-memory data. go-audio's
// encoder seeks back to patch chunk sizes, so a plain bytes.Buffer is not
// enough.
type seekBuffer struct {
	data []byte
	off  int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if need := b.off + int64(len(p)); need > int64(len(b.data)) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}

	n := copy(b.data[b.off:], p)
	b.off += int64(n)
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.off + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, fmt.Errorf("negative position")
	}

	b.off = next
	return next, nil
}

func (b *seekBuffer) Bytes() []byte { return b.data }
