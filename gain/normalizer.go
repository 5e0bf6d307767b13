// SPDX-License-Identifier: EPL-2.0

package gain

import (
	"bytes"
	"fmt"

	"github.com/ik5/sndprint/wave"
)

// DefaultTarget is the peak fraction recordings are normalized to before
// fingerprinting.
const DefaultTarget = 0.95

// Normalize scales w so its maximum absolute sample equals target,
// 0 < target <= 1. The work is two separate passes: first the peak is
// measured over the entire signal, then the gain factor target/peak is
// applied uniformly to every sample of every channel. A single streaming
// pass cannot work here since the factor depends on the global maximum.
//
// The input is returned unchanged when:
//   - the measured peak is exactly zero (pure silence; amplifying it is
//     meaningless and would divide by zero), or
//   - the peak is already at or above target (amplify-only policy: a quiet
//     signal below target is raised, anything else is left alone; this
//     normalizer never attenuates).
//
// The output format is identical to the input format. Because the gain
// factor is always > 1 when applied, results stay within [-target, target]
// and never clip; re-quantization to PCM still clamps, see
// wave.Waveform.PCM16.
func Normalize(w *wave.Waveform, target float64) (*wave.Waveform, error) {
	if w == nil || len(w.Samples) == 0 {
		return nil, wave.ErrNoInput
	}
	if target <= 0 || target > 1 {
		return nil, fmt.Errorf("target %v: %w", target, ErrInvalidTarget)
	}

	// Pass 1: measure.
	peak := w.Peak()
	if peak == 0 || peak >= target {
		return w, nil
	}

	// Pass 2: apply.
	factor := float32(target / peak)
	out := &wave.Waveform{
		Format:  w.Format,
		Samples: make([]float32, len(w.Samples)),
	}
	for i, s := range w.Samples {
		out.Samples[i] = s * factor
	}

	return out, nil
}

// NormalizeWAV is the byte-buffer form of Normalize: the buffer is decoded,
// normalized, and re-encoded. When normalization is a no-op (silence or
// peak already at target) the input slice is returned unchanged, byte for
// byte. Decoding or encoding failure wraps ErrNormalizeFailed; the caller
// decides whether to fall back to the original buffer or to propagate.
func NormalizeWAV(data []byte, target float64) ([]byte, error) {
	w, err := wave.DecodeWAV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNormalizeFailed, err)
	}

	out, err := Normalize(w, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNormalizeFailed, err)
	}
	if out == w {
		// No gain applied; skip the lossy re-encode entirely.
		return data, nil
	}

	encoded, err := out.EncodeWAV()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNormalizeFailed, err)
	}

	return encoded, nil
}

// Normalized reports whether data is a WAV buffer Normalize would leave
// untouched.
func Normalized(data []byte, target float64) (bool, error) {
	out, err := NormalizeWAV(data, target)
	if err != nil {
		return false, err
	}

	return bytes.Equal(out, data), nil
}
