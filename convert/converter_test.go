// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ik5/sndprint/wave"
)

func mustWaveform(t *testing.T, rate, channels int, samples []float32) *wave.Waveform {
	t.Helper()

	format, err := wave.NewFormat(rate, 16, channels)
	if err != nil {
		t.Fatalf("NewFormat() error = %v", err)
	}
	w, err := wave.New(format, samples)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func sine(rate, channels, frames int, freq float64) []float32 {
	samples := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		v := float32(math.Sin(2 * math.Pi * freq * float64(f) / float64(rate)))
		for c := 0; c < channels; c++ {
			samples[f*channels+c] = v
		}
	}
	return samples
}

func TestTo_ShortCircuit(t *testing.T) {
	t.Parallel()

	// Already at the target format: the input comes back as-is and the
	// resampler is never constructed
	w := mustWaveform(t, 16000, 1, sine(16000, 1, 16000, 440))

	out, err := To(w, 16000, 1)
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}

	if out != w {
		t.Error("To() re-encoded a waveform already at the target format")
	}
}

func TestTo_Resample(t *testing.T) {
	t.Parallel()

	// 1 second at 44.1 kHz mono down to 16 kHz
	w := mustWaveform(t, 44100, 1, sine(44100, 1, 44100, 440))

	out, err := To(w, 16000, 1)
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}

	want := wave.Format{SampleRate: 16000, BitsPerSample: 16, Channels: 1}
	if !out.Format.Equal(want) {
		t.Errorf("To() format = %v, want %v", out.Format, want)
	}

	// Duration preserved within one sample period of the target rate
	period := time.Second / 16000
	diff := out.Duration() - w.Duration()
	if diff < 0 {
		diff = -diff
	}
	if diff >= period {
		t.Errorf("duration drifted by %v, want < %v", diff, period)
	}
}

func TestTo_StereoToMono(t *testing.T) {
	t.Parallel()

	// 44.1 kHz stereo to 16 kHz mono, the fingerprint hand-off path
	w := mustWaveform(t, 44100, 2, sine(44100, 2, 44100, 440))

	out, err := To(w, 16000, 1)
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}

	if out.Format.Channels != 1 {
		t.Errorf("To() channels = %d, want 1", out.Format.Channels)
	}
	if out.Format.SampleRate != 16000 {
		t.Errorf("To() rate = %d, want 16000", out.Format.SampleRate)
	}

	period := time.Second / 16000
	diff := out.Duration() - w.Duration()
	if diff < 0 {
		diff = -diff
	}
	if diff >= period {
		t.Errorf("duration drifted by %v, want < %v", diff, period)
	}
}

func TestTo_MonoOnlySameRate(t *testing.T) {
	t.Parallel()

	// Channel change without a rate change
	w := mustWaveform(t, 8000, 2, []float32{0.4, 0.6, 0.2, 0.8})

	out, err := To(w, 8000, 1)
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}

	if out.Frames() != 2 {
		t.Fatalf("To() frames = %d, want 2", out.Frames())
	}

	// Down-mix is deterministic channel averaging
	if math.Abs(float64(out.Samples[0]-0.5)) > 1e-6 {
		t.Errorf("Samples[0] = %v, want 0.5", out.Samples[0])
	}
	if math.Abs(float64(out.Samples[1]-0.5)) > 1e-6 {
		t.Errorf("Samples[1] = %v, want 0.5", out.Samples[1])
	}
}

func TestTo_BitDepthPreserved(t *testing.T) {
	t.Parallel()

	w := mustWaveform(t, 44100, 2, sine(44100, 2, 4410, 440))

	out, err := To(w, 22050, 1)
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}

	if out.Format.BitsPerSample != w.Format.BitsPerSample {
		t.Errorf("To() bits = %d, want %d", out.Format.BitsPerSample, w.Format.BitsPerSample)
	}
}

func TestTo_UnsupportedChannels(t *testing.T) {
	t.Parallel()

	w := mustWaveform(t, 44100, 1, sine(44100, 1, 100, 440))

	// Upmixing mono to stereo is not defined
	_, err := To(w, 44100, 2)
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("To() error = %v, want ErrUnsupportedChannels", err)
	}
}

func TestTo_InvalidTarget(t *testing.T) {
	t.Parallel()

	w := mustWaveform(t, 44100, 1, sine(44100, 1, 100, 440))

	tests := []struct {
		name           string
		rate, channels int
	}{
		{"zero rate", 0, 1},
		{"negative rate", -8000, 1},
		{"zero channels", 16000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := To(w, tt.rate, tt.channels)
			if !errors.Is(err, ErrConversionFailed) {
				t.Errorf("To(%d, %d) error = %v, want ErrConversionFailed",
					tt.rate, tt.channels, err)
			}
		})
	}
}

func TestTo_NoInput(t *testing.T) {
	t.Parallel()

	if _, err := To(nil, 16000, 1); !errors.Is(err, wave.ErrNoInput) {
		t.Errorf("To(nil) error = %v, want ErrNoInput", err)
	}
}
