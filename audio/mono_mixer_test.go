// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	// Mono input should pass through unchanged
	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	// Stereo source with different values per channel
	src := newMockSource(8000, 2, 100, func(sample int, channel int) float32 {
		if channel == 0 {
			return 0.4 // Left channel
		}
		return 0.6 // Right channel
	})

	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	// All samples should be average: (0.4 + 0.6) / 2 = 0.5
	expected := float32(0.5)
	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-expected)) > 0.001 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], expected)
		}
	}
}

func TestMonoMixer_MultiChannel(t *testing.T) {
	t.Parallel()

	// 4-channel source
	src := newMockSource(8000, 4, 100, func(sample int, channel int) float32 {
		return float32(channel) / 10.0 // 0.0, 0.1, 0.2, 0.3
	})

	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	// Average: (0.0 + 0.1 + 0.2 + 0.3) / 4 = 0.15
	expected := float32(0.15)
	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-expected)) > 0.001 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], expected)
		}
	}
}

func TestMonoMixer_SampleRatePreserved(t *testing.T) {
	t.Parallel()

	src := newSilentSource(22050, 2, 100)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 22050 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 22050", mixer.SampleRate())
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 100)
	mixer := NewMonoMixer(src)

	n, err := mixer.ReadSamples(nil)

	if n != 0 {
		t.Errorf("ReadSamples(nil) n = %d, want 0", n)
	}
	if err != nil {
		t.Errorf("ReadSamples(nil) error = %v", err)
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 5)
	mixer := NewMonoMixer(src)

	buf := make([]float32, 100)
	n, err := mixer.ReadSamples(buf)

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}
