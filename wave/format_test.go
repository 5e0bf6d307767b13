// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"testing"
)

func TestNewFormat_Valid(t *testing.T) {
	t.Parallel()

	f, err := NewFormat(44100, 16, 2)
	if err != nil {
		t.Fatalf("NewFormat() error = %v", err)
	}

	if f.SampleRate != 44100 || f.BitsPerSample != 16 || f.Channels != 2 {
		t.Errorf("NewFormat() = %+v, want {44100 16 2}", f)
	}
}

func TestNewFormat_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                              string
		sampleRate, bitsPerSample, channels int
	}{
		{"zero rate", 0, 16, 1},
		{"negative rate", -44100, 16, 1},
		{"zero bits", 44100, 0, 1},
		{"negative bits", 44100, -16, 1},
		{"zero channels", 44100, 16, 0},
		{"negative channels", 44100, 16, -2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFormat(tt.sampleRate, tt.bitsPerSample, tt.channels)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("NewFormat(%d, %d, %d) error = %v, want ErrInvalidFormat",
					tt.sampleRate, tt.bitsPerSample, tt.channels, err)
			}
		})
	}
}

func TestFormat_Equal(t *testing.T) {
	t.Parallel()

	base := Format{SampleRate: 44100, BitsPerSample: 16, Channels: 2}

	tests := []struct {
		name  string
		other Format
		want  bool
	}{
		{"identical", Format{44100, 16, 2}, true},
		{"different rate", Format{48000, 16, 2}, false},
		{"different bits", Format{44100, 24, 2}, false},
		{"different channels", Format{44100, 16, 1}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestFormat_BytesPerFrame(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 44100, BitsPerSample: 16, Channels: 2}
	if got := f.BytesPerFrame(); got != 4 {
		t.Errorf("BytesPerFrame() = %d, want 4", got)
	}

	mono := Format{SampleRate: 8000, BitsPerSample: 16, Channels: 1}
	if got := mono.BytesPerFrame(); got != 2 {
		t.Errorf("BytesPerFrame() = %d, want 2", got)
	}
}
