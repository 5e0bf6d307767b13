// SPDX-License-Identifier: EPL-2.0

package fingerprint

import (
	"time"

	"github.com/ik5/sndprint/wave"
)

// Hash is one fingerprint record: an opaque hash payload together with
// its position in the source signal. Matching engines treat Sum as a key
// and Position as the alignment anchor.
type Hash struct {
	Position time.Duration
	Sum      []byte
}

// Extractor derives an ordered sequence of hashes from a waveform. The
// waveform must already be mono at the extractor's required sample rate;
// use Config.Format with the convert package to get there.
type Extractor interface {
	Extract(w *wave.Waveform) ([]Hash, error)
}

// Config carries the parameters an extraction engine is tuned with. Only
// SampleRate matters to this module (it fixes the hand-off format); the
// rest travel through to the engine.
type Config struct {
	// SampleRate the engine requires, in Hz.
	SampleRate int
	// WindowSize is the analysis window in samples (power of 2).
	WindowSize int
	// HopSize is the distance between successive windows in samples.
	HopSize int
	// TargetZoneSize is the number of neighboring peaks paired with each
	// anchor peak.
	TargetZoneSize int
}

// DefaultConfig returns Shazam-style parameters: 11025 Hz mono input with
// high time-frequency resolution, suitable for short music clips.
func DefaultConfig() Config {
	return Config{
		SampleRate:     11025,
		WindowSize:     1024,
		HopSize:        512,
		TargetZoneSize: 5,
	}
}

// Format returns the waveform format the engine consumes: mono 16-bit at
// the configured rate.
func (c Config) Format() wave.Format {
	return wave.Format{
		SampleRate:    c.SampleRate,
		BitsPerSample: 16,
		Channels:      1,
	}
}
