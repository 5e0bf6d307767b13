// SPDX-License-Identifier: EPL-2.0

package sndprint

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sndprint/audio"
	"github.com/ik5/sndprint/convert"
	"github.com/ik5/sndprint/fingerprint"
	"github.com/ik5/sndprint/formats/aiff"
	"github.com/ik5/sndprint/formats/mp3"
	"github.com/ik5/sndprint/formats/vorbis"
	"github.com/ik5/sndprint/formats/wav"
	"github.com/ik5/sndprint/gain"
	"github.com/ik5/sndprint/wave"
)

// Prepare conditions a waveform for fingerprint extraction: two-pass peak
// normalization to gain.DefaultTarget, then conversion to the engine's
// required mono format. If normalization fails the pipeline falls back to
// the unnormalized input instead of dropping the recording; an
// unnormalized signal still fingerprints, a lost one does not. Conversion
// failure propagates.
func Prepare(w *wave.Waveform, cfg fingerprint.Config) (*wave.Waveform, error) {
	if w == nil || len(w.Samples) == 0 {
		return nil, wave.ErrNoInput
	}

	normalized, err := gain.Normalize(w, gain.DefaultTarget)
	if err != nil {
		normalized = w
	}

	out, err := convert.To(normalized, cfg.SampleRate, 1)
	if err != nil {
		return nil, fmt.Errorf("preparing waveform: %w", err)
	}

	return out, nil
}

// PrepareSource drains a decoded stream and runs it through Prepare.
func PrepareSource(src audio.Source, cfg fingerprint.Config) (*wave.Waveform, error) {
	w, err := wave.FromSource(src)
	if err != nil {
		return nil, fmt.Errorf("collecting source: %w", err)
	}

	return Prepare(w, cfg)
}

// PrepareReader decodes r using the registry entry for the given format
// key and prepares the result for fingerprinting.
func PrepareReader(r io.Reader, format string, reg *audio.Registry, cfg fingerprint.Config) (*wave.Waveform, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	return PrepareSource(src, cfg)
}

// PrepareFile opens path, selects a decoder by its extension, and
// prepares the decoded audio for fingerprinting.
func PrepareFile(path string, reg *audio.Registry, cfg fingerprint.Config) (*wave.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return PrepareReader(f, FormatKey(path), reg, cfg)
}

// FormatKey derives the registry key for a file path from its extension
// ("song.mp3" -> "mp3").
func FormatKey(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// DefaultRegistry returns a registry with every bundled decoder
// registered: wav, mp3, ogg (Vorbis), and aiff.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}
