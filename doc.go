// SPDX-License-Identifier: EPL-2.0

// Package sndprint captures microphone audio, conditions it, and hands it
// to acoustic fingerprint engines.
//
// The conditioning pipeline is the heart of the module: two-pass peak
// normalization (measure the global peak, then apply target/peak gain)
// followed by sample-rate and channel conversion to whatever mono format
// the fingerprint engine requires. Capture hardware, container codecs,
// and the fingerprint hashing itself stay behind interfaces.
//
// # Quick Start
//
// Record from the microphone and prepare the result for an extractor:
//
//	dev, _ := capture.NewPortAudioDevice(0)
//	session := capture.NewSession(dev)
//	format, _ := wave.NewFormat(44100, 16, 1)
//
//	session.Start(format)
//	time.Sleep(5 * time.Second)
//	session.Stop()
//
//	raw, _ := session.Captured()
//	ready, _ := sndprint.Prepare(raw, fingerprint.DefaultConfig())
//	hashes, _ := extractor.Extract(ready)
//
// # Files Instead of Microphones
//
// Existing audio files go through the same pipeline via the format
// registry:
//
//	ready, _ := sndprint.PrepareFile("song.mp3", sndprint.DefaultRegistry(),
//	    fingerprint.DefaultConfig())
//
// Supported containers: WAV, MP3, Ogg Vorbis, and AIFF.
//
// # Package Map
//
//   - wave: the waveform container, peak scanner, and WAV codec
//   - gain: two-pass peak normalization
//   - convert: sample rate / channel conversion contract
//   - capture: record/stop session state machine over PortAudio
//   - fingerprint: extractor collaborator surface
//   - audio: streaming primitives (Resampler, MonoMixer, Registry)
//   - formats/...: container decoders
//
// # Error Handling
//
// Every public operation returns either a valid result or an explicit
// error; there are no fatal paths and no silent nil sentinels. Sentinel
// errors (wave.ErrTooLarge, capture.ErrAlreadyRecording, ...) are
// comparable with errors.Is.
package sndprint
