// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into the audio.Source interface,
// delegating the codec work to hajimehoshi/go-mp3. Output is always 16-bit
// stereo at the stream's native sample rate.
package mp3
