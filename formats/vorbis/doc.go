// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into the audio.Source
// interface, delegating the codec work to jfreymuth/oggvorbis.
package vorbis
