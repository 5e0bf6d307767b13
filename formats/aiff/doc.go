// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF streams into the audio.Source
// interface, delegating the container parsing to go-audio/aiff.
package aiff
