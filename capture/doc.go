// SPDX-License-Identifier: EPL-2.0

// Package capture records microphone audio behind a small state machine.
//
// A Session is Idle or Recording. Start begins appending device chunks to
// a fresh buffer; Stop finalizes the buffer and makes it readable through
// Captured. Every wrong-state call reports a sentinel error instead of
// failing hard, and device resources are released on every exit path.
//
// The hardware sits behind the Device interface. PortAudioDevice is the
// real implementation; tests substitute their own.
package capture
