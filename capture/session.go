// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"sync"

	"github.com/ik5/sndprint/wave"
)

// State of a capture session.
type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Device abstracts the audio input hardware. Start begins delivering
// chunks of interleaved float32 samples to onData from the device's own
// goroutine until Stop is called. Implementations must release every
// acquired resource on Stop and Close, on error paths included.
type Device interface {
	Start(format wave.Format, onData func(chunk []float32)) error
	Stop() error
	Close() error
}

// Session owns the record/stop lifecycle over a Device and accumulates
// the incoming chunks. Chunks are appended atomically in arrival order;
// the captured waveform is only readable once the session is idle again.
//
// All methods are safe for concurrent use. Stop may be called from a
// different goroutine than Start; the transition back to idle is
// linearized with in-flight chunk deliveries, so a chunk is either fully
// appended before Stop completes or dropped.
type Session struct {
	dev Device

	mu       sync.Mutex
	state    State
	format   wave.Format
	samples  []float32
	captured *wave.Waveform
}

func NewSession(dev Device) *Session {
	return &Session{dev: dev}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Start allocates a fresh buffer and begins recording in the given
// format. Starting while already recording fails with
// ErrAlreadyRecording and leaves the running session untouched. If the
// device fails to start, the session is rolled back to idle with nothing
// allocated or half-initialized.
func (s *Session) Start(format wave.Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == Recording {
		s.mu.Unlock()
		return ErrAlreadyRecording
	}
	s.state = Recording
	s.format = format
	s.samples = nil
	s.captured = nil
	s.mu.Unlock()

	if err := s.dev.Start(format, s.append); err != nil {
		s.mu.Lock()
		s.state = Idle
		s.samples = nil
		s.mu.Unlock()

		return fmt.Errorf("starting device: %w", err)
	}

	return nil
}

// append is the device data callback. Each chunk is appended atomically
// relative to other chunks and to Stop; chunks delivered after Stop has
// flipped the state are dropped.
func (s *Session) append(chunk []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Recording {
		return
	}

	s.samples = append(s.samples, chunk...)
}

// Stop transitions Recording -> Idle and finalizes the buffer so it
// becomes readable through Captured. Stopping an idle session is a no-op
// that reports ErrNotRecording as its diagnostic, not a fault.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state != Recording {
		s.mu.Unlock()
		return ErrNotRecording
	}
	s.state = Idle
	format := s.format
	samples := s.samples
	s.samples = nil
	s.mu.Unlock()

	devErr := s.dev.Stop()

	w, err := wave.New(format, samples)
	if err == nil {
		s.mu.Lock()
		s.captured = w
		s.mu.Unlock()
	}

	if devErr != nil {
		return fmt.Errorf("stopping device: %w", devErr)
	}

	return err
}

// Captured returns the finalized waveform of the last recording. While
// recording, and before anything has been recorded, it reports
// ErrNotAvailable.
func (s *Session) Captured() (*wave.Waveform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Recording || s.captured == nil {
		return nil, ErrNotAvailable
	}

	return s.captured, nil
}

// Close stops an in-flight recording if there is one and releases the
// device.
func (s *Session) Close() error {
	if err := s.Stop(); err != nil && err != ErrNotRecording {
		s.dev.Close()
		return err
	}

	return s.dev.Close()
}
