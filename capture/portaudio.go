// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/sndprint/wave"
)

// DefaultChunkFrames is the number of frames read from the device per
// callback invocation.
const DefaultChunkFrames = 1024

// PortAudioDevice captures from the default input device via PortAudio.
// It implements Device. Call Close when finished to release PortAudio.
type PortAudioDevice struct {
	chunkFrames int

	stream  *portaudio.Stream
	buf     []float32
	done    chan struct{}
	stopped chan struct{}
}

// NewPortAudioDevice initializes PortAudio. chunkFrames <= 0 selects
// DefaultChunkFrames.
func NewPortAudioDevice(chunkFrames int) (*PortAudioDevice, error) {
	if chunkFrames <= 0 {
		chunkFrames = DefaultChunkFrames
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	return &PortAudioDevice{chunkFrames: chunkFrames}, nil
}

// Start opens the default input stream in the given format and begins
// delivering chunks to onData from a reader goroutine. On any failure the
// stream is closed before returning, leaving nothing half-open.
func (d *PortAudioDevice) Start(format wave.Format, onData func(chunk []float32)) error {
	if d.stream != nil {
		return ErrAlreadyRecording
	}

	buf := make([]float32, d.chunkFrames*format.Channels)
	stream, err := portaudio.OpenDefaultStream(format.Channels, 0, float64(format.SampleRate), d.chunkFrames, buf)
	if err != nil {
		return fmt.Errorf("open mic: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("start mic: %w", err)
	}

	d.stream = stream
	d.buf = buf
	d.done = make(chan struct{})
	d.stopped = make(chan struct{})

	go d.read(onData)

	return nil
}

func (d *PortAudioDevice) read(onData func(chunk []float32)) {
	defer close(d.stopped)

	for {
		select {
		case <-d.done:
			return
		default:
		}

		if err := d.stream.Read(); err != nil {
			return
		}

		// The stream refills d.buf on the next Read; hand out a copy.
		chunk := make([]float32, len(d.buf))
		copy(chunk, d.buf)
		onData(chunk)
	}
}

// Stop ends the reader goroutine and closes the stream. Safe to call when
// not started.
func (d *PortAudioDevice) Stop() error {
	if d.stream == nil {
		return nil
	}

	close(d.done)
	<-d.stopped

	err := d.stream.Stop()
	cerr := d.stream.Close()
	d.stream = nil
	d.buf = nil

	if err != nil {
		return fmt.Errorf("stop mic: %w", err)
	}
	if cerr != nil {
		return fmt.Errorf("close mic: %w", cerr)
	}

	return nil
}

// Close stops any running stream and terminates PortAudio.
func (d *PortAudioDevice) Close() error {
	stopErr := d.Stop()

	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("portaudio terminate: %w", err)
	}

	return stopErr
}
