// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"

	"github.com/ik5/sndprint/wave"
)

// MockDevice is a capture.Device for tests. Chunks are pushed by hand via
// Push instead of arriving from hardware, and every lifecycle call is
// counted so tests can assert on resource discipline.
type MockDevice struct {
	// StartErr, when set, makes Start fail without starting.
	StartErr error
	// StopErr, when set, is returned by Stop (after the stop is recorded).
	StopErr error

	mu      sync.Mutex
	onData  func(chunk []float32)
	started bool

	Starts int
	Stops  int
	Closes int
}

func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (d *MockDevice) Start(format wave.Format, onData func(chunk []float32)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.StartErr != nil {
		return d.StartErr
	}

	d.Starts++
	d.started = true
	d.onData = onData
	return nil
}

func (d *MockDevice) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Stops++
	d.started = false
	d.onData = nil
	return d.StopErr
}

func (d *MockDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Closes++
	return nil
}

// Started reports whether the device is currently delivering chunks.
func (d *MockDevice) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.started
}

// Push delivers a chunk through the data callback, as the device driver
// goroutine would. Pushing while stopped is a no-op.
func (d *MockDevice) Push(chunk []float32) {
	d.mu.Lock()
	onData := d.onData
	d.mu.Unlock()

	if onData != nil {
		onData(chunk)
	}
}
