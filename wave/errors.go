// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrInvalidFormat        = errors.New("format fields must be positive")
	ErrInvalidPayload       = errors.New("payload length must be multiple of frame size")
	ErrNoInput              = errors.New("no input waveform")
	ErrTooLarge             = errors.New("sample count too large to buffer")
	ErrNotWAV               = errors.New("not a WAV buffer")
	ErrUnsupportedBitDepth  = errors.New("unsupported bit depth")
)
