// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
	ErrNotAvailable     = errors.New("captured audio not available")
)
