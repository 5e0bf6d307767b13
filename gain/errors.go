// SPDX-License-Identifier: EPL-2.0

package gain

import "errors"

var (
	ErrInvalidTarget   = errors.New("target peak must be in (0, 1]")
	ErrNormalizeFailed = errors.New("normalization failed")
)
