// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrConversionFailed    = errors.New("conversion failed")
	ErrUnsupportedChannels = errors.New("only down-mix to mono is supported")
)
