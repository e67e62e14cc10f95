// SPDX-License-Identifier: EPL-2.0

package format

import "errors"

var (
	ErrInvalidLayout       = errors.New("invalid channel layout")
	ErrInvalidChannelCount = errors.New("channel count must be between 1 and 64")
)
