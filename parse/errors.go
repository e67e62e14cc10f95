// SPDX-License-Identifier: EPL-2.0

package parse

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported media type")
	ErrMissingAttribute  = errors.New("missing capability attribute")
	ErrConfigNotReady    = errors.New("configuration has no valid frame geometry")
	ErrInvalidRate       = errors.New("sample rate must be positive")
	ErrUnsupportedUnit   = errors.New("unsupported position unit")
)
