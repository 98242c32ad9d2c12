// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrNotFound     = errors.New("no active voice with this id")
	ErrInvalidRate  = errors.New("sample rate must be positive")
	ErrOddFrameData = errors.New("stereo sample data must hold whole frames")
)
