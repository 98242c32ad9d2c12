// SPDX-License-Identifier: EPL-2.0

package soundmix

import "errors"

var (
	ErrUnknownFormat = errors.New("no decoder registered for this file extension")
)
