// SPDX-License-Identifier: EPL-2.0

package utils

import "errors"

var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
