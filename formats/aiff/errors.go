// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"

	"github.com/ik5/namhost/utils"
)

var (
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth is utils.ErrUnsupportedBitDepth.
	ErrUnsupportedBitDepth = utils.ErrUnsupportedBitDepth
)
