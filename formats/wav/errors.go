// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/namhost/utils"
)

var (
	ErrNotWavFile = errors.New("not a WAV file")
	ErrNotPCM     = errors.New("WAV data is not integer PCM")
	ErrNoPCMData  = errors.New("WAV file has no data chunk")

	// ErrUnsupportedBitDepth is utils.ErrUnsupportedBitDepth, so either can
	// be matched with errors.Is.
	ErrUnsupportedBitDepth = utils.ErrUnsupportedBitDepth
)
