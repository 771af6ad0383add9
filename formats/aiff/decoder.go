// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/namhost/audio"
	"github.com/ik5/namhost/formats/internal/intpcm"
)

// Decoder reads AIFF files with 8, 16, 24 or 32 bit samples. Inputs that
// cannot seek are buffered in memory first.
type Decoder struct{}

// Decode validates the header of r and returns a source over its samples.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	src, err := intpcm.New(dec, dec.Format(), int(dec.BitDepth), false)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}
	return src, nil
}
