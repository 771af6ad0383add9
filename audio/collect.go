// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src, bufferSize samples at a time, and returns everything
// it produced. Reaching io.EOF is not an error.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, bufferSize)
	}

	var out []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// a source that stalls without EOF is treated as finished
			return out, nil
		}
	}
}
