// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Processor transforms a mono block in place. *session.Session satisfies it.
type Processor interface {
	Process(block []float32)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(block []float32)

// Process calls f(block).
func (f ProcessorFunc) Process(block []float32) { f(block) }

// Effect runs a mono source through a Processor, never handing it more than
// blockSize samples at a time.
type Effect struct {
	src       Source
	proc      Processor
	blockSize int
}

// NewEffect runs the mono source src through proc in blocks of at most
// blockSize samples. blockSize must be positive.
func NewEffect(src Source, proc Processor, blockSize int) (*Effect, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	return &Effect{src: src, proc: proc, blockSize: blockSize}, nil
}

// SampleRate returns the source rate.
func (e *Effect) SampleRate() int { return e.src.SampleRate() }

// Channels is always 1.
func (e *Effect) Channels() int { return 1 }

// BufSize is the block size.
func (e *Effect) BufSize() int { return e.blockSize }

// Close closes the underlying source.
func (e *Effect) Close() error {
	err := e.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst block by block. Every block is processed as soon as
// the source returns it, so a short read yields a short block.
func (e *Effect) ReadSamples(dst []float32) (int, error) {
	off := 0
	for off < len(dst) {
		end := min(off+e.blockSize, len(dst))

		n, err := e.src.ReadSamples(dst[off:end])
		if n > 0 {
			e.proc.Process(dst[off : off+n])
			off += n
		}

		if err != nil {
			return off, err
		}
		if n == 0 {
			break
		}
	}

	return off, nil
}
