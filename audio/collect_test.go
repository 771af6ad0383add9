// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/namhost/internal/audiotest"
)

type failingSource struct {
	*audiotest.MockSource
	err error
}

func (f failingSource) ReadSamples(dst []float32) (int, error) {
	return 0, f.err
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	got, err := ReadAll(audiotest.NewConstantSource(8000, 2, 300, 0.1), 64)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 600 {
		t.Errorf("ReadAll() returned %d samples, want 600", len(got))
	}
}

func TestReadAll_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ReadAll(audiotest.NewSilentSource(8000, 1, 10), 0); !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("ReadAll(size=0) error = %v, want ErrInvalidBlockSize", err)
	}

	boom := errors.New("boom")
	src := failingSource{audiotest.NewSilentSource(8000, 1, 10), boom}
	if _, err := ReadAll(src, 16); !errors.Is(err, boom) {
		t.Errorf("ReadAll(failing) error = %v, want %v", err, boom)
	}
}
