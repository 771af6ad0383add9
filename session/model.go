// SPDX-License-Identifier: EPL-2.0

package session

import (
	"runtime"

	"github.com/ik5/namhost/engine"
)

// model owns one engine handle. close destroys it exactly once; the nil
// handle is the destroyed sentinel.
type model struct {
	handle     engine.Handle
	path       string
	sampleRate float64 // expected rate reported at load
	blockSize  int     // block size of the latest reset
}

func newModel(h engine.Handle, path string) *model {
	m := &model{
		handle:     h,
		path:       path,
		sampleRate: h.ExpectedSampleRate(),
	}
	runtime.SetFinalizer(m, (*model).close)
	return m
}

func (m *model) reset(sampleRate float64, blockSize int) {
	m.handle.Reset(sampleRate, blockSize)
	m.blockSize = blockSize
}

func (m *model) close() {
	if m.handle != nil {
		m.handle.Destroy()
		m.handle = nil
		runtime.SetFinalizer(m, nil)
	}
}
