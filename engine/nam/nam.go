// SPDX-License-Identifier: EPL-2.0

//go:build nam && cgo

package nam

/*
#cgo pkg-config: namc
#include <stdlib.h>
#include "namc.h"
*/
import "C"

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ik5/namhost/engine"
)

var fastTanhOnce sync.Once

// Engine loads NeuralAmpModelerCore models from disk.
type Engine struct{}

// New returns the native engine.
func New() Engine { return Engine{} }

// Available reports whether the native engine was compiled in.
func Available() bool { return true }

// EnableFastActivation switches the core to its tanh approximation. The
// switch is global to the process and only performed once.
func (Engine) EnableFastActivation() {
	fastTanhOnce.Do(func() {
		C.nam_enable_fast_tanh()
	})
}

// Load reads and builds the model at path. The handle is freed by Destroy
// or, failing that, by a finalizer.
func (Engine) Load(path string) (engine.Handle, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	dsp := C.nam_dsp_load(cPath)
	if dsp == nil {
		return nil, fmt.Errorf("%w: %q", ErrLoad, path)
	}

	h := &handle{dsp: dsp}
	runtime.SetFinalizer(h, (*handle).Destroy)
	return h, nil
}

type handle struct {
	dsp *C.nam_dsp
}

func (h *handle) Reset(sampleRate float64, maxBlockSize int) {
	if h.dsp == nil {
		return
	}
	C.nam_dsp_reset(h.dsp, C.double(sampleRate), C.int(maxBlockSize))
}

func (h *handle) Prewarm() {
	if h.dsp == nil {
		return
	}
	C.nam_dsp_prewarm(h.dsp)
}

func (h *handle) Process(in, out []float32) {
	if h.dsp == nil || len(out) == 0 {
		return
	}
	C.nam_dsp_process(
		h.dsp,
		(*C.float)(unsafe.Pointer(&in[0])),
		(*C.float)(unsafe.Pointer(&out[0])),
		C.int(len(out)),
	)
}

func (h *handle) ExpectedSampleRate() float64 {
	if h.dsp == nil {
		return 0
	}
	rate := float64(C.nam_dsp_expected_sample_rate(h.dsp))
	// The core reports -1 when the model file does not carry a rate.
	if rate < 0 {
		return 0
	}
	return rate
}

// Destroy is safe to call more than once.
func (h *handle) Destroy() {
	if h.dsp != nil {
		C.nam_dsp_destroy(h.dsp)
		h.dsp = nil
		runtime.SetFinalizer(h, nil)
	}
}
