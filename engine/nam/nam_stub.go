// SPDX-License-Identifier: EPL-2.0

//go:build !nam || !cgo

package nam

import (
	"fmt"

	"github.com/ik5/namhost/engine"
)

// Engine is the placeholder used when the native library is not compiled in.
type Engine struct{}

// New returns the placeholder engine.
func New() Engine { return Engine{} }

// Available reports false: models cannot be loaded in this build.
func Available() bool { return false }

// EnableFastActivation does nothing.
func (Engine) EnableFastActivation() {}

// Load always fails with ErrUnavailable.
func (Engine) Load(path string) (engine.Handle, error) {
	return nil, fmt.Errorf("%w: %q", ErrUnavailable, path)
}
