// SPDX-License-Identifier: EPL-2.0

//go:build !nam || !cgo

package nam

import (
	"errors"
	"testing"

	"github.com/ik5/namhost/engine"
)

var (
	_ engine.Engine        = Engine{}
	_ engine.FastActivator = Engine{}
)

func TestStub_LoadFails(t *testing.T) {
	t.Parallel()

	if Available() {
		t.Fatal("Available() = true in a build without the nam tag")
	}

	h, err := New().Load("model.nam")
	if h != nil {
		t.Errorf("Load() handle = %v, want nil", h)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Load() error = %v, want ErrUnavailable", err)
	}
}

func TestStub_EnableFastActivation(t *testing.T) {
	t.Parallel()

	// must not panic, repeatedly
	New().EnableFastActivation()
	New().EnableFastActivation()
}
