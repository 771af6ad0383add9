// SPDX-License-Identifier: EPL-2.0

package enginetest

import "github.com/ik5/namhost/engine"

// Blocking wraps an Engine so that Load waits until Release is closed. It
// lets tests hold a load in flight while exercising the audio side.
type Blocking struct {
	*Engine

	Started chan struct{}
	Release chan struct{}
}

func NewBlocking(e *Engine) *Blocking {
	return &Blocking{
		Engine:  e,
		Started: make(chan struct{}, 1),
		Release: make(chan struct{}),
	}
}

func (b *Blocking) Load(path string) (engine.Handle, error) {
	select {
	case b.Started <- struct{}{}:
	default:
	}
	<-b.Release
	return b.Engine.Load(path)
}
