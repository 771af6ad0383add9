// SPDX-License-Identifier: EPL-2.0

package session

// Observer receives lifecycle events from a Session. Methods are called
// synchronously, so implementations must be cheap and must not call back
// into the session. BufferResized can fire from Process; everything else
// comes from the control path.
//
// ModelLoadFailed may be called from a goroutine other than the one running
// Process when the session is wrapped in Shared.
type Observer interface {
	ModelLoaded(path string, sampleRate float64)
	ModelLoadFailed(path string, err error)
	ModelDestroyed(path string)
	BufferResized(from, to int)
}

// NopObserver ignores every event.
type NopObserver struct{}

// ModelLoaded does nothing.
func (NopObserver) ModelLoaded(string, float64) {}

// ModelLoadFailed does nothing.
func (NopObserver) ModelLoadFailed(string, error) {}

// ModelDestroyed does nothing.
func (NopObserver) ModelDestroyed(string) {}

// BufferResized does nothing.
func (NopObserver) BufferResized(int, int) {}
