// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	// ErrInvalidPath is returned for paths the engine cannot receive, such as
	// empty strings or strings with embedded NUL bytes.
	ErrInvalidPath = errors.New("invalid model path")

	// ErrModelLoadFailed is returned when the engine rejects a model file.
	ErrModelLoadFailed = errors.New("model load failed")

	errNoHandle = errors.New("engine returned no model")
)
