// SPDX-License-Identifier: EPL-2.0

package session

import "github.com/rs/zerolog"

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithObserver sets the lifecycle observer. nil restores the default.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o == nil {
			o = NopObserver{}
		}
		s.observer = o
	}
}

// WithPrewarmOnGrowth makes buffer growth prewarm the model after resetting
// it.
func WithPrewarmOnGrowth(enabled bool) Option {
	return func(s *Session) {
		s.prewarmOnGrowth = enabled
	}
}
