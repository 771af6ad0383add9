// SPDX-License-Identifier: EPL-2.0

package nam

import "errors"

var (
	ErrUnavailable = errors.New("nam: engine not compiled in (build with -tags nam)")
	ErrLoad        = errors.New("nam: unable to load model")
)
