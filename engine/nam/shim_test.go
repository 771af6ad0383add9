// SPDX-License-Identifier: EPL-2.0

package nam

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The cgo binding only builds with -tags nam, so check its C surface
// against the shim sources it links.
func TestShim_DeclaresEveryBoundFunction(t *testing.T) {
	t.Parallel()

	binding, err := os.ReadFile("nam.go")
	require.NoError(t, err)
	header, err := os.ReadFile(filepath.Join("namc", "namc.h"))
	require.NoError(t, err)
	impl, err := os.ReadFile(filepath.Join("namc", "namc.cpp"))
	require.NoError(t, err)

	used := map[string]bool{}
	for _, m := range regexp.MustCompile(`C\.(nam_\w+)\(`).FindAllSubmatch(binding, -1) {
		used[string(m[1])] = true
	}
	require.Len(t, used, 7)

	for name := range used {
		decl := regexp.MustCompile(`\b` + name + `\(`)
		assert.Regexp(t, decl, string(header), "namc.h does not declare %s", name)
		assert.Regexp(t, decl, string(impl), "namc.cpp does not define %s", name)
	}

	assert.Contains(t, string(binding), `#include "namc.h"`)
	assert.Contains(t, string(impl), `extern "C"`)
}
