// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/namhost/internal/enginetest"
	"github.com/ik5/namhost/session"
)

func TestNew_RegistersEverything(t *testing.T) {
	t.Parallel()

	m := New()

	n, err := testutil.GatherAndCount(m.Registry())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestObserver_Events(t *testing.T) {
	t.Parallel()

	m := New()

	m.ModelLoaded("a.nam", 48000)
	m.ModelLoadFailed("b.nam", errors.New("corrupt"))
	m.BufferResized(512, 1024)
	m.BufferResized(1024, 256)
	m.ModelDestroyed("a.nam")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelLoadsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelLoadFailuresTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelsDestroyedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BufferGrowthsTotal), "shrinking is not growth")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ModelsLive))
	assert.Equal(t, 256.0, testutil.ToFloat64(m.MaxBufferSize))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ExpectedSampleRate), "no model left")
}

func TestObserver_WiredToSession(t *testing.T) {
	t.Parallel()

	e := enginetest.New().
		AddModel("clean.nam", enginetest.Model{Gain: 1, SampleRate: 48000}).
		AddModel("crunch.nam", enginetest.Model{Gain: 1, SampleRate: 44100})

	m := New()
	s := session.New(e, 64, session.WithObserver(m))
	m.Watch(s)
	assert.Equal(t, 64.0, testutil.ToFloat64(m.MaxBufferSize))

	require.NoError(t, s.Load("clean.nam"))
	require.NoError(t, s.Load("crunch.nam"))
	require.Error(t, s.Load("missing.nam"))

	s.Process(make([]float32, 256))
	assert.Equal(t, 44100.0, testutil.ToFloat64(m.ExpectedSampleRate), "replacement keeps the new rate")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelsLive))

	require.NoError(t, s.Close())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ModelLoadsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelLoadFailuresTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ModelsDestroyedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BufferGrowthsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ModelsLive))
	assert.Equal(t, 256.0, testutil.ToFloat64(m.MaxBufferSize))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ExpectedSampleRate))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ModelLoaded("a.nam", 48000)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "namhost_model_loads_total 1"))
	assert.True(t, strings.Contains(string(body), "namhost_expected_sample_rate_hz 48000"))
}
