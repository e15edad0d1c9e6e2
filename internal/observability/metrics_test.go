// SPDX-License-Identifier: MIT

package observability_test

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/internal/observability"
	"github.com/katalvlaran/stepviz/kmp"
	"github.com/katalvlaran/stepviz/player"
)

func TestMetrics_FromController(t *testing.T) {
	m := observability.New()
	clock := player.NewManualClock()
	c, err := player.New(player.WithClock(clock), player.WithMetrics(m), player.WithBaseDelay(time.Millisecond))
	require.NoError(t, err)
	defer c.Close()

	run, err := kmp.Search("aaaa", "aa")
	require.NoError(t, err)
	_, err = c.Load(run)
	require.NoError(t, err)

	c.Play()
	c.Seek(1)
	clock.Advance(time.Duration(run.Len()) * time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "stepviz_runs_loaded_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "stepviz_rejected_operations_total"))

	want := `
# HELP stepviz_run_steps Length of the most recently loaded run.
# TYPE stepviz_run_steps gauge
stepviz_run_steps{algorithm="kmp"} ` + strconv.Itoa(run.Len()) + `
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(want), "stepviz_run_steps"))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.New()
	m.Rejected("seek")
	m.Transition(player.StateIdle, player.StatePlaying)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `stepviz_rejected_operations_total{op="seek"} 1`)
	assert.Contains(t, body, `stepviz_state_transitions_total{from="idle",to="playing"} 1`)
}
