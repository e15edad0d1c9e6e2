// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 1.0, cfg.Speed)
	assert.Equal(t, time.Second, cfg.BaseDelay)
	require.NoError(t, cfg.Validate())
}

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
speed: 2.5
base_delay: 750ms
log_level: debug
algorithm: bfs
input:
  start: A
  edges: [[A, B], [A, C]]
`))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, 750*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "bfs", cfg.Algorithm)
	assert.Equal(t, "A", cfg.Input["start"])
}

func TestFromYAML_KeepsDefaults(t *testing.T) {
	cfg, err := config.FromYAML([]byte("metrics_addr: \":9090\"\n"))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, time.Second, cfg.BaseDelay)
}

func TestFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "speed: [1"},
		{"unknown key", "sped: 2"},
		{"negative speed", "speed: -1"},
		{"zero delay", "base_delay: 0s"},
		{"bad level", "log_level: loud"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.FromYAML([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
	_, err := config.FromYAML([]byte("speed: 0"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "stepviz.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("speed: 4\n"), 0o600))
	cfg, err := config.FromFile(yml)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Speed)

	js := filepath.Join(dir, "stepviz.json")
	require.NoError(t, os.WriteFile(js, []byte(`{"algorithm":"kmp"}`), 0o600))
	cfg, err = config.FromFile(js)
	require.NoError(t, err)
	assert.Equal(t, "kmp", cfg.Algorithm)

	_, err = config.FromFile(filepath.Join(dir, "stepviz.toml"))
	assert.Error(t, err)
	_, err = config.FromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
