// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz"
	"github.com/katalvlaran/stepviz/catalog"
)

// execute runs the root command with args after restoring every flag to
// its default, since the command tree is shared across tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stepviz version "+stepviz.Version+"\n", out)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range catalog.Names() {
		assert.Contains(t, out, name)
	}
}

func TestGenerate_JSON(t *testing.T) {
	out, err := execute(t, "generate", "selection-sort", "--params", "{values: [3, 1, 2]}", "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	var doc struct {
		Algorithm string `json:"algorithm"`
		Length    int    `json:"length"`
		Steps     []struct {
			Kind     string `json:"kind"`
			Terminal bool   `json:"terminal"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "selection-sort", doc.Algorithm)
	require.Len(t, doc.Steps, doc.Length)
	assert.True(t, doc.Steps[doc.Length-1].Terminal)
}

func TestGenerate_YAMLFromConfigAndParamsFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "stepviz.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("algorithm: kmp\nlog_level: warn\ninput:\n  text: abab\n  pattern: ab\n"), 0o600))

	out, err := execute(t, "generate", "--config", cfg)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "kmp", doc["algorithm"])

	params := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(params, []byte("text: aaaa\npattern: aa\n"), 0o600))
	out, err = execute(t, "generate", "--config", cfg, "--params", "@"+params)
	require.NoError(t, err)
	assert.Contains(t, out, "aaaa")
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no algorithm", []string{"generate"}},
		{"unknown algorithm", []string{"generate", "quick-sort"}},
		{"bad format", []string{"generate", "stack", "--format", "xml"}},
		{"bad params", []string{"generate", "kmp", "--params", "{txt: a}"}},
		{"missing params file", []string{"generate", "kmp", "--params", "@/nonexistent/params.yaml"}},
		{"bad log level", []string{"generate", "kmp", "--log-level", "loud"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}
