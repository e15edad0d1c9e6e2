// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/catalog"
)

// addRequestFlags registers the flags shared by generate and play.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("params", "", "algorithm params as inline YAML, or @file")
}

// buildTrace resolves the algorithm and params from args, flags and config,
// then records the run.
func buildTrace(ctx context.Context, cmd *cobra.Command, args []string) (catalog.Trace, error) {
	req := catalog.Request{Algorithm: app.cfg.Algorithm, Params: app.cfg.Input}
	if len(args) > 0 {
		req.Algorithm = args[0]
		req.Params = nil
	}
	if req.Algorithm == "" {
		return nil, fmt.Errorf("no algorithm given; see 'stepviz list'")
	}

	raw, _ := cmd.Flags().GetString("params")
	if raw != "" {
		params, err := parseParams(raw)
		if err != nil {
			return nil, err
		}
		req.Params = params
	}

	trace, err := catalog.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	app.log.Debug("run recorded", "algorithm", trace.Name(), "steps", trace.Len())
	return trace, nil
}

// parseParams reads inline YAML, or a YAML file when raw starts with @.
func parseParams(raw string) (map[string]any, error) {
	data := []byte(raw)
	if path, ok := strings.CutPrefix(raw, "@"); ok {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read params: %w", err)
		}
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse params: %w", err)
	}
	return m, nil
}
