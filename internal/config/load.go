package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/brewdoc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Load parses and validates one HCL job file. Expressions in the file can
// reference process environment variables as `env.NAME`.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading job file", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", path, diags)
	}

	var model Model
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &model); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w", path, diags)
	}

	model.applyDefaults()
	if err := model.validate(); err != nil {
		return nil, err
	}
	logger.Debug("job file loaded", "jobs", len(model.Jobs), "log_level", model.LogLevel)
	return &model, nil
}

// evalContext exposes the process environment as an `env` object.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
