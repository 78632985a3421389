// Package config loads the optional xcodesort HCL configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tjun/xcodesort/internal/manifest"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".xcodesort.hcl"

// Config holds settings that can also be given as CLI flags.
type Config struct {
	ManifestName string
	DryRun       bool
	Stdout       bool
}

// fileConfig mirrors the attributes accepted in the config file.
type fileConfig struct {
	ManifestName *string `hcl:"manifest_name,optional"`
	DryRun       *bool   `hcl:"dry_run,optional"`
	Stdout       *bool   `hcl:"stdout,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{ManifestName: manifest.DefaultName}
}

// Parse parses HCL config content. filename is used for context in diagnostics.
// Unknown attributes are reported as errors.
func Parse(content []byte, filename string) (*Config, hcl.Diagnostics) {
	file, diags := hclparse.NewParser().ParseHCL(content, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var fc fileConfig
	diags = append(diags, gohcl.DecodeBody(file.Body, evalContext(os.Environ()), &fc)...)
	if diags.HasErrors() {
		return nil, diags
	}

	cfg := Default()
	if fc.ManifestName != nil && *fc.ManifestName != "" {
		cfg.ManifestName = *fc.ManifestName
	}
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Stdout != nil {
		cfg.Stdout = *fc.Stdout
	}
	return cfg, diags
}

// Load reads and parses the config file at path. A missing file yields the
// default configuration.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg, diags := Parse(content, path)
	if diags.HasErrors() {
		return nil, diags
	}
	return cfg, nil
}

// evalContext exposes the process environment as the `env` object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
