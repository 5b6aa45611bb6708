package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclFile mirrors Config for decoding. Absent attributes stay nil and leave
// the current value untouched.
type hclFile struct {
	Width       *int     `hcl:"width,optional"`
	Height      *int     `hcl:"height,optional"`
	CellSize    *int     `hcl:"cell_size,optional"`
	MinCellSize *int     `hcl:"cell_min,optional"`
	MaxCellSize *int     `hcl:"cell_max,optional"`
	Speed       *float64 `hcl:"speed,optional"`
	FrameTPS    *int     `hcl:"fps,optional"`
	Random      *bool    `hcl:"random,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	LogLevel    *string  `hcl:"log_level,optional"`
}

// LoadFile applies the settings in an HCL file on top of c. Expressions may
// read the process environment through env, e.g. cell_size = env.LIFE_CELL.
func (c *Config) LoadFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return c.decodeHCL(src, path, environ())
}

func (c *Config) decodeHCL(src []byte, filename string, env map[string]string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &raw)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	setInt(&c.Width, raw.Width)
	setInt(&c.Height, raw.Height)
	setInt(&c.CellSize, raw.CellSize)
	setInt(&c.MinCellSize, raw.MinCellSize)
	setInt(&c.MaxCellSize, raw.MaxCellSize)
	setInt(&c.FrameTPS, raw.FrameTPS)
	if raw.Speed != nil {
		c.Speed = *raw.Speed
	}
	if raw.Random != nil {
		c.Random = *raw.Random
	}
	if raw.Seed != nil {
		c.Seed = *raw.Seed
	}
	if raw.LogLevel != nil {
		c.LogLevel = *raw.LogLevel
	}
	return nil
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

func environ() map[string]string {
	out := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
