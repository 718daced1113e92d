// Package manifest loads the optional emulib.hcl build manifest describing
// which libraries the pipeline produces: the description inputs, the
// optional single-purpose features, and the hardware-generation variants.
// When no manifest is present, built-in defaults reproduce the standard
// library set, so a bare working root builds exactly as before.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/glslemu/emulibgen/internal/artifact"
	"github.com/glslemu/emulibgen/internal/ctxlog"
)

// FileName is the manifest's fixed location inside the working root.
const FileName = "emulib.hcl"

// Arith holds the arithmetic-emulation description inputs.
type Arith struct {
	Description    string
	DescriptionF64 string
}

// Image holds the image-emulation description input.
type Image struct {
	Description string
}

// Manifest is the resolved build plan: what to generate, which optional
// features to look for, and which variants to build, in order.
type Manifest struct {
	Arith    Arith
	Image    Image
	Features []string
	Variants []string
}

// Default returns the built-in library set.
func Default() *Manifest {
	return &Manifest{
		Arith: Arith{
			Description:    "./script/genGlslArithOpEmuCode.txt",
			DescriptionF64: "./script/genGlslArithOpEmuCodeF64.txt",
		},
		Image: Image{
			Description: "./script/genGlslImageOpEmuCode.txt",
		},
		Features: []string{"NullFs", "CopyShader"},
		Variants: []string{"gfx6", "gfx9"},
	}
}

// fileRoot is the HCL schema of the manifest file.
type fileRoot struct {
	Arith    *arithBlock     `hcl:"arith,block"`
	Image    *imageBlock     `hcl:"image,block"`
	Features []*featureBlock `hcl:"feature,block"`
	Variants []*variantBlock `hcl:"variant,block"`
}

type arithBlock struct {
	Description    string `hcl:"description"`
	DescriptionF64 string `hcl:"description_f64"`
}

type imageBlock struct {
	Description string `hcl:"description"`
}

type featureBlock struct {
	Name    string         `hcl:"name,label"`
	Enabled hcl.Expression `hcl:"enabled,optional"`
}

type variantBlock struct {
	Tag     string         `hcl:"tag,label"`
	Enabled hcl.Expression `hcl:"enabled,optional"`
}

// Load reads root's manifest if one exists, or returns Default. Feature and
// variant blocks, when present, replace the default lists; their file order
// is the execution order.
func Load(ctx context.Context, root string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no build manifest found, using defaults", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("checking manifest %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, diags)
	}

	var decoded fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, fmt.Errorf("decoding manifest %s: %w", path, diags)
	}

	m := Default()
	if decoded.Arith != nil {
		m.Arith = Arith{
			Description:    decoded.Arith.Description,
			DescriptionF64: decoded.Arith.DescriptionF64,
		}
	}
	if decoded.Image != nil {
		m.Image = Image{Description: decoded.Image.Description}
	}

	if len(decoded.Features) > 0 {
		m.Features = m.Features[:0]
		for _, block := range decoded.Features {
			enabled, err := blockEnabled(block.Enabled)
			if err != nil {
				return nil, fmt.Errorf("feature %q: %w", block.Name, err)
			}
			if enabled {
				m.Features = append(m.Features, block.Name)
			}
		}
	}

	if len(decoded.Variants) > 0 {
		m.Variants = m.Variants[:0]
		for _, block := range decoded.Variants {
			if !artifact.IsVariantDir(block.Tag) {
				return nil, fmt.Errorf("variant %q: tag must start with %q or its artifacts escape the cleanup sweep", block.Tag, artifact.VariantDirPrefix)
			}
			enabled, err := blockEnabled(block.Enabled)
			if err != nil {
				return nil, fmt.Errorf("variant %q: %w", block.Tag, err)
			}
			if enabled {
				m.Variants = append(m.Variants, block.Tag)
			}
		}
	}

	logger.Debug("build manifest loaded", "path", path,
		"features", len(m.Features), "variants", len(m.Variants))
	return m, nil
}

// blockEnabled evaluates an optional enabled attribute. Absent or null
// means enabled.
func blockEnabled(expr hcl.Expression) (bool, error) {
	if expr == nil {
		return true, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return false, fmt.Errorf("evaluating enabled: %w", diags)
	}
	if val.IsNull() {
		return true, nil
	}
	if val.Type() != cty.Bool {
		return false, fmt.Errorf("enabled must be a bool, got %s", val.Type().FriendlyName())
	}
	return val.True(), nil
}
