// Package irgen invokes the external IR generator components. The pipeline
// knows nothing about how IR text is produced; it only holds the generators
// to their file-name contract: each call takes a description file, an output
// path, and a mode or variant tag, and leaves one IR text file behind.
package irgen

import (
	"context"
	"fmt"

	"github.com/glslemu/emulibgen/internal/toolchain"
)

// Generator produces textual IR from emulation-code descriptions.
type Generator interface {
	// GenerateArith emits arithmetic-emulation IR for the given mode
	// ("std32" or "float64").
	GenerateArith(ctx context.Context, descPath, outPath, mode string) error
	// GenerateImage emits image-emulation IR for one hardware-generation
	// variant tag.
	GenerateImage(ctx context.Context, descPath, outPath, variant string) error
}

// Generator executable names.
const (
	arithTool = "genGlslArithOpEmuCode"
	imageTool = "genGlslImageOpEmuCode"
)

// External runs the generator executables through the shared process
// runner. Both take (description, output, tag) in that order.
type External struct {
	Runner toolchain.Runner
}

// GenerateArith implements Generator.
func (g *External) GenerateArith(ctx context.Context, descPath, outPath, mode string) error {
	return g.generate(ctx, arithTool, descPath, outPath, mode)
}

// GenerateImage implements Generator.
func (g *External) GenerateImage(ctx context.Context, descPath, outPath, variant string) error {
	return g.generate(ctx, imageTool, descPath, outPath, variant)
}

func (g *External) generate(ctx context.Context, tool, descPath, outPath, tag string) error {
	if err := g.Runner.Run(ctx, tool, descPath, outPath, tag); err != nil {
		return fmt.Errorf("generating IR from %s: %w", descPath, err)
	}
	if err := toolchain.VerifyOutput(outPath); err != nil {
		return fmt.Errorf("generating IR from %s: %w", descPath, err)
	}
	return nil
}
