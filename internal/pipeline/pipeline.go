// Package pipeline sequences the emulation library build. One run is a
// fixed, strictly sequential pass: clean the working tree, build the common
// library stage, then build each hardware-generation variant in manifest
// order. The first fatal error aborts the whole run; partial or stale
// generated headers are worse than a hard build failure.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glslemu/emulibgen/internal/artifact"
	"github.com/glslemu/emulibgen/internal/ctxlog"
	"github.com/glslemu/emulibgen/internal/fsutil"
	"github.com/glslemu/emulibgen/internal/irgen"
	"github.com/glslemu/emulibgen/internal/janitor"
	"github.com/glslemu/emulibgen/internal/manifest"
	"github.com/glslemu/emulibgen/internal/packager"
	"github.com/glslemu/emulibgen/internal/toolchain"
)

// Modes of the arithmetic IR generator.
const (
	arithModeStd32   = "std32"
	arithModeFloat64 = "float64"
)

// Pipeline holds everything one build run needs. All paths are explicit;
// nothing depends on the process working directory.
type Pipeline struct {
	Root      string // absolute working root
	Manifest  *manifest.Manifest
	Generator irgen.Generator
	Assembler *toolchain.Assembler
	Packager  *packager.Packager
}

// Run executes the full build: cleanup, the common stage, then every
// variant stage.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := janitor.Clean(ctx, p.Root); err != nil {
		return err
	}
	if err := p.runCommon(ctx); err != nil {
		return err
	}
	return p.runVariants(ctx)
}

// runCommon builds the hardware-independent stage: generate both arithmetic
// IR variants, assemble every IR file in the root, package the optional
// single-purpose features, then package everything left as the aggregate
// common library.
func (p *Pipeline) runCommon(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	m := p.Manifest

	logger.Info("generating arithmetic emulation IR")
	if err := p.Generator.GenerateArith(ctx, m.Arith.Description,
		filepath.Join(p.Root, artifact.ArithIR), arithModeStd32); err != nil {
		return err
	}
	if err := p.Generator.GenerateArith(ctx, m.Arith.DescriptionF64,
		filepath.Join(p.Root, artifact.ArithIRF64), arithModeFloat64); err != nil {
		return err
	}

	logger.Info("assembling common emulation IR")
	if err := p.assembleDir(ctx, p.Root); err != nil {
		return err
	}

	for _, feature := range m.Features {
		if _, err := p.Packager.PackageSpecial(ctx, p.Root, feature); err != nil {
			return err
		}
	}

	logger.Info("packaging common emulation library")
	return p.packageDir(ctx, p.Root, artifact.CommonLibrary, artifact.CommonHeader)
}

// runVariants builds each hardware generation in manifest order. Variants
// never share files; every stage is scoped to the variant's own directory,
// which step one of Run has already swept.
func (p *Pipeline) runVariants(ctx context.Context) error {
	for _, tag := range p.Manifest.Variants {
		if err := p.runVariant(ctx, tag); err != nil {
			return fmt.Errorf("variant %s: %w", tag, err)
		}
	}
	return nil
}

func (p *Pipeline) runVariant(ctx context.Context, tag string) error {
	logger := ctxlog.FromContext(ctx)
	dir := filepath.Join(p.Root, tag)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating variant directory: %w", err)
	}

	logger.Info("generating image emulation IR", "variant", tag)
	if err := p.Generator.GenerateImage(ctx, p.Manifest.Image.Description,
		filepath.Join(dir, artifact.ImageIR), tag); err != nil {
		return err
	}

	logger.Info("assembling variant emulation IR", "variant", tag)
	if err := p.assembleDir(ctx, dir); err != nil {
		return err
	}

	logger.Info("packaging variant emulation library", "variant", tag)
	return p.packageDir(ctx, dir, artifact.VariantLibrary(tag), artifact.VariantHeader(tag))
}

// assembleDir assembles every IR file directly inside dir, in sorted order
// so runs are deterministic.
func (p *Pipeline) assembleDir(ctx context.Context, dir string) error {
	irFiles, err := fsutil.ListFiles(dir, artifact.IsIR)
	if err != nil {
		return err
	}
	for _, name := range irFiles {
		if err := p.Assembler.Assemble(ctx, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// packageDir links every binary object directly inside dir into one library
// and embeds it as libName/headerName within dir.
func (p *Pipeline) packageDir(ctx context.Context, dir, libName, headerName string) error {
	objNames, err := fsutil.ListFiles(dir, artifact.IsObject)
	if err != nil {
		return err
	}
	objs := make([]string, len(objNames))
	for i, name := range objNames {
		objs[i] = filepath.Join(dir, name)
	}
	return p.Packager.Package(ctx, objs,
		filepath.Join(dir, libName), filepath.Join(dir, headerName))
}
