package app

import (
	"context"
	"fmt"

	"github.com/glslemu/emulibgen/internal/ctxlog"
	"github.com/glslemu/emulibgen/internal/irgen"
	"github.com/glslemu/emulibgen/internal/manifest"
	"github.com/glslemu/emulibgen/internal/packager"
	"github.com/glslemu/emulibgen/internal/pipeline"
	"github.com/glslemu/emulibgen/internal/toolchain"
)

// PlatformWindows selects direct argument-vector invocation of the external
// toolchain; every other platform tag routes commands through the shell.
const PlatformWindows = "win"

// shellInvocation reports whether toolchain commands for the given platform
// tag are interpreted by the shell. Only "win" execs tools directly.
func shellInvocation(platform string) bool {
	return platform != PlatformWindows
}

// Run executes one full build based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config
	a.logger.Info("emulation library build starting",
		"root", cfg.Root, "platform", cfg.Platform)

	m, err := manifest.Load(ctx, cfg.Root)
	if err != nil {
		return fmt.Errorf("loading build manifest: %w", err)
	}

	runner := &toolchain.ExecRunner{
		Shell:  shellInvocation(cfg.Platform),
		Stdout: a.outW,
		Stderr: a.outW,
	}

	p := &pipeline.Pipeline{
		Root:      cfg.Root,
		Manifest:  m,
		Generator: &irgen.External{Runner: runner},
		Assembler: &toolchain.Assembler{Dir: cfg.AssemblerDir, Runner: runner},
		Packager: &packager.Packager{
			Linker: &toolchain.Linker{Dir: cfg.LinkerDir, Runner: runner},
		},
	}

	if err := p.Run(ctx); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	a.logger.Info("emulation library build finished")
	return nil
}
