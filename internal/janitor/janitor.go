// Package janitor removes stale generated artifacts so every build starts
// from a clean slate. Identity is structural: anything matching the
// artifact naming convention goes, nothing else is touched.
package janitor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glslemu/emulibgen/internal/artifact"
	"github.com/glslemu/emulibgen/internal/ctxlog"
	"github.com/glslemu/emulibgen/internal/fsutil"
)

// Clean removes every generated artifact directly inside root, then repeats
// the sweep one level down inside each hardware-generation subdirectory. It
// never descends further. A removal failure is fatal: the pipeline must not
// proceed over a directory that could mix old and new artifacts.
func Clean(ctx context.Context, root string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("removing stale generated artifacts", "root", root)

	if err := cleanDir(ctx, root); err != nil {
		return err
	}

	variantDirs, err := fsutil.ListDirs(root, artifact.IsVariantDir)
	if err != nil {
		return err
	}
	for _, name := range variantDirs {
		if err := cleanDir(ctx, filepath.Join(root, name)); err != nil {
			return err
		}
	}
	return nil
}

// cleanDir sweeps a single directory without descending into it.
func cleanDir(ctx context.Context, dir string) error {
	stale, err := fsutil.ListFiles(dir, artifact.IsGenerated)
	if err != nil {
		return err
	}
	for _, name := range stale {
		if err := remove(ctx, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func remove(ctx context.Context, path string) error {
	ctxlog.FromContext(ctx).Info("removing stale artifact", "path", path)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing stale artifact %s: %w", path, err)
	}
	return nil
}
