// Package packager turns intermediate binary objects into embeddable hex
// headers: link, read, encode, write, then remove every temporary binary.
// Only the generated header survives a packaging step.
package packager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glslemu/emulibgen/internal/artifact"
	"github.com/glslemu/emulibgen/internal/ctxlog"
	"github.com/glslemu/emulibgen/internal/fsutil"
	"github.com/glslemu/emulibgen/internal/hexenc"
	"github.com/glslemu/emulibgen/internal/toolchain"
)

// Packager links objects into library binaries and embeds them as headers.
type Packager struct {
	Linker *toolchain.Linker
}

// Package links objs into libPath, writes its hex-array form to headerPath
// (overwriting any previous header), and removes every input object and the
// library binary. Any failure aborts before the header is written, so a
// partial library is never embedded.
func (p *Packager) Package(ctx context.Context, objs []string, libPath, headerPath string) error {
	logger := ctxlog.FromContext(ctx)

	if len(objs) == 0 {
		return fmt.Errorf("no binary objects to link into %s", libPath)
	}

	if err := p.Linker.Link(ctx, libPath, objs...); err != nil {
		return err
	}

	data, err := os.ReadFile(libPath)
	if err != nil {
		return fmt.Errorf("reading library binary %s: %w", libPath, err)
	}

	logger.Info("embedding library", "library", libPath, "header", headerPath, "bytes", len(data))
	if err := os.WriteFile(headerPath, []byte(hexenc.Encode(data)), 0644); err != nil {
		return fmt.Errorf("writing header %s: %w", headerPath, err)
	}

	for _, obj := range objs {
		logger.Info("removing intermediate object", "path", obj)
		if err := os.Remove(obj); err != nil {
			return fmt.Errorf("removing object %s: %w", obj, err)
		}
	}
	logger.Info("removing library binary", "path", libPath)
	if err := os.Remove(libPath); err != nil {
		return fmt.Errorf("removing library %s: %w", libPath, err)
	}
	return nil
}

// PackageSpecial packages the single-object library of one optional
// feature, searching root for its binary object. A missing object is not an
// error: the feature is simply absent from this build configuration, and
// the step reports false. The library and header names are derived from the
// feature name and land directly in root.
func (p *Packager) PackageSpecial(ctx context.Context, root, feature string) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	matches, err := fsutil.ListFiles(root, func(name string) bool {
		return artifact.IsSpecialObject(name, feature)
	})
	if err != nil {
		return false, fmt.Errorf("searching for %s object: %w", feature, err)
	}
	if len(matches) == 0 {
		logger.Info("optional feature object not found, skipping", "feature", feature)
		return false, nil
	}

	obj := filepath.Join(root, matches[len(matches)-1])
	libPath := filepath.Join(root, artifact.SpecialLibrary(feature))
	headerPath := filepath.Join(root, artifact.SpecialHeader(feature))
	if err := p.Package(ctx, []string{obj}, libPath, headerPath); err != nil {
		return false, err
	}
	return true, nil
}
