// Package testutil provides a harness for exercising the build pipeline
// over temporary working roots with a deterministic fake toolchain.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glslemu/emulibgen/internal/ctxlog"
	"github.com/glslemu/emulibgen/internal/irgen"
	"github.com/glslemu/emulibgen/internal/manifest"
	"github.com/glslemu/emulibgen/internal/packager"
	"github.com/glslemu/emulibgen/internal/pipeline"
	"github.com/glslemu/emulibgen/internal/toolchain"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Harness wires a pipeline over a temporary working root seeded with
// fixture files. The same harness can run the pipeline repeatedly against
// the same root, which the idempotence tests need.
type Harness struct {
	T      *testing.T
	Root   string
	Runner *FakeRunner
	Log    *SafeBuffer
}

// NewHarness creates a temporary working root and writes every fixture
// file into it. Fixture keys are root-relative paths; intermediate
// directories are created as needed.
func NewHarness(t *testing.T, files map[string]string) *Harness {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return &Harness{
		T:      t,
		Root:   root,
		Runner: &FakeRunner{},
		Log:    &SafeBuffer{},
	}
}

// Run executes one full pipeline pass and returns its error.
func (h *Harness) Run() error {
	h.T.Helper()

	logger := slog.New(slog.NewTextHandler(h.Log, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	m, err := manifest.Load(ctx, h.Root)
	require.NoError(h.T, err)

	p := &pipeline.Pipeline{
		Root:      h.Root,
		Manifest:  m,
		Generator: &irgen.External{Runner: h.Runner},
		Assembler: &toolchain.Assembler{Runner: h.Runner},
		Packager:  &packager.Packager{Linker: &toolchain.Linker{Runner: h.Runner}},
	}
	return p.Run(ctx)
}

// ReadFile returns the contents of a root-relative file.
func (h *Harness) ReadFile(name string) []byte {
	h.T.Helper()
	data, err := os.ReadFile(filepath.Join(h.Root, name))
	require.NoError(h.T, err)
	return data
}

// Exists reports whether a root-relative file exists.
func (h *Harness) Exists(name string) bool {
	h.T.Helper()
	_, err := os.Stat(filepath.Join(h.Root, name))
	if err == nil {
		return true
	}
	require.True(h.T, os.IsNotExist(err))
	return false
}
