package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner captures invocations and optionally simulates tool output.
type recordingRunner struct {
	name    string
	args    []string
	err     error
	produce func() error
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	r.name = name
	r.args = args
	if r.err != nil {
		return r.err
	}
	if r.produce != nil {
		return r.produce()
	}
	return nil
}

func TestExecRunnerCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("direct invocation", func(t *testing.T) {
		r := &ExecRunner{Shell: false}
		cmd := r.command(ctx, "tools/llvm-as", []string{"foo.ll"})
		assert.Equal(t, []string{"tools/llvm-as", "foo.ll"}, cmd.Args)
	})

	t.Run("shell invocation", func(t *testing.T) {
		r := &ExecRunner{Shell: true}
		cmd := r.command(ctx, "tools/llvm-link", []string{"-o=out.lib", "a.bc", "b.bc"})
		assert.Equal(t, []string{"sh", "-c", "tools/llvm-link -o=out.lib a.bc b.bc"}, cmd.Args)
	})
}

func TestVerifyOutput(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, VerifyOutput(filepath.Join(dir, "nope.bc")))
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.bc")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		assert.Error(t, VerifyOutput(path))
	})

	t.Run("non-empty file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.bc")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		assert.NoError(t, VerifyOutput(path))
	})
}

func TestAssemble(t *testing.T) {
	dir := t.TempDir()
	irPath := filepath.Join(dir, "g_glslArithOpEmu.ll")
	objPath := filepath.Join(dir, "g_glslArithOpEmu.bc")
	require.NoError(t, os.WriteFile(irPath, []byte("ir"), 0644))

	t.Run("success", func(t *testing.T) {
		runner := &recordingRunner{produce: func() error {
			return os.WriteFile(objPath, []byte("obj"), 0644)
		}}
		asm := &Assembler{Dir: "/opt/llvm/bin", Runner: runner}

		require.NoError(t, asm.Assemble(context.Background(), irPath))
		assert.Equal(t, "/opt/llvm/bin/llvm-as", runner.name)
		assert.Equal(t, []string{irPath}, runner.args)
	})

	t.Run("runner failure propagates", func(t *testing.T) {
		runner := &recordingRunner{err: errors.New("exit status 1")}
		asm := &Assembler{Runner: runner}
		assert.ErrorContains(t, asm.Assemble(context.Background(), irPath), "exit status 1")
	})

	t.Run("clean exit without output is fatal", func(t *testing.T) {
		require.NoError(t, os.Remove(objPath))
		asm := &Assembler{Runner: &recordingRunner{}}
		assert.ErrorContains(t, asm.Assemble(context.Background(), irPath), "missing")
	})
}

func TestLink(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "glslEmu.lib")

	t.Run("success", func(t *testing.T) {
		runner := &recordingRunner{produce: func() error {
			return os.WriteFile(libPath, []byte("lib"), 0644)
		}}
		linker := &Linker{Dir: "/opt/llvm/bin/", Runner: runner}

		require.NoError(t, linker.Link(context.Background(), libPath, "a.bc", "b.bc"))
		assert.Equal(t, "/opt/llvm/bin/llvm-link", runner.name)
		assert.Equal(t, []string{"-o=" + libPath, "a.bc", "b.bc"}, runner.args)
	})

	t.Run("clean exit without output is fatal", func(t *testing.T) {
		require.NoError(t, os.Remove(libPath))
		linker := &Linker{Runner: &recordingRunner{}}
		assert.ErrorContains(t, linker.Link(context.Background(), libPath, "a.bc"), "missing")
	})
}
