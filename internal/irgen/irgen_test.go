package irgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	name    string
	args    []string
	produce bool
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	r.name = name
	r.args = args
	if r.produce {
		return os.WriteFile(args[1], []byte("ir"), 0644)
	}
	return nil
}

func TestGenerateArith(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "g_glslArithOpEmu.ll")
	runner := &recordingRunner{produce: true}
	gen := &External{Runner: runner}

	err := gen.GenerateArith(context.Background(), "./script/desc.txt", outPath, "std32")
	require.NoError(t, err)
	assert.Equal(t, "genGlslArithOpEmuCode", runner.name)
	assert.Equal(t, []string{"./script/desc.txt", outPath, "std32"}, runner.args)
}

func TestGenerateImage(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "g_glslImageOpEmu.ll")
	runner := &recordingRunner{produce: true}
	gen := &External{Runner: runner}

	err := gen.GenerateImage(context.Background(), "./script/desc.txt", outPath, "gfx9")
	require.NoError(t, err)
	assert.Equal(t, "genGlslImageOpEmuCode", runner.name)
	assert.Equal(t, []string{"./script/desc.txt", outPath, "gfx9"}, runner.args)
}

func TestGenerateMissingOutputIsFatal(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "g_glslArithOpEmu.ll")
	gen := &External{Runner: &recordingRunner{produce: false}}

	err := gen.GenerateArith(context.Background(), "./script/desc.txt", outPath, "std32")
	assert.ErrorContains(t, err, "missing")
}
