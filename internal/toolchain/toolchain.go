// Package toolchain wraps the external assembler and linker binaries behind
// a small process-invocation capability, so the pipeline's sequencing logic
// can be exercised with a fake implementation instead of a real toolchain.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/glslemu/emulibgen/internal/artifact"
	"github.com/glslemu/emulibgen/internal/ctxlog"
)

// Tool executable names, resolved relative to the install directories given
// on the command line.
const (
	assemblerTool = "llvm-as"
	linkerTool    = "llvm-link"
)

// Runner invokes one external process and waits for it to finish. A non-nil
// error means the process failed to start or exited abnormally.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs external processes with os/exec. With Shell set, the
// command line is joined into a single string and handed to the shell;
// otherwise the process is exec'd directly with an argument vector. The
// choice is made once, from the platform tag, never at call sites.
type ExecRunner struct {
	Shell  bool
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := r.command(ctx, name, args)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	ctxlog.FromContext(ctx).Info("running external tool", "command", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

func (r *ExecRunner) command(ctx context.Context, name string, args []string) *exec.Cmd {
	if r.Shell {
		line := strings.Join(append([]string{name}, args...), " ")
		return exec.CommandContext(ctx, "sh", "-c", line)
	}
	return exec.CommandContext(ctx, name, args...)
}

// VerifyOutput guards against tools that exit zero without producing their
// output file. A missing or empty output is treated the same as a failed
// invocation.
func VerifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("expected output %s missing: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("expected output %s is empty", path)
	}
	return nil
}

// Assembler turns one textual IR file into an intermediate binary object in
// the same directory.
type Assembler struct {
	Dir    string // install directory containing the assembler executable
	Runner Runner
}

// Assemble runs the assembler over irPath and verifies the object file it
// is contracted to produce.
func (a *Assembler) Assemble(ctx context.Context, irPath string) error {
	if err := a.Runner.Run(ctx, joinTool(a.Dir, assemblerTool), irPath); err != nil {
		return fmt.Errorf("assembling %s: %w", irPath, err)
	}
	if err := VerifyOutput(artifact.ObjectForIR(irPath)); err != nil {
		return fmt.Errorf("assembling %s: %w", irPath, err)
	}
	return nil
}

// Linker combines intermediate binary objects into one library binary.
type Linker struct {
	Dir    string // install directory containing the linker executable
	Runner Runner
}

// Link links objPaths into libPath and verifies the result.
func (l *Linker) Link(ctx context.Context, libPath string, objPaths ...string) error {
	args := append([]string{"-o=" + libPath}, objPaths...)
	if err := l.Runner.Run(ctx, joinTool(l.Dir, linkerTool), args...); err != nil {
		return fmt.Errorf("linking %s: %w", libPath, err)
	}
	if err := VerifyOutput(libPath); err != nil {
		return fmt.Errorf("linking %s: %w", libPath, err)
	}
	return nil
}

// joinTool resolves a tool name against its install directory. An empty
// directory leaves resolution to the runner (used by tests and tools on
// PATH).
func joinTool(dir, tool string) string {
	if dir == "" {
		return tool
	}
	return strings.TrimSuffix(dir, "/") + "/" + tool
}
