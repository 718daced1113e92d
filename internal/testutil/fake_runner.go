package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/glslemu/emulibgen/internal/artifact"
)

// FakeRunner is a deterministic stand-in for the external toolchain. It
// recognizes the assembler, linker, and generator command contracts and
// simulates their file outputs so pipeline sequencing can be tested without
// real binaries. Outputs are pure functions of the inputs, which is what
// the idempotence tests rely on.
type FakeRunner struct {
	mu    sync.Mutex
	calls []string

	// FailOn, when set, is consulted before any simulated work; returning a
	// non-nil error makes the invocation fail like a crashed tool.
	FailOn func(name string, args []string) error
}

// Calls returns every command line the runner has seen, in order.
func (r *FakeRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Run implements toolchain.Runner.
func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	r.mu.Lock()
	r.calls = append(r.calls, strings.Join(append([]string{name}, args...), " "))
	r.mu.Unlock()

	if r.FailOn != nil {
		if err := r.FailOn(name, args); err != nil {
			return err
		}
	}

	switch {
	case strings.HasSuffix(name, "llvm-as"):
		irPath := args[0]
		data, err := os.ReadFile(irPath)
		if err != nil {
			return err
		}
		return os.WriteFile(artifact.ObjectForIR(irPath), append([]byte("obj|"), data...), 0644)

	case strings.HasSuffix(name, "llvm-link"):
		libPath := strings.TrimPrefix(args[0], "-o=")
		var buf bytes.Buffer
		for _, obj := range args[1:] {
			data, err := os.ReadFile(obj)
			if err != nil {
				return err
			}
			buf.Write(data)
		}
		return os.WriteFile(libPath, buf.Bytes(), 0644)

	case strings.HasSuffix(name, "genGlslArithOpEmuCode"):
		return os.WriteFile(args[1], []byte("ir|arith|"+args[2]+"\n"), 0644)

	case strings.HasSuffix(name, "genGlslImageOpEmuCode"):
		return os.WriteFile(args[1], []byte("ir|image|"+args[2]+"\n"), 0644)
	}

	return fmt.Errorf("fake runner: unknown command %q", name)
}
