package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/glslemu/emulibgen/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `
emulibgen - regenerates the embeddable GLSL emulation library headers.

Usage:
  emulibgen ASSEMBLER_DIR LINKER_DIR PLATFORM

Arguments:
  ASSEMBLER_DIR
    Directory containing the llvm-as executable.
  LINKER_DIR
    Directory containing the llvm-link executable.
  PLATFORM
    Platform tag; "win" invokes tools with a direct argument list,
    anything else goes through the shell.

The current directory is the working root: descriptions and source IR are
read from it and the generated headers are written back into it.
`

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("emulibgen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() != 3 {
		flagSet.Usage()
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("expected 3 arguments, got %d", flagSet.NArg()),
		}
	}

	root, err := os.Getwd()
	if err != nil {
		return nil, false, fmt.Errorf("resolving working root: %w", err)
	}

	config, err := app.NewConfig(app.Config{
		Root:         root,
		AssemblerDir: flagSet.Arg(0),
		LinkerDir:    flagSet.Arg(1),
		Platform:     flagSet.Arg(2),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
