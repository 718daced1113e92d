package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidArguments(t *testing.T) {
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"/opt/llvm/bin/", "/opt/llvm/bin/", "lnx"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, config)

	assert.Equal(t, "/opt/llvm/bin/", config.AssemblerDir)
	assert.Equal(t, "/opt/llvm/bin/", config.LinkerDir)
	assert.Equal(t, "lnx", config.Platform)
	assert.NotEmpty(t, config.Root)
}

func TestParseArgumentCount(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "one argument", args: []string{"a"}},
		{name: "two arguments", args: []string{"a", "b"}},
		{name: "four arguments", args: []string{"a", "b", "c", "d"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			_, _, err := Parse(tc.args, out)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, "expected 3 arguments")
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParseHelp(t *testing.T) {
	out := &bytes.Buffer{}

	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}
