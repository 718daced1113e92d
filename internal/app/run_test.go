package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellInvocation(t *testing.T) {
	testCases := []struct {
		name     string
		platform string
		shell    bool
	}{
		{name: "win execs directly", platform: "win", shell: false},
		{name: "lnx goes through the shell", platform: "lnx", shell: true},
		{name: "unknown tags go through the shell", platform: "darwin", shell: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.shell, shellInvocation(tc.platform))
		})
	}
}
