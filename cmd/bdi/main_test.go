package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"shell", "serve", "demo", "version"})
	assert.NotNil(t, root.Flags().Lookup("name"))
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("BDI_ENV", t.TempDir()+"/absent.env")
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "bdi dev (commit "))
}

func TestShellCommand_MockProvider(t *testing.T) {
	t.Setenv("BDI_ENV", t.TempDir()+"/absent.env")
	t.Setenv("LLM_PROVIDER", "mock")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SYSTEM_PROMPT", "")

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetIn(strings.NewReader("hello\nquit\n"))
	root.SetArgs([]string{"shell", "--name", "Helper"})

	require.NoError(t, root.Execute())
	got := out.String()
	assert.Contains(t, got, "Agent: Helper")
	assert.Contains(t, got, "Intentions formed: 0")
	assert.Contains(t, got, "Goodbye! Session ended.")
}

func TestNewLogger_RejectsBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := newLogger()
	assert.Error(t, err)
}
