package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"swmterm/cmd/swmterm/cli"
	"swmterm/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIndex(t *testing.T) string {
	t.Helper()
	return testutils.WriteIndex(t, testutils.SampleTree(), testutils.SampleCorpus())
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli.CurrentTheme = cli.PlainTheme
	t.Cleanup(func() { cli.CurrentTheme = cli.DefaultTheme })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	configPath := filepath.Join(t.TempDir(), "missing.yaml")
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestExecCommand(t *testing.T) {
	index := writeIndex(t)

	out, err := runCLI(t, "--index", index, "exec", "--cwd", "/projects", "--", "cat", "jotter.md")
	require.NoError(t, err)
	assert.Equal(t, "Bookmark manager\n", out)

	out, err = runCLI(t, "--index", index, "exec", "--", "ls", "nosuchdir")
	require.NoError(t, err)
	assert.Equal(t, "ls: cannot access 'nosuchdir': No such file or directory\n", out)

	out, err = runCLI(t, "--index", index, "exec", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "[image] /images/stephen-mccullough.jpg\n")

	out, err = runCLI(t, "--index", index, "exec", "clear")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExecFallsBackToBuiltInContent(t *testing.T) {
	out, err := runCLI(t, "--index", filepath.Join(t.TempDir(), "gone.json"), "exec", "pwd")
	require.NoError(t, err)
	assert.Contains(t, out, "content index unavailable")
	assert.Contains(t, out, "/\n")
}

func TestIndexCommand(t *testing.T) {
	index := writeIndex(t)

	out, err := runCLI(t, "index", index)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid content index")
	assert.Contains(t, out, "files: 2")
	assert.Contains(t, out, "entries: 1")

	out, err = runCLI(t, "index", "--knowledge", index)
	require.NoError(t, err)
	assert.Contains(t, out, "rails")
	assert.NotContains(t, out, "valid content index")

	bad := testutils.WriteFile(t, t.TempDir(), "bad.json", `{"searchIndex": []}`)
	_, err = runCLI(t, "index", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fileSystem")
}

func TestInvalidFlagsFailValidation(t *testing.T) {
	t.Setenv("SWMTERM_BOOT_SPEED", "0")
	_, err := runCLI(t, "exec", "pwd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boot speed")
}
