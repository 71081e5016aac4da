package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalmtorch/slugalloc/internal/logger"
	"github.com/napalmtorch/slugalloc/region"
)

// runCmd executes the root command with args and stdin, returning stdout.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	prev := logger.L
	t.Cleanup(func() { logger.L = prev })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestShellSession(t *testing.T) {
	out, err := runCmd(t, "ALLOC 100\nALLOC 50\nFREE 8092\nFREE 1\nwhat\n",
		"--bottom", "0x1000", "--top", "0x2000", "--no-color")
	require.NoError(t, err)

	wantInOrder := []string{
		"Slug Memory Allocator",
		"version " + version,
		"[BOTTOM] 0x00001000   [TOP] 0x00002000",
		"Allocated 512 bytes at offset 0x00001E00",
		"Un-allocated 512 bytes at offset 0x00001E00",
		"Chunk Pointer: 0x00002000",
		"shell> ",
		"Allocated 100 bytes at offset 0x00001F9C",
		"Allocated 50 bytes at offset 0x00001F6A",
		"Un-allocated 100 bytes at offset 0x00001F9C",
		"Chunk Pointer: 0x00001FCE",
		"Could not locate chunk with specified offset",
		"Invalid command",
	}
	rest := out
	for _, want := range wantInOrder {
		i := strings.Index(rest, want)
		require.GreaterOrEqual(t, i, 0, "missing %q in output:\n%s", want, out)
		rest = rest[i+len(want):]
	}
}

func TestShellNoProbeNoLog(t *testing.T) {
	out, err := runCmd(t, "ALLOC 10\n",
		"--bottom", "4096", "--top", "8192", "--no-probe", "--log=false", "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, out, "[BOTTOM]")
	assert.NotContains(t, out, "Allocated")
	assert.Contains(t, out, "shell> ")
}

func TestShellLogFile(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "",
		"--bottom", "0x1000", "--top", "0x2000", "--log=false", "--log-file", dir, "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, out, "[BOTTOM]")
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := runCmd(t, "", "--bottom", "0x1000000", "--top", "0x100000", "--no-color")
	require.ErrorIs(t, err, region.ErrInvalidConfiguration)
}

func TestInvalidAddressFlag(t *testing.T) {
	_, err := runCmd(t, "", "--bottom", "zero")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--bottom")
}

func TestProbeOverflowDoesNotStopShell(t *testing.T) {
	out, err := runCmd(t, "ALLOC 8\n", "--bottom", "0", "--top", "256", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Allocation overflow")
	assert.Contains(t, out, "startup probe failed")
	assert.Contains(t, out, "Allocated 8 bytes at offset 0x000000F8")
}

func TestClearScreen(t *testing.T) {
	out, err := runCmd(t, "cls\n", "--bottom", "0x1000", "--top", "0x2000", "--no-probe", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[2J")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "slugsh "+version)
}
