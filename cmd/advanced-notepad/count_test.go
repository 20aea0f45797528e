package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"advanced-notepad/internal/clipboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCountStdin(t *testing.T) {
	out, err := execute(t, "  one two\tthree\n four ", "count")

	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestCountEmptyStdin(t *testing.T) {
	out, err := execute(t, "   \n", "count")

	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestCountGlob(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "nested", "deep", "b.txt")
	writeFile(t, a, "alpha beta")
	writeFile(t, b, "gamma delta epsilon")
	writeFile(t, filepath.Join(dir, "skip.md"), "not counted")

	out, err := execute(t, "", "count", filepath.Join(dir, "**", "*.txt"))

	require.NoError(t, err)
	assert.Equal(t, "2\t"+a+"\n3\t"+b+"\n5\ttotal\n", out)
}

func TestCountSingleFileHasNoTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.txt")
	writeFile(t, path, "just three words")

	out, err := execute(t, "", "count", path, path)

	require.NoError(t, err)
	assert.Equal(t, "3\t"+path+"\n", out)
}

func TestCountNoMatch(t *testing.T) {
	_, err := execute(t, "", "count", filepath.Join(t.TempDir(), "*.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match")
}

func TestCountBadPattern(t *testing.T) {
	_, err := execute(t, "", "count", "[")

	assert.Error(t, err)
}

func TestCountClipboard(t *testing.T) {
	mem := clipboard.NewMemory()
	require.NoError(t, mem.Write("copied from somewhere"))
	previous := systemClipboard
	systemClipboard = mem
	t.Cleanup(func() { systemClipboard = previous })

	out, err := execute(t, "", "count", "--clipboard")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = execute(t, "", "count", "--clipboard", "*.txt")
	assert.Error(t, err)
}
