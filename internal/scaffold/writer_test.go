package scaffold

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemWriter(dryRun bool) *Writer {
	return &Writer{FS: memfs.New(), DryRun: dryRun}
}

func TestWriteFileCreatesParents(t *testing.T) {
	w := newMemWriter(false)

	require.NoError(t, w.WriteFile("project/.vscode/settings.json", []byte("{}")))

	data, err := w.ReadFile("project/.vscode/settings.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	w := newMemWriter(false)

	require.NoError(t, w.WriteFile("Makefile", []byte("old")))
	require.NoError(t, w.WriteFile("Makefile", []byte("new")))

	data, err := w.ReadFile("Makefile")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestRemoveAll(t *testing.T) {
	w := newMemWriter(false)
	require.NoError(t, w.WriteFile("sdk/bin/flutter", []byte("#!/bin/sh")))
	require.NoError(t, w.WriteFile("sdk/README.md", []byte("sdk")))

	require.NoError(t, w.RemoveAll("sdk"))

	assert.False(t, w.Exists("sdk"))
	assert.False(t, w.Exists("sdk/bin/flutter"))
}

func TestEnsureLineCreatesMissingFile(t *testing.T) {
	w := newMemWriter(false)

	added, err := w.EnsureLine(".zprofile", `export PATH="$HOME/development/flutter/bin:$PATH"`)
	require.NoError(t, err)
	assert.True(t, added)

	data, err := w.ReadFile(".zprofile")
	require.NoError(t, err)
	assert.Equal(t, "export PATH=\"$HOME/development/flutter/bin:$PATH\"\n", string(data))
}

func TestEnsureLineIsIdempotent(t *testing.T) {
	w := newMemWriter(false)
	line := `export PATH="$HOME/development/flutter/bin:$PATH"`

	added, err := w.EnsureLine(".zprofile", line)
	require.NoError(t, err)
	require.True(t, added)

	first, err := w.ReadFile(".zprofile")
	require.NoError(t, err)

	added, err = w.EnsureLine(".zprofile", line)
	require.NoError(t, err)
	assert.False(t, added)

	second, err := w.ReadFile(".zprofile")
	require.NoError(t, err)
	assert.Equal(t, first, second, "second run must not change the file")
}

func TestEnsureLineAppendsToFileWithoutTrailingNewline(t *testing.T) {
	w := newMemWriter(false)
	require.NoError(t, w.WriteFile(".zprofile", []byte("# profile")))

	added, err := w.EnsureLine(".zprofile", "export FOO=1")
	require.NoError(t, err)
	assert.True(t, added)

	data, err := w.ReadFile(".zprofile")
	require.NoError(t, err)
	assert.Equal(t, "# profile\nexport FOO=1\n", string(data))
}

func TestEnsureLineMatchesPaddedLines(t *testing.T) {
	w := newMemWriter(false)
	require.NoError(t, w.WriteFile(".zprofile", []byte("  export FOO=1  \n")))

	added, err := w.EnsureLine(".zprofile", "export FOO=1")
	require.NoError(t, err)
	assert.False(t, added, "a whitespace-padded copy of the line already counts")
}

func TestDryRunWritesNothing(t *testing.T) {
	w := newMemWriter(true)

	require.NoError(t, w.WriteFile("Makefile", []byte("all:")))
	require.NoError(t, w.MkdirAll("test/unit_test"))
	require.NoError(t, w.RemoveAll("anything"))

	assert.False(t, w.Exists("Makefile"))
	assert.False(t, w.Exists("test/unit_test"))
}

func TestDryRunEnsureLineReportsWithoutWriting(t *testing.T) {
	w := newMemWriter(true)

	added, err := w.EnsureLine(".zprofile", "export FOO=1")
	require.NoError(t, err)
	assert.True(t, added, "dry-run still reports whether the line was missing")
	assert.False(t, w.Exists(".zprofile"))
}

func TestDryRunStillReads(t *testing.T) {
	fs := memfs.New()
	live := &Writer{FS: fs}
	require.NoError(t, live.WriteFile(".zprofile", []byte("export FOO=1\n")))

	dry := &Writer{FS: fs, DryRun: true}
	assert.True(t, dry.Exists(".zprofile"))

	added, err := dry.EnsureLine(".zprofile", "export FOO=1")
	require.NoError(t, err)
	assert.False(t, added)
}
