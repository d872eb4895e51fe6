package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.settingsPath = filepath.Join(t.TempDir(), "absent.yaml")
	return a, &stdout, &stderr
}

func matchLines(out string) []string {
	var matches []string
	for line := range strings.SplitSeq(out, "\n") {
		if line == "" || strings.HasPrefix(line, "looking for ") {
			continue
		}
		matches = append(matches, line)
	}
	return matches
}

func TestApp_Help(t *testing.T) {
	for _, args := range [][]string{nil, {"-help"}, {"x", "-r", "-help"}} {
		a, stdout, _ := newTestApp(t)

		assert.Equal(t, exitOK, a.run(args))
		assert.Contains(t, stdout.String(), "Usage: findfiles filetofind")
	}
}

func TestApp_InvalidOption(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "x"), []byte("x"), 0o644))
	a, stdout, _ := newTestApp(t)

	code := a.run([]string{"x", "-dir", root, "-bogus"})

	assert.Equal(t, exitUsage, code)
	out := stdout.String()
	assert.Contains(t, out, "-bogus is an invalid option")
	assert.Contains(t, out, "Usage: findfiles")
	assert.NotContains(t, out, "looking for")
}

func TestApp_MissingArgument(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	assert.Equal(t, exitUsage, a.run([]string{"x", "-dir"}))
	assert.Contains(t, stdout.String(), "dir is missing an arg")
}

func TestApp_FindsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	want, err := filepath.EvalSymlinks(filepath.Join(root, "notes.txt"))
	require.NoError(t, err)

	a, stdout, stderr := newTestApp(t)
	code := a.run([]string{"notes.txt", "-dir", root})

	assert.Equal(t, exitOK, code)
	assert.Equal(t, []string{want}, matchLines(stdout.String()))
	assert.Contains(t, stdout.String(), "looking for notes.txt in "+root+string(os.PathSeparator))
	assert.Empty(t, stderr.String())
}

func TestApp_NoMatchStillSucceeds(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	assert.Equal(t, exitOK, a.run([]string{"missing.txt", "-dir", t.TempDir()}))
	assert.Empty(t, matchLines(stdout.String()))
}

func TestApp_InvalidRegex(t *testing.T) {
	a, _, stderr := newTestApp(t)

	assert.Equal(t, exitFailure, a.run([]string{"foo(", "-reg", "-dir", t.TempDir()}))
	assert.Contains(t, stderr.String(), "invalid regular expression")
}

func TestApp_SettingsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "skip"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skip", "f.txt"), []byte("x"), 0o644))

	a, stdout, _ := newTestApp(t)
	a.settingsPath = filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(a.settingsPath, []byte("progress: false\nignore: [skip/**]\n"), 0o644))

	assert.Equal(t, exitOK, a.run([]string{"f.txt", "-r", "-dir", root}))
	assert.Empty(t, stdout.String())
}

func TestApp_BadSettingsFile(t *testing.T) {
	a, _, stderr := newTestApp(t)
	a.settingsPath = filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(a.settingsPath, []byte("bogus: 1\n"), 0o644))

	assert.Equal(t, exitFailure, a.run([]string{"f.txt"}))
	assert.Contains(t, stderr.String(), "failed to parse settings")
}

func TestApp_EmptyExtensionListWarns(t *testing.T) {
	a, _, stderr := newTestApp(t)

	assert.Equal(t, exitOK, a.run([]string{"f", "-ext", ",", "-dir", t.TempDir()}))
	assert.Contains(t, stderr.String(), "extension list is empty")
}

func TestApp_Command(t *testing.T) {
	a, stdout, _ := newTestApp(t)
	cmd := a.command()
	cmd.SetArgs([]string{"x", "-bogus"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, exitUsage, a.exitCode)
	assert.Contains(t, stdout.String(), "-bogus is an invalid option")
}

func TestApp_MissingTarget(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	assert.Equal(t, exitUsage, a.run([]string{"x", "stray"}))
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "Please supply minimum number of arguments"), out)
	assert.NotContains(t, out, "usage error")
}

func TestApp_VersionIsNotAFlag(t *testing.T) {
	a, stdout, _ := newTestApp(t)
	cmd := a.command()

	assert.Empty(t, cmd.Version)

	cmd.SetArgs([]string{"x.txt", "--version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, exitUsage, a.exitCode)
	assert.Contains(t, stdout.String(), "--version is an invalid option")
}
