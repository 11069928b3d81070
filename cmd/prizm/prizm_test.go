package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/prizm"
)

// isolate points the XDG directories at a temp dir and restores the global
// logger afterwards.
func isolate(t *testing.T) string {
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		xdg.Reload()
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "prizm version dev")
}

func TestDemo(t *testing.T) {
	dir := filepath.Join(isolate(t), "out")

	_, stderr, err := run(t, "demo", "--out", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "documentation.obj"))
	require.NoError(t, err)
	assert.Equal(t, prizm.DocumentationExample().String(), string(data))

	data, err = os.ReadFile(filepath.Join(dir, "concatenation.obj"))
	require.NoError(t, err)
	assert.Equal(t, prizm.ConcatenationExample().String(), string(data))

	assert.Contains(t, stderr, "wrote "+filepath.Join(dir, "documentation.obj")+" (29 vertices)")
}

func TestDemoOutputDirFromConfig(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "from-config")
	cfgFile := filepath.Join(dir, "prizm.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output_dir: "+out+"\n"), 0o644))

	_, _, err := run(t, "--config", cfgFile, "demo")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "documentation.obj"))
}

func TestBox(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "box", "--min", "-1,-1", "--max", "1,1", "--annotate", "square")
	require.NoError(t, err)
	assert.Equal(t, "\nv -1 -1\nv 1 -1\nv 1 1\nv -1 1\nv -1 -1\nl -5 -4 -3 -2 -1 # square\n", out)
}

func TestBoxFlags(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "--absolute", "--precision", "2", "box", "--min", "0,0", "--max", "0.333,1")
	require.NoError(t, err)
	assert.Equal(t, "\nv 0 0\nv 0.33 0\nv 0.33 1\nv 0 1\nv 0 0\nl 1 2 3 4 5\n", out)
}

func TestBox3ToFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "box.obj")

	_, stderr, err := run(t, "box", "--min", "0,0,0", "--max", "1,1,1", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "(16 vertices)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, strings.Count(string(data), "\nv "))
}

func TestBoxErrors(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "box", "--min", "0,0,0", "--max", "1,1")
	assert.ErrorContains(t, err, "2 or 3 matching coordinates")

	_, _, err = run(t, "box", "--max", "1,1")
	assert.Error(t, err)

	_, _, err = run(t, "--precision", "-1", "box", "--min", "0,0", "--max", "1,1")
	assert.ErrorContains(t, err, "precision must be >= 0")
}

func TestConcat(t *testing.T) {
	dir := isolate(t)
	a := filepath.Join(dir, "a.obj")
	b := filepath.Join(dir, "b.obj")
	out := filepath.Join(dir, "out.obj")

	require.NoError(t, prizm.NewObj().Segment2(prizm.V2(0, 0), prizm.V2(1, 0)).WriteFile(a))
	require.NoError(t, prizm.NewObj().Point3(prizm.V3(1, 2, 3)).WriteFile(b))

	_, stderr, err := run(t, "concat", out, a, b)
	require.NoError(t, err)
	assert.Contains(t, stderr, "(3 vertices)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "## " + a + "\nv 0 0\nv 1 0\nl -2 -1\n## " + b + "\nv 1 2 3\np -1\n"
	assert.Equal(t, want, string(data))
}

func TestConcatStrictRejectsAbsolute(t *testing.T) {
	dir := isolate(t)
	abs := filepath.Join(dir, "abs.obj")
	out := filepath.Join(dir, "out.obj")

	require.NoError(t, prizm.NewObj().SetUseNegativeIndices(false).Segment2(prizm.V2(0, 0), prizm.V2(1, 0)).WriteFile(abs))

	_, _, err := run(t, "concat", out, abs, abs)
	require.NoError(t, err, "lenient by default")

	_, _, err = run(t, "--strict", "concat", out, abs, abs)
	assert.ErrorIs(t, err, prizm.ErrAbsoluteAppend)
}

func TestConcatErrors(t *testing.T) {
	dir := isolate(t)

	_, _, err := run(t, "concat", filepath.Join(dir, "out.obj"))
	assert.Error(t, err)

	_, _, err = run(t, "concat", filepath.Join(dir, "out.obj"), filepath.Join(dir, "missing.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMissingConfigFile(t *testing.T) {
	dir := isolate(t)

	_, _, err := run(t, "--config", filepath.Join(dir, "nope.toml"), "version")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
