package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp keeps a .env in the package directory out of the run.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestConfigFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GRIDCALC_UNIT", "mi")
	t.Setenv("GRIDCALC_LOG_LEVEL", "disabled")

	var code int
	out := captureStdout(t, func() {
		code = runMain([]string{"FN42", "JO01"})
	})
	assert.Equal(t, 0, code)
	assert.Equal(t, "3309.1 miles\n", out)
}

func TestBadConfigExits(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GRIDCALC_UNIT", "parsec")

	assert.Equal(t, 1, runMain([]string{"FN42", "JO01"}))
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}
