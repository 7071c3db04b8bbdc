package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReadResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane  Doe\n\n\n\nGo engineer at   Initech"), 0o644))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runReadResume(cmd, []string{path}))
	assert.Equal(t, "Jane Doe\n\nGo engineer at Initech\n", out.String())
}

func TestRunReadResumeUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	err := runReadResume(&cobra.Command{}, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestRunReadResumeMissingFile(t *testing.T) {
	err := runReadResume(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "absent.txt")})
	assert.Error(t, err)
}
