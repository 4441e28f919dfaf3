package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// A job file with a syntax error panics during app.NewApp; run must
	// recover it into a plain error.
	invalidHCL := `
		job "broken" {
			input =
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "job.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	runErr := run(out, []string{filePath})

	require.Error(t, runErr)
	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"),
		"the error should indicate a recovered panic")
	require.True(t, strings.Contains(errStr, "failed to load job file"),
		"the error should carry the underlying reason")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The help flag makes cli.Parse report a clean exit.
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:", "expected help text")
}

func TestRun_MemoryImport(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	docPath := filepath.Join(tempDir, "hops.xml")
	doc := `<?xml version="1.0" encoding="ISO-8859-1"?>
<HOPS>
  <HOP>
    <NAME>Cascade</NAME>
    <VERSION>1</VERSION>
    <ALPHA>5.5</ALPHA>
    <AMOUNT>0.028</AMOUNT>
    <USE>Boil</USE>
    <TIME>60</TIME>
  </HOP>
</HOPS>
`
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0600))

	jobPath := filepath.Join(tempDir, "job.hcl")
	exportPath := filepath.Join(tempDir, "out.xml")
	jobHCL := `
job "hops" {
  input  = "` + docPath + `"
  store  = "memory"
  export = "` + exportPath + `"
}
`
	require.NoError(t, os.WriteFile(jobPath, []byte(jobHCL), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", jobPath})
	require.NoError(t, err)

	exported, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	require.Contains(t, string(exported), "<NAME>Cascade</NAME>")
	require.Contains(t, string(exported), "<VERSION>1</VERSION>")
}
