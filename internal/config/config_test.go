package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeJobFile(t, `
job "import" {
  input = "testdata/recipes.xml"
}
`)
	m, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "info", m.LogLevel)
	require.Len(t, m.Jobs, 1)
	assert.Equal(t, "import", m.Jobs[0].Name)
	assert.Equal(t, "memory", m.Jobs[0].Store)
	assert.Equal(t, "", m.Jobs[0].Export)
	assert.False(t, m.Jobs[0].CaseInsensitiveEnums)
}

func TestLoadFullJob(t *testing.T) {
	t.Parallel()

	path := writeJobFile(t, `
log_level = "debug"

job "archive" {
  input                  = "/data/beerxml"
  store                  = "sqlite:/data/brew.db"
  export                 = "/data/out.xml"
  case_insensitive_enums = true
}
`)
	m, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", m.LogLevel)
	j := m.Jobs[0]
	assert.Equal(t, "sqlite:/data/brew.db", j.Store)
	assert.Equal(t, "/data/out.xml", j.Export)
	assert.True(t, j.CaseInsensitiveEnums)
}

func TestLoadEnvInterpolation(t *testing.T) {
	t.Setenv("BREWDOC_TEST_INPUT", "/mnt/recipes")

	path := writeJobFile(t, `
job "import" {
  input = env.BREWDOC_TEST_INPUT
}
`)
	m, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/recipes", m.Jobs[0].Input)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax error", `job "x" {`, "parse"},
		{"no jobs", `log_level = "info"`, "no jobs"},
		{"missing input", `job "x" {}`, "decode"},
		{
			"duplicate names",
			`job "x" { input = "a" }` + "\n" + `job "x" { input = "b" }`,
			`duplicate job "x"`,
		},
		{
			"unknown store",
			`job "x" {` + "\n" + `input = "a"` + "\n" + `store = "postgres://nope"` + "\n" + `}`,
			"unknown store DSN",
		},
		{
			"unknown log level",
			`log_level = "chatty"` + "\n" + `job "x" { input = "a" }`,
			"unknown log_level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeJobFile(t, tc.content)
			_, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
