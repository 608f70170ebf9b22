package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "lox.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "> ", cfg.REPL.Prompt)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.AST)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[repl]
prompt = "lox> "

[output]
format = "yaml"
ast = true

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lox> ", cfg.REPL.Prompt)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.True(t, cfg.Output.AST)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
	}{
		{"syntax", `[repl`},
		{"format", "[output]\nformat = \"xml\""},
		{"log level", "[log]\nlevel = \"loud\""},
		{"log format", "[log]\nformat = \"csv\""},
	}

	for _, tc := range testCases {
		_, err := Load(writeConfig(t, tc.Content))
		assert.Error(t, err, tc.Name)
	}

	missing := filepath.Join(t.TempDir(), "missing.toml")
	_, err := Load(missing)
	assert.EqualError(t, err, "config file not found: "+missing)
}
