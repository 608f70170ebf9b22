package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout bytes.Buffer
	res := executeTo(t, &stdout, stdin, args...)
	res.stdout = stdout.String()
	return res
}

func executeTo(t *testing.T, stdout io.Writer, stdin string, args ...string) result {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "lox.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[output]\ncolor = false\n\n[log]\nlevel = \"error\"\n"), 0o644))

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)

	var stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))

	code := ExitCode(Execute())
	return result{code: code, stderr: stderr.String()}
}

func writeScript(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunScript(t *testing.T) {
	res := execute(t, "", writeScript(t, "print \"hi\";\n"))

	assert.Equal(t, ExitOK, res.code)
	assert.Equal(t, "(:PRINT \"print\" [1])\n"+
		"(:STRING \"\\\"hi\\\"\" \"hi\" [1])\n"+
		"(:SEMICOLON \";\" [1])\n"+
		"(:EOF \"\" [2])\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestRunScriptAST(t *testing.T) {
	res := execute(t, "", "--ast", writeScript(t, "true ? 1 : 2;\n(1 + 2) / 3;"))

	assert.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.stdout, "(?: true 1 2)\n")
	assert.Contains(t, res.stdout, "(/ (group (+ 1 2)) 3)\n")
}

func TestRunScriptErrors(t *testing.T) {
	res := execute(t, "", "--ast", writeScript(t, "1 + ;\n#"))

	assert.Equal(t, ExitDataErr, res.code)
	assert.Contains(t, res.stderr, "illegal character '#' at line 2")
	assert.Contains(t, res.stderr, "Expected expression at line 1")
}

func TestRunScriptYAML(t *testing.T) {
	res := execute(t, "", "--format", "yaml", writeScript(t, "nil"))

	assert.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.stdout, "type: NIL")
	assert.Contains(t, res.stdout, "type: EOF")
}

func TestMissingScript(t *testing.T) {
	res := execute(t, "", filepath.Join(t.TempDir(), "missing.lox"))

	assert.Equal(t, ExitNoInput, res.code)
	assert.Contains(t, res.stderr, "cannot open script")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestOutputFailure(t *testing.T) {
	res := executeTo(t, failingWriter{}, "", writeScript(t, "1"))

	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "writing tokens")
	assert.NotContains(t, res.stderr, "cannot open script")
}

func TestUsage(t *testing.T) {
	res := execute(t, "", "a.lox", "b.lox")

	assert.Equal(t, ExitUsage, res.code)
	assert.Equal(t, "Usage: lox [script]\n", res.stderr)
	assert.Empty(t, res.stdout)
}

func TestPrompt(t *testing.T) {
	res := execute(t, "1\n", "--ast")

	assert.Equal(t, ExitOK, res.code)
	assert.Equal(t, "> (:NUMBER \"1\" 1 [1])\n(:EOF \"\" [1])\n1\n> \n", res.stdout)
}

func TestBadConfig(t *testing.T) {
	res := execute(t, "", "--format", "xml", writeScript(t, "1"))

	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "unsupported output format")
}
