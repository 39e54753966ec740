package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/pageparse"
	"github.com/boxesandglue/pageparse/config"
)

// workdir writes a quiet configuration and the given files to a temporary
// directory and returns the directory.
func workdir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["quiet.yaml"] = "logging:\n  console:\n    level: none\n"
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	full := []string{args[0], "--config", filepath.Join(dir, "quiet.yaml")}
	for _, a := range args[1:] {
		switch filepath.Ext(a) {
		case ".html", ".css", ".txt":
			a = filepath.Join(dir, a)
		}
		full = append(full, a)
	}
	cmd.SetArgs(full)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "pageparse", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Version)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"parse", "query", "tokens", "version"})
}

func TestParseCommand(t *testing.T) {
	dir := workdir(t, map[string]string{
		"page.html":  `<div class="a"><p>Hi</p></div>`,
		"style.css":  `div.a { width: 10px; }`,
		"style2.css": `p { color: blue; }`,
	})

	out, err := run(t, dir, "parse", "page.html", "style.css", "style2.css")
	require.NoError(t, err)
	assert.Equal(t, `HTML:
    element div class="a"
        element p
            text "Hi"

CSS:
    p {
      color: blue;
    }
`, out)

	out, err = run(t, dir, "parse", "--format", "yaml", "page.html")
	require.NoError(t, err)
	assert.Contains(t, out, "tag: div")

	out, err = run(t, dir, "parse", "-f", "markdown", "style.css")
	require.NoError(t, err)
	assert.Contains(t, out, "### Rule 1: `div.a`")

	_, err = run(t, dir, "parse", "-f", "pdf", "style.css")
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestParseCommandErrors(t *testing.T) {
	dir := workdir(t, map[string]string{"bad.html": `<p>open`})

	_, err := run(t, dir, "parse")
	assert.Error(t, err)

	_, err = run(t, dir, "parse", "notes.txt")
	assert.ErrorIs(t, err, pageparse.ErrUnsupportedFileType)

	_, err = run(t, dir, "parse", "bad.html")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad.html")
}

func TestParseCommandConfigFormat(t *testing.T) {
	dir := workdir(t, map[string]string{
		"style.css": `p { color: red; }`,
		"yaml.yaml": "logging:\n  console:\n    level: none\noutput:\n  format: yaml\n",
	})
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"parse", "--config", filepath.Join(dir, "yaml.yaml"), filepath.Join(dir, "style.css")})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "selectors:")
}

func TestQueryCommand(t *testing.T) {
	dir := workdir(t, map[string]string{
		"page.html": `<ul><li class="x">one</li><li>two</li><li class="x">three</li></ul>`,
	})
	out, err := run(t, dir, "query", "li.x", "page.html")
	require.NoError(t, err)
	assert.Equal(t, "<li class=\"x\">one</li>\n<li class=\"x\">three</li>\n", out)

	_, err = run(t, dir, "query", "li[", "page.html")
	assert.Error(t, err)
}

func TestTokensCommand(t *testing.T) {
	dir := workdir(t, map[string]string{"style.css": `p { color: red; }`})
	out, err := run(t, dir, "tokens", "style.css")
	require.NoError(t, err)
	assert.Contains(t, out, `"p"`)
	assert.Contains(t, out, `"color"`)

	_, err = run(t, dir, "tokens", "missing.css")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionCommand(t *testing.T) {
	assert.NotEmpty(t, getVersion())
	assert.NotEmpty(t, getCommit())

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)
	assert.Contains(t, out.String(), "pageparse version")
	assert.Contains(t, out.String(), "commit:")
}

func TestMissingConfig(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"version", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	assert.ErrorIs(t, cmd.Execute(), config.ErrConfigNotFound)
}
