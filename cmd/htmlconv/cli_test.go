package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/htmlconv/cmd/htmlconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"convert", "extract", "analyze", "tags", "conversions"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ConvertDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"convert", "page.html"})

	require.NoError(t, err)
	assert.Equal(t, "page.html", cli.Convert.File)
	assert.Equal(t, "smart", cli.Convert.Mode)
	assert.Equal(t, ".", cli.Convert.Output)
	assert.Equal(t, "html_analysis.db", cli.DB)
}

func TestCLI_ConvertRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"convert", "page.html", "--mode", "fancy"})

	assert.Error(t, err)
}
