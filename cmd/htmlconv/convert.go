package main

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlconv"
	"github.com/fwojciec/htmlconv/convert"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	path := c.File
	if path == "" {
		var err error
		if path, err = prompt(deps, "Enter the path to the HTML file: "); err != nil {
			return err
		}
	}

	extractor := &convert.Extractor{Reader: deps.Reader, Tags: deps.Tags}
	result, err := extractor.Extract(deps.Ctx, path)
	if htmlconv.ErrorCode(err) == htmlconv.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Extracted %d tags from %s (%d matches, run %s)\n",
		len(result.Tags), result.SourceFile, result.Total, result.RunID)

	basic := &convert.BasicGenerator{
		Renderer:    deps.Renderer,
		Writer:      deps.Writer,
		Conversions: deps.Conversions,
	}
	basicPath, err := basic.Generate(deps.Ctx, result.Tags, result.SourceFile, filepath.Join(c.Output, convert.DefaultBasicOutput))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Generated basic program: %s\n", basicPath)

	programs := []string{basicPath}
	if c.Mode == "smart" {
		smart := &convert.SmartGenerator{
			Reader:      deps.Reader,
			Renderer:    deps.Renderer,
			Writer:      deps.Writer,
			Conversions: deps.Conversions,
		}
		smartPath, err := smart.Generate(deps.Ctx, path, filepath.Join(c.Output, convert.DefaultSmartOutput))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Generated smart program: %s\n", smartPath)
		programs = append(programs, smartPath)
	}

	fmt.Fprintf(deps.Stdout, "Records stored in %s\n", deps.DBPath)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Next steps:")
	for _, p := range programs {
		fmt.Fprintf(deps.Stdout, "  go run %s\n", p)
	}
	fmt.Fprintln(deps.Stdout, "  htmlconv tags --run", result.RunID)
	return nil
}

// prompt writes msg and reads one line from stdin.
func prompt(deps *Dependencies, msg string) (string, error) {
	fmt.Fprint(deps.Stdout, msg)
	line, err := bufio.NewReader(deps.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read file path: %w", err)
	}
	return strings.TrimSpace(line), nil
}
