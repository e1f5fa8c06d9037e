package main

import (
	"fmt"

	"github.com/fwojciec/htmlconv"
	"github.com/fwojciec/htmlconv/convert"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	extractor := &convert.Extractor{Reader: deps.Reader, Tags: deps.Tags}
	result, err := extractor.Extract(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
		return err
	}

	for _, tag := range result.Tags {
		fmt.Fprintf(deps.Stdout, "%d  %d  %s  %s\n", tag.ID, tag.Position, tag.Name, preview(tag.Content))
	}
	fmt.Fprintf(deps.Stdout, "Extracted %d tags from %s (%d matches, run %s)\n",
		len(result.Tags), result.SourceFile, result.Total, result.RunID)
	return nil
}
