package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/htmlconv"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	text, err := deps.Reader.ReadDocument(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
		return err
	}

	summary := htmlconv.AnalyzeStructure(text)

	fmt.Fprintln(deps.Stdout, "Tag frequency:")
	for _, tc := range summary.TagFrequency {
		fmt.Fprintf(deps.Stdout, "  %s: %d\n", tc.Name, tc.Count)
	}

	depths := make([]string, len(summary.Depths))
	for i, d := range summary.Depths {
		depths[i] = strconv.Itoa(d)
	}
	fmt.Fprintf(deps.Stdout, "Depths: %s\n", strings.Join(depths, " "))

	fmt.Fprintln(deps.Stdout, "Text fragments:")
	for _, frag := range summary.TextFragments {
		fmt.Fprintf(deps.Stdout, "  %s\n", frag)
	}
	return nil
}
