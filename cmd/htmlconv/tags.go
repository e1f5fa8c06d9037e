package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/htmlconv"
)

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	filter := htmlconv.TagFilter{Limit: c.Limit}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}
	if c.File != "" {
		filter.SourceFile = &c.File
	}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	tags, err := deps.Tags.FindTags(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
		return err
	}

	if len(tags) == 0 {
		fmt.Fprintln(deps.Stdout, "No tags found. Use 'htmlconv extract' to record some.")
		return nil
	}

	for _, t := range tags {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s:%d  %s  %s\n", t.ID, t.RunID, t.SourceFile, t.Position, t.Name, preview(t.Content))
	}
	return nil
}

// preview returns the first line of s, shortened for listings.
func preview(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + htmlconv.TruncationMarker
	}
	return htmlconv.TruncateCode(s, 60)
}
