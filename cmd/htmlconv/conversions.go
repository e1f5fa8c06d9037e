package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/htmlconv"
)

// Run executes the conversions command.
func (c *ConversionsCmd) Run(deps *Dependencies) error {
	filter := htmlconv.ConversionFilter{Limit: c.Limit}
	if c.Kind != "" {
		kind := htmlconv.ConversionKind(c.Kind)
		if kind != htmlconv.ConversionAuto && kind != htmlconv.ConversionSmart {
			err := htmlconv.Errorf(htmlconv.EINVALID, "unknown conversion kind %q (want auto or smart)", c.Kind)
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
			return err
		}
		filter.Kind = &kind
	}
	if c.Tag != 0 {
		filter.TagID = &c.Tag
	}

	convs, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlconv.ErrorMessage(err))
		return err
	}

	if len(convs) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions found. Use 'htmlconv convert' to create some.")
		return nil
	}

	for _, conv := range convs {
		tagID := "-"
		if conv.TagID != nil {
			tagID = strconv.FormatInt(*conv.TagID, 10)
		}
		fmt.Fprintf(deps.Stdout, "%d  %s  %s  %s\n", conv.ID, tagID, conv.Kind, preview(conv.Code))
	}
	return nil
}
