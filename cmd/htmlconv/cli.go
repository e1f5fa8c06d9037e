package main

import (
	"context"
	"io"

	"github.com/fwojciec/htmlconv"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	DBPath      string
	Tags        htmlconv.TagService
	Conversions htmlconv.ConversionService
	Reader      htmlconv.DocumentReader
	Writer      htmlconv.FileWriter
	Renderer    htmlconv.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"HTMLCONV_DB" default:"html_analysis.db" help:"SQLite database path"`
	Verbose bool   `short:"v" help:"Log store and render operations to stderr"`

	Convert     ConvertCmd     `cmd:"" help:"Extract tags and generate Go programs from an HTML file"`
	Extract     ExtractCmd     `cmd:"" help:"Extract and record tags from an HTML file"`
	Analyze     AnalyzeCmd     `cmd:"" help:"Print tag frequency, depth and text of an HTML file"`
	Tags        TagsCmd        `cmd:"" help:"List recorded tags"`
	Conversions ConversionsCmd `cmd:"" help:"List recorded conversions"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	File   string `arg:"" optional:"" help:"HTML file to convert (prompted for when omitted)"`
	Mode   string `short:"m" enum:"basic,smart" default:"smart" help:"Generate the basic program only, or both (basic, smart)"`
	Output string `short:"o" env:"HTMLCONV_OUTPUT" default:"." help:"Directory for generated programs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" help:"HTML file"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	File string `arg:"" help:"HTML file"`
}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct {
	RunID string `name:"run" help:"Only tags from this extraction run"`
	File  string `help:"Only tags from this source file name"`
	Name  string `help:"Only tags with this name"`
	Limit int    `short:"n" help:"Maximum number of tags to list"`
}

// ConversionsCmd is the "conversions" subcommand.
type ConversionsCmd struct {
	Kind  string `short:"k" help:"Only conversions of this kind (auto, smart)"`
	Tag   int64  `help:"Only conversions referencing this tag ID"`
	Limit int    `short:"n" help:"Maximum number of conversions to list"`
}
