// Package convert coordinates tag extraction, structure analysis, code
// generation and recording of the results.
package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/htmlconv"
	"github.com/google/uuid"
)

// Default output locations.
const (
	DefaultBasicOutput = "output_html.go"
	DefaultSmartOutput = "smart_html_processor.go"
)

// Extractor reads a document, extracts its tags and records them.
type Extractor struct {
	Reader htmlconv.DocumentReader
	Tags   htmlconv.TagService

	// NewRunID returns the correlation ID for one extraction.
	// Defaults to a random UUID.
	NewRunID func() string
}

// ExtractResult holds the outcome of one extraction.
type ExtractResult struct {
	RunID      string
	SourceFile string
	Total      int // raw matches, including those dropped as empty
	Tags       []*htmlconv.Tag
}

// Extract extracts and records the tags of the document at path.
// Returns ENOTFOUND without recording anything if path does not exist.
func (e *Extractor) Extract(ctx context.Context, path string) (*ExtractResult, error) {
	text, err := e.Reader.ReadDocument(path)
	if err != nil {
		return nil, err
	}

	runID := e.runID()
	source := filepath.Base(path)
	tags, total := htmlconv.ExtractTags(text, source)

	for _, tag := range tags {
		tag.RunID = runID
		if err := e.Tags.CreateTag(ctx, tag); err != nil {
			return nil, fmt.Errorf("failed to record tag <%s> at position %d: %w", tag.Name, tag.Position, err)
		}
	}

	return &ExtractResult{
		RunID:      runID,
		SourceFile: source,
		Total:      total,
		Tags:       tags,
	}, nil
}

func (e *Extractor) runID() string {
	if e.NewRunID != nil {
		return e.NewRunID()
	}
	return uuid.New().String()
}

// BasicGenerator generates a program with one statement per tag.
type BasicGenerator struct {
	Renderer    htmlconv.Renderer
	Writer      htmlconv.FileWriter
	Conversions htmlconv.ConversionService
}

// Generate writes the basic program for tags to outputPath and records
// every statement as an auto conversion. Returns outputPath.
func (g *BasicGenerator) Generate(ctx context.Context, tags []*htmlconv.Tag, source, outputPath string) (string, error) {
	prog := htmlconv.NewBasicProgram(source, tags)

	codes := make([]string, len(prog.Statements))
	for i, stmt := range prog.Statements {
		code, err := g.Renderer.RenderStatement(stmt)
		if err != nil {
			return "", err
		}
		codes[i] = code
	}

	src, err := g.Renderer.RenderBasic(prog)
	if err != nil {
		return "", err
	}

	if err := g.Writer.WriteFile(outputPath, src); err != nil {
		return "", err
	}

	for i, stmt := range prog.Statements {
		conv := &htmlconv.Conversion{Code: codes[i], Kind: htmlconv.ConversionAuto}
		if stmt.TagID != 0 {
			id := stmt.TagID
			conv.TagID = &id
		} else {
			conv.TagName, conv.TagContent = stmt.Tag, stmt.Text
		}
		if err := g.Conversions.CreateConversion(ctx, conv); err != nil {
			return "", fmt.Errorf("failed to record conversion for <%s>: %w", stmt.Tag, err)
		}
	}

	return outputPath, nil
}

// SmartGenerator generates a program with one handler per distinct tag.
type SmartGenerator struct {
	Reader      htmlconv.DocumentReader
	Renderer    htmlconv.Renderer
	Writer      htmlconv.FileWriter
	Conversions htmlconv.ConversionService
}

// Generate analyzes the document at path, writes the smart program to
// outputPath and records a truncated copy as a smart conversion.
// Returns EIDENTIFIER before writing anything if a tag name cannot be
// used as a handler name.
func (g *SmartGenerator) Generate(ctx context.Context, path, outputPath string) (string, error) {
	text, err := g.Reader.ReadDocument(path)
	if err != nil {
		return "", err
	}

	prog, err := htmlconv.NewSmartProgram(htmlconv.AnalyzeStructure(text), path)
	if err != nil {
		return "", err
	}

	src, err := g.Renderer.RenderSmart(prog)
	if err != nil {
		return "", err
	}

	if err := g.Writer.WriteFile(outputPath, src); err != nil {
		return "", err
	}

	conv := &htmlconv.Conversion{
		Code: htmlconv.TruncateCode(src, htmlconv.SmartCodeLimit),
		Kind: htmlconv.ConversionSmart,
	}
	if err := g.Conversions.CreateConversion(ctx, conv); err != nil {
		return "", fmt.Errorf("failed to record smart conversion: %w", err)
	}

	return outputPath, nil
}
