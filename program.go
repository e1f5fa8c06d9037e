package htmlconv

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the rendering rule a basic program applies to a tag.
type Category string

// Category constants.
const (
	CategoryHeading   Category = "heading"
	CategoryParagraph Category = "paragraph"
	CategoryContainer Category = "container"
	CategoryInline    Category = "inline"
	CategoryLink      Category = "link"
	CategoryUnknown   Category = "unknown"
)

// PreviewLimit is the number of characters of container content kept in
// a container statement's preview.
const PreviewLimit = 50

type rule struct {
	category Category
	label    string
}

// rules is the dispatch table for basic programs. Names missing from it
// fall back to CategoryUnknown.
var rules = map[string]rule{
	"h1":   {CategoryHeading, "Heading"},
	"h2":   {CategoryHeading, "Subheading"},
	"h3":   {CategoryHeading, "Section heading"},
	"p":    {CategoryParagraph, "paragraph"},
	"div":  {CategoryContainer, "Container content"},
	"span": {CategoryInline, "Inline element"},
	"a":    {CategoryLink, "Link text"},
}

// CategoryOf returns the rendering category for a tag name.
func CategoryOf(name string) Category {
	if r, ok := rules[name]; ok {
		return r.category
	}
	return CategoryUnknown
}

// Statement describes one generated statement of a basic program.
type Statement struct {
	Category Category
	Tag      string
	Label    string
	Text     string
	Preview  string // container statements only
	TagID    int64
}

// BasicProgram is a generated program with one statement per tag.
type BasicProgram struct {
	Source     string
	Statements []Statement
}

// NewBasicProgram builds a basic program from tags, keeping their order.
func NewBasicProgram(source string, tags []*Tag) *BasicProgram {
	prog := &BasicProgram{Source: source}
	for _, tag := range tags {
		stmt := Statement{
			Category: CategoryUnknown,
			Tag:      tag.Name,
			Text:     tag.Content,
			TagID:    tag.ID,
		}
		if r, ok := rules[tag.Name]; ok {
			stmt.Category = r.category
			stmt.Label = r.label
		}
		if stmt.Category == CategoryContainer {
			stmt.Preview = TruncateCode(tag.Content, PreviewLimit)
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog
}

// HandlerKind is how a smart program handler classifies its input.
type HandlerKind string

// HandlerKind constants.
const (
	HandlerHeading   HandlerKind = "heading"
	HandlerTextBlock HandlerKind = "text_block"
	HandlerLink      HandlerKind = "link"
	HandlerElement   HandlerKind = "element"
)

// Handler describes one generated handler function of a smart program.
type Handler struct {
	Tag   string
	Func  string
	Count int
	Kind  HandlerKind
	Level int // heading level, HandlerHeading only
}

// SmartProgram is a generated program with one handler per distinct tag.
type SmartProgram struct {
	Source   string
	Tags     []TagCount
	Handlers []Handler
}

// NewSmartProgram builds a smart program from a structure summary.
// Returns EIDENTIFIER if a tag name cannot form a Go identifier or if two
// tag names produce the same handler name.
func NewSmartProgram(summary *StructureSummary, source string) (*SmartProgram, error) {
	prog := &SmartProgram{Source: source}
	seen := make(map[string]string)

	for _, tc := range summary.TagFrequency {
		fn, err := HandlerName(tc.Name)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[fn]; ok {
			return nil, Errorf(EIDENTIFIER, "tags <%s> and <%s> both map to handler %s", other, tc.Name, fn)
		}
		seen[fn] = tc.Name

		h := Handler{Tag: tc.Name, Func: fn, Count: tc.Count}
		h.Kind, h.Level = classify(tc.Name)
		prog.Handlers = append(prog.Handlers, h)
		prog.Tags = append(prog.Tags, tc)
	}

	return prog, nil
}

// HandlerName returns the generated handler function name for a tag.
// Returns EIDENTIFIER if the tag is not a run of ASCII word characters.
func HandlerName(tag string) (string, error) {
	if tag == "" {
		return "", Errorf(EIDENTIFIER, "empty tag name")
	}
	for i := 0; i < len(tag); i++ {
		if !isWordByte(tag[i]) {
			return "", Errorf(EIDENTIFIER, "tag <%s> is not a valid identifier", tag)
		}
	}
	r, size := utf8.DecodeRuneInString(tag)
	name := "process" + string(unicode.ToUpper(r)) + tag[size:]
	if !token.IsIdentifier(name) {
		return "", Errorf(EIDENTIFIER, "tag <%s> is not a valid identifier", tag)
	}
	return name, nil
}

func classify(tag string) (HandlerKind, int) {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return HandlerHeading, int(tag[1] - '0')
	case "p", "div", "span":
		return HandlerTextBlock, 0
	case "a":
		return HandlerLink, 0
	}
	return HandlerElement, 0
}

// Renderer renders program models to source text.
type Renderer interface {
	// RenderStatement renders a single statement of a basic program.
	RenderStatement(stmt Statement) (string, error)

	// RenderBasic renders a complete basic program.
	RenderBasic(prog *BasicProgram) (string, error)

	// RenderSmart renders a complete smart program.
	RenderSmart(prog *SmartProgram) (string, error)
}

var commentReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// CommentText makes s safe to embed in a single-line comment.
func CommentText(s string) string {
	return commentReplacer.Replace(s)
}

// GeneratedHeader returns the first line of every generated file.
func GeneratedHeader(source string) string {
	return "// Code generated by htmlconv from " + CommentText(source) + ". DO NOT EDIT."
}
