package sprig_test

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/fwojciec/htmlconv"
	"github.com/fwojciec/htmlconv/sprig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireParses fails the test if src is not a syntactically valid Go file.
func requireParses(t *testing.T, src string) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.AllErrors)
	require.NoError(t, err, src)
}

func TestRenderer_RenderStatement(t *testing.T) {
	t.Parallel()

	r := sprig.NewRenderer()

	tests := map[htmlconv.Category]struct {
		stmt htmlconv.Statement
		want string
	}{
		htmlconv.CategoryHeading: {
			stmt: htmlconv.Statement{Category: htmlconv.CategoryHeading, Tag: "h1", Label: "Heading", Text: "Title"},
			want: `heading("Heading", "Title")`,
		},
		htmlconv.CategoryParagraph: {
			stmt: htmlconv.Statement{Category: htmlconv.CategoryParagraph, Tag: "p", Label: "paragraph", Text: "Hello"},
			want: `p.add("paragraph", "Hello")`,
		},
		htmlconv.CategoryContainer: {
			stmt: htmlconv.Statement{Category: htmlconv.CategoryContainer, Tag: "div", Label: "Container content", Text: "Box", Preview: "Box"},
			want: `container("Container content", "Box")`,
		},
		htmlconv.CategoryInline: {
			stmt: htmlconv.Statement{Category: htmlconv.CategoryInline, Tag: "span", Label: "Inline element", Text: "x"},
			want: `inline("Inline element", "x")`,
		},
		htmlconv.CategoryLink: {
			stmt: htmlconv.Statement{Category: htmlconv.CategoryLink, Tag: "a", Label: "Link text", Text: "Home"},
			want: `link("Link text", "Home")`,
		},
		htmlconv.CategoryUnknown: {
			stmt: htmlconv.Statement{Category: htmlconv.CategoryUnknown, Tag: "unknowntag", Text: "X"},
			want: `unknown("unknowntag", "X")`,
		},
	}

	for category, tt := range tests {
		t.Run(string(category), func(t *testing.T) {
			t.Parallel()

			got, err := r.RenderStatement(tt.stmt)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("escapes quotes and newlines", func(t *testing.T) {
		t.Parallel()

		got, err := r.RenderStatement(htmlconv.Statement{Category: htmlconv.CategoryInline, Label: "Inline element", Text: "say \"hi\"\nnow"})

		require.NoError(t, err)
		assert.Equal(t, `inline("Inline element", "say \"hi\"\nnow")`, got)
	})
}

func TestRenderer_RenderBasic(t *testing.T) {
	t.Parallel()

	t.Run("renders heading and fallback statements", func(t *testing.T) {
		t.Parallel()

		prog := htmlconv.NewBasicProgram("index.html", []*htmlconv.Tag{
			{Name: "h1", Content: "Title"},
			{Name: "unknowntag", Content: "X"},
		})

		src, err := sprig.NewRenderer().RenderBasic(prog)

		require.NoError(t, err)
		requireParses(t, src)
		assert.True(t, strings.HasPrefix(src, "// Code generated by htmlconv from index.html. DO NOT EDIT.\n"))
		assert.Contains(t, src, `heading("Heading", "Title")`)
		assert.Contains(t, src, `unknown("unknowntag", "X")`)
		assert.Contains(t, src, "package main")
		assert.Contains(t, src, "func main()")
		assert.Less(t, strings.Index(src, `"Title"`), strings.Index(src, `"X"`))
	})

	t.Run("renders every category as valid Go", func(t *testing.T) {
		t.Parallel()

		prog := htmlconv.NewBasicProgram("site/page.html", []*htmlconv.Tag{
			{Name: "h1", Content: "A"},
			{Name: "h2", Content: "B"},
			{Name: "h3", Content: "C"},
			{Name: "p", Content: "para with \"quotes\" and \\ backslash"},
			{Name: "div", Content: strings.Repeat("long ", 20)},
			{Name: "span", Content: "inline"},
			{Name: "a", Content: "link"},
			{Name: "li", Content: "item\nsecond line"},
		})

		src, err := sprig.NewRenderer().RenderBasic(prog)

		require.NoError(t, err)
		requireParses(t, src)
		assert.Contains(t, src, `p.add("paragraph", `)
		assert.Contains(t, src, `container("Container content", `)
	})

	t.Run("renders empty program", func(t *testing.T) {
		t.Parallel()

		src, err := sprig.NewRenderer().RenderBasic(htmlconv.NewBasicProgram("empty.html", nil))

		require.NoError(t, err)
		requireParses(t, src)
		assert.Contains(t, src, "func (p *processor) processContent() {\n}")
	})

	t.Run("keeps multi-line source names out of code", func(t *testing.T) {
		t.Parallel()

		src, err := sprig.NewRenderer().RenderBasic(htmlconv.NewBasicProgram("odd\nname.html", nil))

		require.NoError(t, err)
		requireParses(t, src)
		assert.Contains(t, src, "from odd name.html.")
	})
}

func TestRenderer_RenderSmart(t *testing.T) {
	t.Parallel()

	t.Run("embeds counts and declares one handler per tag", func(t *testing.T) {
		t.Parallel()

		summary := &htmlconv.StructureSummary{
			TagFrequency: []htmlconv.TagCount{{Name: "h1", Count: 1}, {Name: "p", Count: 2}},
		}
		prog, err := htmlconv.NewSmartProgram(summary, "index.html")
		require.NoError(t, err)

		src, err := sprig.NewRenderer().RenderSmart(prog)

		require.NoError(t, err)
		requireParses(t, src)
		assert.Contains(t, src, "//   - h1: 1\n")
		assert.Contains(t, src, "//   - p: 2\n")
		assert.Equal(t, 2, strings.Count(src, "\nfunc process"))
		assert.Contains(t, src, "func processH1(text string) *Element {")
		assert.Contains(t, src, "func processP(text string) *Element {")
		assert.Contains(t, src, `Type: "heading", Tag: "h1", Level: 1`)
		assert.Contains(t, src, `Type: "text_block", Tag: "p"`)
		assert.Contains(t, src, "func printStatistics()")
	})

	t.Run("lists statistics in frequency order", func(t *testing.T) {
		t.Parallel()

		summary := &htmlconv.StructureSummary{
			TagFrequency: []htmlconv.TagCount{{Name: "section", Count: 3}, {Name: "a", Count: 1}, {Name: "div", Count: 2}},
		}
		prog, err := htmlconv.NewSmartProgram(summary, "f.html")
		require.NoError(t, err)

		src, err := sprig.NewRenderer().RenderSmart(prog)

		require.NoError(t, err)
		requireParses(t, src)
		section := strings.Index(src, `{Tag: "section", Count: 3}`)
		link := strings.Index(src, `{Tag: "a", Count: 1}`)
		div := strings.Index(src, `{Tag: "div", Count: 2}`)
		require.NotEqual(t, -1, section)
		assert.Less(t, section, link)
		assert.Less(t, link, div)
		assert.Contains(t, src, `Type: "link", Tag: "a"`)
		assert.Contains(t, src, `Type: "element", Tag: "section"`)
	})

	t.Run("renders program without tags", func(t *testing.T) {
		t.Parallel()

		prog, err := htmlconv.NewSmartProgram(&htmlconv.StructureSummary{}, "empty.html")
		require.NoError(t, err)

		src, err := sprig.NewRenderer().RenderSmart(prog)

		require.NoError(t, err)
		requireParses(t, src)
		assert.NotContains(t, src, "func process")
	})
}
