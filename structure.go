package htmlconv

import (
	"regexp"
	"strings"
)

var (
	openingTagRe = regexp.MustCompile(`<(\w+)[^>]*>`)
	closingTagRe = regexp.MustCompile(`</(\w+)>`)
	textRe       = regexp.MustCompile(`>([^<]+)<`)
)

// TagCount is the number of opening tags seen for one tag name.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StructureSummary describes the line-level structure of one document.
type StructureSummary struct {
	// TagFrequency holds opening tag counts in order of first appearance.
	TagFrequency []TagCount `json:"tagFrequency"`

	// Depths holds the running nesting depth after each non-blank line.
	// It is never clamped and goes negative on unbalanced input.
	Depths []int `json:"depths"`

	// TextFragments holds at most one text fragment per non-blank line.
	TextFragments []string `json:"textFragments"`
}

// Frequency returns the opening tag count for name.
func (s *StructureSummary) Frequency(name string) int {
	for _, tc := range s.TagFrequency {
		if tc.Name == name {
			return tc.Count
		}
	}
	return 0
}

// AnalyzeStructure walks text line by line, counting opening tags, tracking
// the running nesting depth and collecting the first text fragment of each
// line. Blank lines are skipped entirely.
func AnalyzeStructure(text string) *StructureSummary {
	summary := &StructureSummary{}
	index := make(map[string]int)
	depth := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		openings := openingTagRe.FindAllStringSubmatch(line, -1)
		closings := closingTagRe.FindAllStringSubmatch(line, -1)

		for _, m := range openings {
			name := m[1]
			if i, ok := index[name]; ok {
				summary.TagFrequency[i].Count++
				continue
			}
			index[name] = len(summary.TagFrequency)
			summary.TagFrequency = append(summary.TagFrequency, TagCount{Name: name, Count: 1})
		}

		depth += len(openings) - len(closings)
		summary.Depths = append(summary.Depths, depth)

		if m := textRe.FindStringSubmatch(line); m != nil {
			summary.TextFragments = append(summary.TextFragments, strings.TrimSpace(m[1]))
		}
	}

	return summary
}
