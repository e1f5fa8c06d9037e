package htmlconv

import (
	"regexp"
	"strings"
)

// Match is one raw tag/content pair found by ScanTags.
type Match struct {
	Name     string
	Inner    string
	Position int // 1-based index among all raw matches
}

var markupRe = regexp.MustCompile(`<[^>]+>`)

// ScanTags returns every <name ...>...</name> pair in text, in document order.
//
// A pair ends at the nearest following closer with the identical name, so
// nested elements sharing a name do not round-trip to a balanced tree:
// "<div><div>x</div></div>" yields one match with inner "<div>x". Names are
// case-sensitive runs of ASCII word characters. When the full name has no
// closer, shorter prefixes of it are tried before giving up on the opener.
func ScanTags(text string) []Match {
	var matches []Match
	pos := 0
	for pos < len(text) {
		i := strings.IndexByte(text[pos:], '<')
		if i < 0 {
			break
		}
		start := pos + i
		m, end, ok := matchAt(text, start)
		if !ok {
			pos = start + 1
			continue
		}
		m.Position = len(matches) + 1
		matches = append(matches, m)
		pos = end
	}
	return matches
}

// matchAt tries to match a pair whose opener starts at text[start] == '<'.
// It returns the match and the offset just past its closer.
func matchAt(text string, start int) (Match, int, bool) {
	nameStart := start + 1
	nameEnd := nameStart
	for nameEnd < len(text) && isWordByte(text[nameEnd]) {
		nameEnd++
	}
	if nameEnd == nameStart {
		return Match{}, 0, false
	}

	gt := strings.IndexByte(text[nameEnd:], '>')
	if gt < 0 {
		return Match{}, 0, false
	}
	openEnd := nameEnd + gt + 1
	rest := text[openEnd:]

	for end := nameEnd; end > nameStart; end-- {
		name := text[nameStart:end]
		closer := "</" + name + ">"
		if j := strings.Index(rest, closer); j >= 0 {
			return Match{Name: name, Inner: rest[:j]}, openEnd + j + len(closer), true
		}
	}
	return Match{}, 0, false
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// StripMarkup removes every <...> span from s and trims surrounding whitespace.
func StripMarkup(s string) string {
	return strings.TrimSpace(markupRe.ReplaceAllString(s, ""))
}

// ExtractTags scans text and returns the tags whose stripped content is
// non-empty, along with the total number of raw matches. Positions are
// assigned before empty matches are dropped, so they may have gaps.
func ExtractTags(text, sourceFile string) (tags []*Tag, total int) {
	matches := ScanTags(text)
	for _, m := range matches {
		content := StripMarkup(m.Inner)
		if content == "" {
			continue
		}
		tags = append(tags, &Tag{
			Name:       m.Name,
			Content:    content,
			Position:   m.Position,
			SourceFile: sourceFile,
		})
	}
	return tags, len(matches)
}
