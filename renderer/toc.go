package renderer

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is an entry of a table of contents.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// TableOfContents returns the headings of a markdown document whose level is
// between minLevel and maxLevel included.
func TableOfContents(markdown string, minLevel, maxLevel int) []Heading {
	src := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level >= minLevel && h.Level <= maxLevel {
			txt := inlineText(h, src)
			headings = append(headings, Heading{ID: headingID(txt), Text: txt, Level: h.Level})
		}
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// TableOfContentsMarkdown renders headings as a nested bullet list.
func TableOfContentsMarkdown(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}
	top := headings[0].Level
	for _, h := range headings {
		top = min(top, h.Level)
	}
	var b strings.Builder
	for _, h := range headings {
		b.WriteString(strings.Repeat("  ", h.Level-top))
		b.WriteString("- [")
		b.WriteString(h.Text)
		b.WriteString("](#")
		b.WriteString(h.ID)
		b.WriteString(")\n")
	}
	return b.String()
}

// inlineText concatenates the text of the inline children of n.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}

// headingID returns the anchor of a heading: lower case ASCII words joined by dashes.
func headingID(s string) string {
	var b strings.Builder
	b.WriteString("toc-")
	for _, r := range strings.Join(strings.Fields(strings.ToLower(s)), "-") {
		if r == '-' || r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
