// Package markup turns user-supplied text into something safe to store or display.
//
// Stored fields are plain text produced by StripAllTags. Display goes through
// RenderMarkup, which expands Markdown and then keeps only a small set of
// formatting elements with no attributes at all.
package markup

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedElements is the only markup that survives RenderMarkup.
var allowedElements = []string{
	"p", "br",
	"ul", "ol", "li",
	"em", "i", "strong", "b",
	"h1", "h2", "h3", "h4", "h5",
}

// textless elements whose content is dropped by StripAllTags.
var skipContent = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Textarea: true,
	atom.Option:   true,
}

// newlines folds carriage returns that entity decoding can reintroduce.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

var (
	// raw HTML is passed through so the policy decides what stays.
	markdown = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

	displayPolicy = newDisplayPolicy()
)

func newDisplayPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedElements...)
	return p
}

// RenderMarkup expands Markdown to HTML and strips every element outside the
// allow-list together with all attributes. It never fails; a conversion
// error yields an empty string.
func RenderMarkup(raw string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(raw), &buf); err != nil {
		return ""
	}
	return displayPolicy.Sanitize(buf.String())
}

// StripAllTags removes every tag, attribute and comment from raw and returns
// the remaining text HTML-escaped, so entity-encoded markup in the input never
// turns into a real tag. The result is a fixed point: stripping it again
// returns it unchanged.
func StripAllTags(raw string) string {
	var (
		out   strings.Builder
		z     = xhtml.NewTokenizer(strings.NewReader(raw))
		skip  atom.Atom
		depth int
	)
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			// io.EOF or a read error; either way the text so far is all there is
			return xhtml.EscapeString(newlines.Replace(out.String()))
		case xhtml.TextToken:
			if depth == 0 {
				out.Write(z.Text())
			}
		case xhtml.StartTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skipContent[a] {
				if depth == 0 {
					skip = a
				}
				if a == skip {
					depth++
				}
			}
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			if depth > 0 && atom.Lookup(name) == skip {
				depth--
			}
		}
	}
}

// PlainText decodes a StripAllTags result for display by templates that
// escape on their own. Forms must be prefilled with the stored value instead,
// since decoded text would be stripped again on save.
func PlainText(stored string) string {
	return xhtml.UnescapeString(stored)
}
