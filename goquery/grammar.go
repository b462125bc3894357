// Package goquery parses the Dublin Core metadata in HTML renderings of
// IETF documents.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/dateparse"
)

// dcPrefix marks the Dublin Core meta names.
const dcPrefix = "dc."

// Ensure Grammar implements rfz.Grammar at compile time.
var _ rfz.Grammar = (*Grammar)(nil)

// Grammar reads DC.* meta elements. Documents without any are handed to the
// fallback grammar, and the <title> element fills a missing title.
type Grammar struct {
	fallback rfz.Grammar
}

// NewGrammar creates a new Grammar. The fallback may be nil.
func NewGrammar(fallback rfz.Grammar) *Grammar {
	return &Grammar{fallback: fallback}
}

// Parse implements rfz.Grammar.
func (g *Grammar) Parse(h rfz.DocumentHandle, prefix []byte) *rfz.Metadata {
	m := rfz.NewMetadata(h)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(prefix))
	if err != nil {
		return m
	}

	var replaces []string
	found := false
	doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		content, ok := sel.Attr("content")
		if !ok {
			return
		}
		key, isDC := cutPrefixFold(name, dcPrefix)
		if !isDC {
			return
		}
		found = true
		content = collapse(content)
		if content == "" {
			return
		}

		switch strings.ToLower(key) {
		case "title":
			if m.Title == "" {
				m.Title = content
			}
		case "creator":
			m.AddAuthor(content)
		case "date.issued":
			if d, ok := dateparse.Parse(content); ok && m.Date.IsZero() {
				m.Date = d
			}
		case "description", "description.abstract":
			if m.Description == "" {
				m.Description = content
			}
		case "relation.replaces":
			replaces = append(replaces, content)
		}
	})
	m.Obsoletes = strings.Join(replaces, ", ")

	if !found && g.fallback != nil {
		if fm := g.fallback.Parse(h, prefix); fm != nil {
			m = fm
		}
	}
	if m.Title == "" {
		m.Title = collapse(doc.Find("title").First().Text())
	}
	return m
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
