// Package trafilatura extracts metadata from HTML documents that carry no
// Dublin Core elements, using go-trafilatura's metadata heuristics.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/rfz"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Grammar implements rfz.Grammar at compile time.
var _ rfz.Grammar = (*Grammar)(nil)

// Grammar wraps go-trafilatura to read titles, authors and dates from
// arbitrary HTML.
type Grammar struct {
	fallback rfz.Grammar
}

// NewGrammar creates a new Grammar. Documents trafilatura cannot extract are
// handed to fallback, which may be nil.
func NewGrammar(fallback rfz.Grammar) *Grammar {
	return &Grammar{fallback: fallback}
}

// Parse implements rfz.Grammar. Extraction failures yield the fallback's
// record, or the minimal record without a fallback.
func (g *Grammar) Parse(h rfz.DocumentHandle, prefix []byte) *rfz.Metadata {
	m := rfz.NewMetadata(h)
	if len(bytes.TrimSpace(prefix)) == 0 {
		return m
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(prefix), opts)
	if err != nil || result == nil {
		if g.fallback != nil {
			return g.fallback.Parse(h, prefix)
		}
		return m
	}

	m.Title = collapse(result.Metadata.Title)
	for _, author := range strings.Split(result.Metadata.Author, ";") {
		m.AddAuthor(collapse(author))
	}
	if !result.Metadata.Date.IsZero() {
		m.Date = rfz.NewDate(result.Metadata.Date)
	}
	return m
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
