// Package readability reads titles and bylines from HTML pages using
// go-readability. It is the last resort for HTML documents.
package readability

import (
	"bytes"
	"strings"

	"github.com/fwojciec/rfz"
	"github.com/go-shiori/go-readability"
)

// Ensure Grammar implements rfz.Grammar at compile time.
var _ rfz.Grammar = (*Grammar)(nil)

// Grammar wraps go-readability.
type Grammar struct{}

// NewGrammar creates a new Grammar.
func NewGrammar() *Grammar {
	return &Grammar{}
}

// Parse implements rfz.Grammar. The byline, when present, becomes the only
// author. Failures yield the minimal record.
func (g *Grammar) Parse(h rfz.DocumentHandle, prefix []byte) *rfz.Metadata {
	m := rfz.NewMetadata(h)
	if len(bytes.TrimSpace(prefix)) == 0 {
		return m
	}

	article, err := readability.FromReader(bytes.NewReader(prefix), nil)
	if err != nil {
		return m
	}

	m.Title = strings.Join(strings.Fields(article.Title), " ")
	m.AddAuthor(strings.Join(strings.Fields(article.Byline), " "))
	return m
}
