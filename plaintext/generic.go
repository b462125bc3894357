package plaintext

import (
	"strings"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/dateparse"
)

// maxGenericTitle bounds the rune length of a generic title.
const maxGenericTitle = 200

// GenericGrammar takes the first non-blank line as the title and the first
// recognizable date anywhere in the prefix. It is used for documents whose
// layout is unknown.
type GenericGrammar struct{}

// Ensure GenericGrammar implements rfz.Grammar at compile time.
var _ rfz.Grammar = GenericGrammar{}

// Parse implements rfz.Grammar.
func (GenericGrammar) Parse(h rfz.DocumentHandle, prefix []byte) *rfz.Metadata {
	m := rfz.NewMetadata(h)
	text, ok := decode(prefix)
	if !ok {
		return m
	}
	for _, line := range splitLines(text) {
		if title := collapse(line); title != "" {
			m.Title = truncate(title, maxGenericTitle)
			break
		}
	}
	if d, ok := dateparse.Find(text); ok {
		m.Date = d
	}
	return m
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
