package fs

import "github.com/fwojciec/rfz"

// grammarKey selects a grammar for one document kind in one format.
type grammarKey struct {
	format rfz.Format
	kind   rfz.DocumentKind
}

// Registry selects the header grammar for a document. Lookup tries a
// grammar registered for the exact format and kind, then one registered for
// the whole format, then the fallback.
type Registry struct {
	fallback rfz.Grammar
	formats  map[rfz.Format]rfz.Grammar
	kinds    map[grammarKey]rfz.Grammar
}

// NewRegistry creates a new Registry with the given fallback grammar.
func NewRegistry(fallback rfz.Grammar) *Registry {
	return &Registry{
		fallback: fallback,
		formats:  make(map[rfz.Format]rfz.Grammar),
		kinds:    make(map[grammarKey]rfz.Grammar),
	}
}

// Register adds g for format. With kinds, g applies only to those kinds;
// without, it applies to every kind in the format. A later registration for
// the same key replaces the earlier one.
func (r *Registry) Register(format rfz.Format, g rfz.Grammar, kinds ...rfz.DocumentKind) {
	if len(kinds) == 0 {
		r.formats[format] = g
		return
	}
	for _, kind := range kinds {
		r.kinds[grammarKey{format, kind}] = g
	}
}

// Lookup returns the grammar for a document of the given format and kind.
func (r *Registry) Lookup(format rfz.Format, kind rfz.DocumentKind) rfz.Grammar {
	if g, ok := r.kinds[grammarKey{format, kind}]; ok {
		return g
	}
	if g, ok := r.formats[format]; ok {
		return g
	}
	return r.fallback
}
