package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rfz"
)

// Header limits. Text page headers fit in the first page; markup carries
// stylesheets and scripts before the metadata.
const (
	DefaultTextLimit   = 16 << 10
	DefaultMarkupLimit = 64 << 10
)

// Ensure Parser implements rfz.MetadataParser at compile time.
var _ rfz.MetadataParser = (*Parser)(nil)

// Parser reads the header prefix of a document from disk and hands it to
// the grammar registered for the document's format and kind.
type Parser struct {
	Grammars *Registry

	// TextLimit and MarkupLimit override the default header limits.
	TextLimit   int64
	MarkupLimit int64
}

// NewParser creates a new Parser using grammars.
func NewParser(grammars *Registry) *Parser {
	return &Parser{Grammars: grammars}
}

// ParseMetadata reads at most the header limit of h and parses it. It
// returns an error only when the file cannot be opened or read.
func (p *Parser) ParseMetadata(ctx context.Context, h rfz.DocumentHandle) (*rfz.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix, err := readPrefix(h.Path, p.limit(h.Format))
	if err != nil {
		return nil, err
	}

	var m *rfz.Metadata
	if g := p.Grammars.Lookup(h.Format, h.Kind); g != nil {
		m = g.Parse(h, prefix)
	}
	if m == nil {
		m = rfz.NewMetadata(h)
	}

	// Identity always comes from the file name.
	m.ID, m.Kind, m.Name, m.Version, m.Path = h.ID, h.Kind, h.Name, h.Version, h.Path
	if len(prefix) > 0 {
		m.Hash = computeHash(prefix)
	}
	return m, nil
}

func (p *Parser) limit(format rfz.Format) int64 {
	switch format {
	case rfz.FormatHTML, rfz.FormatXML:
		if p.MarkupLimit > 0 {
			return p.MarkupLimit
		}
		return DefaultMarkupLimit
	default:
		if p.TextLimit > 0 {
			return p.TextLimit
		}
		return DefaultTextLimit
	}
}

func readPrefix(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	prefix, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, fmt.Errorf("read document header: %w", err)
	}
	return prefix, nil
}

// computeHash fingerprints a header prefix using xxhash.
func computeHash(prefix []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(prefix))
}
