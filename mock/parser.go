package mock

import (
	"context"

	"github.com/fwojciec/rfz"
)

var _ rfz.MetadataParser = (*MetadataParser)(nil)

// MetadataParser is a mock implementation of rfz.MetadataParser.
type MetadataParser struct {
	ParseMetadataFn func(ctx context.Context, h rfz.DocumentHandle) (*rfz.Metadata, error)
}

func (p *MetadataParser) ParseMetadata(ctx context.Context, h rfz.DocumentHandle) (*rfz.Metadata, error) {
	return p.ParseMetadataFn(ctx, h)
}

var _ rfz.Grammar = (*Grammar)(nil)

// Grammar is a mock implementation of rfz.Grammar.
type Grammar struct {
	ParseFn func(h rfz.DocumentHandle, header []byte) *rfz.Metadata
}

func (g *Grammar) Parse(h rfz.DocumentHandle, header []byte) *rfz.Metadata {
	return g.ParseFn(h, header)
}
