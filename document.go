package rfz

import (
	"context"
	"iter"
)

// DocumentKind distinguishes the header grammars of mirrored documents.
type DocumentKind int

// DocumentKind constants. The set is closed; files that match neither RFC
// nor Internet-Draft naming are KindOther.
const (
	KindOther DocumentKind = iota
	KindRFC
	KindDraft
)

// String returns the lowercase name of the kind.
func (k DocumentKind) String() string {
	switch k {
	case KindRFC:
		return "rfc"
	case KindDraft:
		return "draft"
	default:
		return "other"
	}
}

// Format is the on-disk representation of a document.
type Format int

// Format constants.
const (
	FormatUnknown Format = iota
	FormatText
	FormatHTML
	FormatXML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatHTML:
		return "html"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// DocumentHandle references one file within the mirrored tree.
// Handles are created by a Scanner and are not retained after parsing.
type DocumentHandle struct {
	// Path is the absolute path of the file.
	Path string

	// Base is the file name without directory and extension.
	Base string

	Kind   DocumentKind
	Format Format

	// ID, Name and Version are derived from the file name at scan time.
	// Name is the identifier without a draft version suffix.
	ID      string
	Name    string
	Version string
}

// Metadata is the normalized record extracted from a document header.
// Only ID and Path are guaranteed; every other field is best-effort and
// its zero value means "absent".
type Metadata struct {
	ID      string       `json:"id"`
	Kind    DocumentKind `json:"kind"`
	Name    string       `json:"name"`
	Version string       `json:"version,omitempty"`

	Title   string   `json:"title,omitempty"`
	Date    Date     `json:"date"`
	Authors []string `json:"authors,omitempty"`

	// Status holds the raw category or intended status text.
	Status      string `json:"status,omitempty"`
	Stream      string `json:"stream,omitempty"`
	Obsoletes   string `json:"obsoletes,omitempty"`
	ObsoletedBy string `json:"obsoletedBy,omitempty"`
	Updates     string `json:"updates,omitempty"`
	UpdatedBy   string `json:"updatedBy,omitempty"`
	Expires     string `json:"expires,omitempty"`

	// Description holds the abstract when the format carries one. Only
	// summaries show it.
	Description string `json:"description,omitempty"`

	Path string `json:"path"`

	// Hash fingerprints the header prefix the record was parsed from.
	Hash string `json:"hash,omitempty"`
}

// NewMetadata returns a record carrying only what the handle already knows.
func NewMetadata(h DocumentHandle) *Metadata {
	return &Metadata{
		ID:      h.ID,
		Kind:    h.Kind,
		Name:    h.Name,
		Version: h.Version,
		Path:    h.Path,
	}
}

// Validate returns an error if the record breaks the identifier or path
// invariant. Missing descriptive fields are never an error.
func (m *Metadata) Validate() error {
	if m.ID == "" {
		return Errorf(EINVALID, "metadata identifier required")
	}
	if m.Path == "" {
		return Errorf(EINVALID, "metadata path required")
	}
	return nil
}

// AddAuthor appends name unless it is blank or already listed.
func (m *Metadata) AddAuthor(name string) {
	if name == "" {
		return
	}
	for _, a := range m.Authors {
		if a == name {
			return
		}
	}
	m.Authors = append(m.Authors, name)
}

// Scanner walks a mirrored tree and yields document handles.
type Scanner interface {
	// Scan validates root and returns a lazy sequence of handles.
	// Failure to access root is returned as an error; failures on
	// individual entries are reported to diag and skipped.
	Scan(ctx context.Context, root string, diag Diagnostics) (iter.Seq[DocumentHandle], error)
}

// MetadataParser extracts metadata from the header region of a document.
type MetadataParser interface {
	// ParseMetadata returns an error only when the file cannot be read.
	// A document without a recognizable header yields a minimal record.
	ParseMetadata(ctx context.Context, h DocumentHandle) (*Metadata, error)
}

// Grammar parses one header layout. Implementations never fail: fields they
// cannot find are left absent on the returned record.
type Grammar interface {
	Parse(h DocumentHandle, header []byte) *Metadata
}

// GrammarFunc adapts a function to the Grammar interface.
type GrammarFunc func(h DocumentHandle, header []byte) *Metadata

// Parse calls f(h, header).
func (f GrammarFunc) Parse(h DocumentHandle, header []byte) *Metadata {
	return f(h, header)
}
