package plaintext

import (
	"regexp"
	"strings"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/dateparse"
)

// field is the metadata field a header label fills.
type field int

const (
	fieldIgnore field = iota
	fieldTitle
	fieldAuthor
	fieldDate
	fieldStatus
	fieldStream
	fieldObsoletes
	fieldObsoletedBy
	fieldUpdates
	fieldUpdatedBy
	fieldExpires
)

var commonLabels = map[string]field{
	"title":        fieldTitle,
	"author":       fieldAuthor,
	"authors":      fieldAuthor,
	"date":         fieldDate,
	"status":       fieldStatus,
	"category":     fieldStatus,
	"obsoletes":    fieldObsoletes,
	"obsoleted by": fieldObsoletedBy,
	"updates":      fieldUpdates,
	"updated by":   fieldUpdatedBy,
}

var rfcLabels = withLabels(commonLabels, map[string]field{
	"request for comments": fieldIgnore,
	"rfc":                  fieldIgnore,
	"stream":               fieldStream,
	"bcp":                  fieldIgnore,
	"std":                  fieldIgnore,
	"fyi":                  fieldIgnore,
	"issn":                 fieldIgnore,
	"nic":                  fieldIgnore,
	"ien":                  fieldIgnore,
})

var draftLabels = withLabels(commonLabels, map[string]field{
	"internet-draft":  fieldIgnore,
	"internet draft":  fieldIgnore,
	"intended status": fieldStatus,
	"expires":         fieldExpires,
	"workgroup":       fieldStream,
	"working group":   fieldStream,
})

func withLabels(base, extra map[string]field) map[string]field {
	out := make(map[string]field, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

var (
	// nameRe matches the "initials surname" form used for header authors,
	// e.g. "S. Bradner", "R. Fielding, Ed." or "R. van Rein".
	nameRe = regexp.MustCompile(`^\p{Lu}[\p{L}]?\.(?:[ -]?\p{Lu}[\p{L}]?\.)*\s+(?:\p{Ll}+\s+)*\p{Lu}[\p{L}'’-]+(?:\s\p{Lu}[\p{L}'’-]+)?(?:,\s*Ed\.?)?$`)

	// parenRe strips qualifiers such as "(if approved)" from labels.
	parenRe = regexp.MustCompile(`\s*\([^)]*\)`)

	// refListRe matches a continuation of an RFC number list.
	refListRe = regexp.MustCompile(`^\d+(?:,\s*\d+)*,?$`)
)

// headings start the document body; a block beginning with one is not a title.
var headings = []string{
	"status of this memo",
	"status of this document",
	"abstract",
	"copyright notice",
	"table of contents",
	"introduction",
	"1. introduction",
}

// maxTitleLines bounds the block taken as the title. Longer blocks are prose.
const maxTitleLines = 4

// Grammar parses a text page header using a fixed set of left-column labels.
type Grammar struct {
	labels map[string]field

	// dropName removes title lines that repeat the document name.
	dropName bool
}

// Ensure Grammar implements rfz.Grammar at compile time.
var _ rfz.Grammar = (*Grammar)(nil)

// NewRFCGrammar returns the grammar for RFC page headers.
func NewRFCGrammar() *Grammar {
	return &Grammar{labels: rfcLabels}
}

// NewDraftGrammar returns the grammar for Internet-Draft page headers.
func NewDraftGrammar() *Grammar {
	return &Grammar{labels: draftLabels, dropName: true}
}

// header collects what one pass over the page header found. Explicit
// "Title:", "Author:" and "Date:" lines take precedence over column cells.
type header struct {
	m *rfz.Metadata

	// recognized is set once a label, or a right-column date or name, is
	// seen. Nothing outside explicit labels is trusted without it.
	recognized bool

	// stream is the colon-less left cell of the first line.
	stream string

	// list is the reference list an indented line may continue.
	list *string

	title         string
	authors       []string
	columnAuthors []string
	date          rfz.Date
	columnDate    rfz.Date
}

// Parse extracts metadata from a text header. It never fails; a prefix with
// no recognizable header yields the record implied by the handle.
func (g *Grammar) Parse(h rfz.DocumentHandle, prefix []byte) *rfz.Metadata {
	m := rfz.NewMetadata(h)
	text, ok := decode(prefix)
	if !ok {
		return m
	}
	lines := splitLines(text)

	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := start
	for end < len(lines) && !isBlank(lines[end]) {
		end++
	}

	hd := &header{m: m}
	for i, line := range lines[start:end] {
		g.parseLine(hd, line, i == 0)
	}

	if hd.recognized && hd.stream != "" {
		m.Stream = hd.stream
	}

	m.Title = hd.title
	if m.Title == "" && hd.recognized {
		m.Title = g.titleBlock(h, lines[end:])
	}

	authors := hd.authors
	if len(authors) == 0 {
		authors = hd.columnAuthors
	}
	for _, a := range authors {
		m.AddAuthor(a)
	}

	m.Date = hd.date
	if m.Date.IsZero() {
		m.Date = hd.columnDate
	}
	return m
}

func (g *Grammar) parseLine(hd *header, line string, first bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	cells := columnSep.Split(trimmed, -1)

	if line[0] == ' ' || line[0] == '\t' {
		if hd.list != nil && refListRe.MatchString(cells[0]) {
			*hd.list = *hd.list + " " + cells[0]
			cells = cells[1:]
		}
		if len(cells) > 0 {
			hd.column(cells[len(cells)-1])
		}
		return
	}

	hd.list = nil
	if key, rest, ok := strings.Cut(trimmed, ":"); ok {
		if f, known := g.lookup(key); known {
			hd.recognized = true
			g.applyLabel(hd, f, rest)
			return
		}
	}
	if len(cells) == 1 {
		if _, known := g.lookup(cells[0]); known {
			hd.recognized = true
		}
		return
	}
	if _, known := g.lookup(cells[0]); !known && first && !strings.Contains(cells[0], ":") {
		hd.stream = cells[0]
	}
	hd.column(cells[len(cells)-1])
}

func (g *Grammar) applyLabel(hd *header, f field, rest string) {
	switch f {
	case fieldTitle:
		if hd.title == "" {
			hd.title = collapse(rest)
		}
		return
	case fieldAuthor:
		for _, a := range strings.Split(rest, ";") {
			if a = collapse(a); a != "" {
				hd.authors = append(hd.authors, a)
			}
		}
		return
	case fieldDate:
		if d, ok := dateparse.Parse(collapse(rest)); ok && hd.date.IsZero() {
			hd.date = d
		}
		return
	}

	cells := columnSep.Split(strings.TrimSpace(rest), -1)
	value := collapse(cells[0])
	if len(cells) > 1 {
		hd.column(cells[len(cells)-1])
	}

	m := hd.m
	switch f {
	case fieldStatus:
		setOnce(&m.Status, value)
	case fieldStream:
		setOnce(&m.Stream, value)
	case fieldExpires:
		setOnce(&m.Expires, value)
	case fieldObsoletes:
		hd.setList(&m.Obsoletes, value)
	case fieldObsoletedBy:
		hd.setList(&m.ObsoletedBy, value)
	case fieldUpdates:
		hd.setList(&m.Updates, value)
	case fieldUpdatedBy:
		hd.setList(&m.UpdatedBy, value)
	}
}

func (hd *header) setList(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
		hd.list = dst
	}
}

// column classifies a right-column cell as a date, an author or neither
// (affiliations, or a second sentence of prose).
func (hd *header) column(cell string) {
	cell = collapse(cell)
	if d, ok := dateparse.Parse(cell); ok {
		hd.recognized = true
		if hd.columnDate.IsZero() {
			hd.columnDate = d
		}
		return
	}
	if nameRe.MatchString(cell) {
		hd.recognized = true
		hd.columnAuthors = append(hd.columnAuthors, cell)
	}
}

func (g *Grammar) lookup(key string) (field, bool) {
	key = strings.ToLower(collapse(parenRe.ReplaceAllString(key, "")))
	f, ok := g.labels[key]
	return f, ok
}

// titleBlock returns the first non-blank block after the page header, with
// lines naming the document itself removed.
func (g *Grammar) titleBlock(h rfz.DocumentHandle, lines []string) string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	var parts []string
	for i := start; i < len(lines) && !isBlank(lines[i]); i++ {
		if i-start >= maxTitleLines {
			return ""
		}
		line := collapse(lines[i])
		if i == start && isHeading(line) {
			return ""
		}
		if g.dropName && namesDocument(h, line) {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

func isHeading(line string) bool {
	lower := strings.ToLower(line)
	for _, heading := range headings {
		if strings.HasPrefix(lower, heading) {
			return true
		}
	}
	return false
}

func namesDocument(h rfz.DocumentHandle, line string) bool {
	lower := strings.ToLower(line)
	return (h.Name != "" && strings.Contains(lower, h.Name)) || (h.ID != "" && strings.Contains(lower, h.ID))
}

func setOnce(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
