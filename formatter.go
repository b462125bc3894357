package rfz

import "strings"

// DefaultDelimiter separates fields in line mode.
const DefaultDelimiter = "\t"

// Field identifies a rendered piece of a record for styling.
type Field int

// Field constants.
const (
	FieldPath Field = iota
	FieldID
	FieldTitle
	FieldDate
	FieldAuthors
	FieldStatus
	FieldLabel
	FieldDescription
)

// Styler decorates rendered text, e.g. with terminal colours. It is applied
// after escaping, so it must not introduce whitespace or delimiters.
type Styler interface {
	Style(field Field, m *Metadata, text string) string
}

// Formatter renders records as index lines or summary blocks.
type Formatter struct {
	// Delimiter separates line-mode fields. Defaults to DefaultDelimiter.
	Delimiter string

	// Styler is optional.
	Styler Styler
}

// NewFormatter returns a Formatter using the default delimiter and no styling.
func NewFormatter() *Formatter {
	return &Formatter{Delimiter: DefaultDelimiter}
}

// FormatLine renders m as exactly one line with the fields path, id, title,
// date, authors and status in that order. Absent fields render empty so the
// column positions stay fixed.
func (f *Formatter) FormatLine(m *Metadata) string {
	delim := f.delimiter()
	fields := []struct {
		field Field
		text  string
	}{
		{FieldPath, m.Path},
		{FieldID, m.ID},
		{FieldTitle, m.Title},
		{FieldDate, m.Date.String()},
		{FieldAuthors, strings.Join(m.Authors, authorSeparator(delim))},
		{FieldStatus, m.Status},
	}

	parts := make([]string, 0, len(fields))
	for _, fd := range fields {
		parts = append(parts, f.style(fd.field, m, escapeField(fd.text, delim)))
	}
	return strings.Join(parts, delim)
}

// FormatSummary renders every populated field of m as a "Label: value" line.
// Absent fields are omitted, so the identifier and path are always present
// and nothing else is guaranteed.
func (f *Formatter) FormatSummary(m *Metadata) string {
	var b strings.Builder
	line := func(label string, field Field, value string) {
		value = collapseSpace(value)
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.style(FieldLabel, m, label+":"))
		b.WriteByte(' ')
		b.WriteString(f.style(field, m, value))
	}

	line("Identifier", FieldID, m.ID)
	line("Path", FieldPath, m.Path)
	line("Title", FieldTitle, m.Title)
	line("Date", FieldDate, m.Date.String())
	for _, author := range m.Authors {
		line("Author", FieldAuthors, author)
	}
	line("Status", FieldStatus, m.Status)
	line("Stream", FieldStatus, m.Stream)
	line("Obsoletes", FieldStatus, m.Obsoletes)
	line("Obsoleted by", FieldStatus, m.ObsoletedBy)
	line("Updates", FieldStatus, m.Updates)
	line("Updated by", FieldStatus, m.UpdatedBy)
	line("Expires", FieldStatus, m.Expires)
	line("Description", FieldDescription, m.Description)

	return b.String()
}

// delimiter returns the configured delimiter, or DefaultDelimiter when it is
// unset or could not keep one record per line.
func (f *Formatter) delimiter() string {
	if ValidateDelimiter(f.Delimiter) != nil {
		return DefaultDelimiter
	}
	return f.Delimiter
}

// ValidateDelimiter returns EINVALID for a delimiter that cannot separate
// line-mode fields: an empty one, one containing a line break, or one made
// only of spaces, which escaping would fold back into the delimiter. Tabs
// are allowed because escaping removes them from field text.
func ValidateDelimiter(delim string) error {
	switch {
	case delim == "":
		return Errorf(EINVALID, "delimiter must not be empty")
	case strings.ContainsAny(delim, "\r\n\v\f"):
		return Errorf(EINVALID, "delimiter must not contain a line break")
	case strings.TrimSpace(delim) == "" && strings.Trim(delim, "\t") != "":
		return Errorf(EINVALID, "delimiter must not be only spaces")
	}
	return nil
}

// authorSeparator joins authors with ", " unless that would collide with
// the delimiter.
func authorSeparator(delim string) string {
	if strings.Contains(delim, ",") {
		return "; "
	}
	return ", "
}

func (f *Formatter) style(field Field, m *Metadata, text string) string {
	if f.Styler == nil || text == "" {
		return text
	}
	return f.Styler.Style(field, m, text)
}

// escapeField makes s safe for one delimited column: whitespace runs
// (including newlines and tabs) become a single space and any remaining
// delimiter occurrence is replaced by a space.
func escapeField(s, delim string) string {
	s = collapseSpace(s)
	if delim != "" && strings.Contains(s, delim) {
		s = collapseSpace(strings.ReplaceAll(s, delim, " "))
	}
	return s
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
