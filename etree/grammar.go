// Package etree parses the front matter of xml2rfc source documents.
package etree

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/dateparse"
)

// categories maps xml2rfc category codes to the names used in text headers.
var categories = map[string]string{
	"std":      "Standards Track",
	"bcp":      "Best Current Practice",
	"info":     "Informational",
	"exp":      "Experimental",
	"historic": "Historic",
}

// Ensure Grammar implements rfz.Grammar at compile time.
var _ rfz.Grammar = (*Grammar)(nil)

// Grammar reads the <rfc> element and its <front> section.
type Grammar struct{}

// NewGrammar creates a new Grammar.
func NewGrammar() *Grammar {
	return &Grammar{}
}

// Parse implements rfz.Grammar. The prefix is usually cut off mid-document,
// so a read error keeps whatever elements were built before it.
func (g *Grammar) Parse(h rfz.DocumentHandle, prefix []byte) *rfz.Metadata {
	m := rfz.NewMetadata(h)

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	_ = doc.ReadFromBytes(prefix)

	root := doc.SelectElement("rfc")
	if root == nil {
		return m
	}

	m.Status = category(root.SelectAttrValue("category", ""))
	m.Stream = root.SelectAttrValue("submissionType", "")
	m.Obsoletes = collapse(root.SelectAttrValue("obsoletes", ""))
	m.Updates = collapse(root.SelectAttrValue("updates", ""))

	front := root.SelectElement("front")
	if front == nil {
		return m
	}

	if title := front.SelectElement("title"); title != nil {
		m.Title = collapse(title.Text())
	}
	for _, author := range front.SelectElements("author") {
		m.AddAuthor(authorName(author))
	}
	if date := front.SelectElement("date"); date != nil {
		m.Date = parseDate(date)
	}
	if abstract := front.SelectElement("abstract"); abstract != nil {
		m.Description = collapse(text(abstract))
	}
	for _, info := range front.SelectElements("seriesInfo") {
		if m.Status == "" {
			m.Status = info.SelectAttrValue("status", "")
		}
		if m.Stream == "" {
			m.Stream = info.SelectAttrValue("stream", "")
		}
	}
	return m
}

// authorName renders an author the way text headers do ("R. Fielding, Ed."),
// falling back to the full name.
func authorName(e *etree.Element) string {
	initials := strings.TrimSpace(e.SelectAttrValue("initials", ""))
	surname := strings.TrimSpace(e.SelectAttrValue("surname", ""))

	var name string
	switch {
	case initials != "" && surname != "":
		name = initials + " " + surname
	case e.SelectAttrValue("fullname", "") != "":
		name = e.SelectAttrValue("fullname", "")
	default:
		name = surname
	}
	name = collapse(name)
	if name != "" && e.SelectAttrValue("role", "") == "editor" {
		name += ", Ed."
	}
	return name
}

func parseDate(e *etree.Element) rfz.Date {
	year, err := strconv.Atoi(strings.TrimSpace(e.SelectAttrValue("year", "")))
	if err != nil {
		return rfz.Date{}
	}
	month := strings.TrimSpace(e.SelectAttrValue("month", ""))
	day, _ := strconv.Atoi(strings.TrimSpace(e.SelectAttrValue("day", "")))

	if n, err := strconv.Atoi(month); err == nil {
		if n < 1 || n > 12 {
			return rfz.Date{Year: year}
		}
		return rfz.Date{Year: year, Month: time.Month(n), Day: day}
	}
	if month == "" {
		return rfz.Date{Year: year}
	}
	d, ok := dateparse.Parse(month + " " + strconv.Itoa(year))
	if !ok {
		return rfz.Date{Year: year}
	}
	if day >= 1 && day <= 31 {
		d.Day = day
	}
	return d
}

// text concatenates the character data of e and all its descendants.
func text(e *etree.Element) string {
	var b strings.Builder
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(text(t))
		}
	}
	return b.String()
}

func category(code string) string {
	if name, ok := categories[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
