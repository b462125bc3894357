package rfz_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/rfz"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_FormatLine(t *testing.T) {
	t.Parallel()

	t.Run("renders fields in fixed order", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{
			ID:      "rfc2119",
			Path:    "/mirror/rfc/rfc2119.txt",
			Title:   "Key words for use in RFCs to Indicate Requirement Levels",
			Date:    rfz.Date{Year: 1997, Month: time.March},
			Authors: []string{"S. Bradner"},
			Status:  "Best Current Practice",
		}

		line := rfz.NewFormatter().FormatLine(m)

		assert.Equal(t, "/mirror/rfc/rfc2119.txt\trfc2119\tKey words for use in RFCs to Indicate Requirement Levels\tMarch 1997\tS. Bradner\tBest Current Practice", line)
	})

	t.Run("keeps empty columns for absent fields", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{ID: "rfc0000", Path: "/mirror/rfc/rfc0000.txt"}

		line := rfz.NewFormatter().FormatLine(m)

		assert.Equal(t, "/mirror/rfc/rfc0000.txt\trfc0000\t\t\t\t", line)
	})

	t.Run("produces one line when fields contain delimiters and newlines", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{
			ID:      "draft-ietf-foo-01",
			Path:    "/mirror/draft-ietf-foo-01.txt",
			Title:   "A\ttitle\nspanning\r\nlines",
			Authors: []string{"A.\tPerson", "B. Other\n"},
		}

		line := rfz.NewFormatter().FormatLine(m)

		assert.NotContains(t, line, "\n")
		assert.NotContains(t, line, "\r")
		assert.Len(t, strings.Split(line, "\t"), 6)
		assert.Contains(t, line, "A title spanning lines")
		assert.Contains(t, line, "A. Person, B. Other")
	})

	t.Run("escapes custom delimiter", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{ID: "rfc1", Path: "/m/rfc1.txt", Title: "Host | Software"}
		f := &rfz.Formatter{Delimiter: "|"}

		line := f.FormatLine(m)

		assert.Equal(t, "/m/rfc1.txt|rfc1|Host Software|||", line)
	})

	t.Run("falls back to tab for delimiters that break lines or fields", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{
			ID:      "rfc2119",
			Path:    "/m/rfc2119.txt",
			Title:   "Key words for use",
			Authors: []string{"S. Bradner"},
		}

		for _, delim := range []string{"\n", "\r\n", " ", "   "} {
			line := (&rfz.Formatter{Delimiter: delim}).FormatLine(m)

			assert.NotContains(t, line, "\n", "delimiter %q", delim)
			assert.Len(t, strings.Split(line, "\t"), 6, "delimiter %q", delim)
		}
	})

	t.Run("keeps author list intact with comma delimiter", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{ID: "rfc9110", Path: "/m/rfc9110.txt", Authors: []string{"R. Fielding", "M. Nottingham"}}

		line := (&rfz.Formatter{Delimiter: ", "}).FormatLine(m)

		assert.Equal(t, "/m/rfc9110.txt, rfc9110, , , R. Fielding; M. Nottingham, ", line)
		assert.Len(t, strings.Split(line, ", "), 6)
	})

	t.Run("applies styler to populated fields", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{ID: "rfc1", Path: "/m/rfc1.txt"}
		f := &rfz.Formatter{Styler: upperIDStyler{}}

		line := f.FormatLine(m)

		assert.Equal(t, "/m/rfc1.txt\t[rfc1]\t\t\t\t", line)
	})
}

func TestValidateDelimiter(t *testing.T) {
	t.Parallel()

	for _, delim := range []string{"\t", "|", ",", ", ", " | ", "\t\t"} {
		assert.NoError(t, rfz.ValidateDelimiter(delim), "delimiter %q", delim)
	}
	for _, delim := range []string{"", "\n", "a\rb", " ", "  ", "\t "} {
		assert.Equal(t, rfz.EINVALID, rfz.ErrorCode(rfz.ValidateDelimiter(delim)), "delimiter %q", delim)
	}
}

func TestFormatter_FormatSummary(t *testing.T) {
	t.Parallel()

	t.Run("renders populated fields as labelled lines", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{
			ID:        "rfc8174",
			Path:      "/mirror/rfc8174.txt",
			Title:     "Ambiguity of Uppercase vs Lowercase in RFC 2119 Key Words",
			Date:      rfz.Date{Year: 2017, Month: time.May},
			Authors:   []string{"B. Leiba"},
			Status:    "Best Current Practice",
			Stream:    "Internet Engineering Task Force (IETF)",
			Updates:   "2119",
			Obsoletes: "",
		}

		out := rfz.NewFormatter().FormatSummary(m)

		expected := strings.Join([]string{
			"Identifier: rfc8174",
			"Path: /mirror/rfc8174.txt",
			"Title: Ambiguity of Uppercase vs Lowercase in RFC 2119 Key Words",
			"Date: May 2017",
			"Author: B. Leiba",
			"Status: Best Current Practice",
			"Stream: Internet Engineering Task Force (IETF)",
			"Updates: 2119",
		}, "\n")
		assert.Equal(t, expected, out)
	})

	t.Run("renders one author line per author", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{ID: "rfc9110", Path: "/m/rfc9110.txt", Authors: []string{"R. Fielding, Ed.", "M. Nottingham, Ed.", "J. Reschke, Ed."}}

		out := rfz.NewFormatter().FormatSummary(m)

		assert.Equal(t, 3, strings.Count(out, "Author: "))
		assert.Less(t, strings.Index(out, "Fielding"), strings.Index(out, "Reschke"))
	})

	t.Run("ends with the description", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{
			ID:          "rfc2119",
			Path:        "/m/rfc2119.html",
			Expires:     "never",
			Description: "In many standards track documents\n   several words are used.",
		}

		out := rfz.NewFormatter().FormatSummary(m)

		assert.True(t, strings.HasSuffix(out, "\nDescription: In many standards track documents several words are used."), out)
		assert.NotContains(t, rfz.NewFormatter().FormatLine(m), "standards track")
	})

	t.Run("omits absent fields entirely", func(t *testing.T) {
		t.Parallel()

		m := &rfz.Metadata{ID: "rfc0000", Path: "/mirror/rfc/rfc0000.txt"}

		out := rfz.NewFormatter().FormatSummary(m)

		assert.Equal(t, "Identifier: rfc0000\nPath: /mirror/rfc/rfc0000.txt", out)
		assert.NotContains(t, out, "Title")
		assert.NotContains(t, out, "Date")
	})
}

type upperIDStyler struct{}

func (upperIDStyler) Style(field rfz.Field, _ *rfz.Metadata, text string) string {
	if field == rfz.FieldID {
		return "[" + text + "]"
	}
	return text
}
