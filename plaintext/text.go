// Package plaintext parses the page headers of plain-text RFCs and
// Internet-Drafts.
package plaintext

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// columnSep separates the left and right header columns.
var columnSep = regexp.MustCompile(`\s{2,}`)

// decode converts a header prefix to text. It reports false for prefixes
// that look binary. Text that is not UTF-8 is read as ISO 8859-1, which is
// what older mirrored RFCs use.
func decode(b []byte) (string, bool) {
	if bytes.IndexByte(b, 0) >= 0 || controlHeavy(b) {
		return "", false
	}
	b = trimPartialRune(b)
	if utf8.Valid(b) {
		return string(b), true
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// controlHeavy reports whether more than a tenth of b is control bytes other
// than the whitespace and page breaks found in text documents.
func controlHeavy(b []byte) bool {
	n := 0
	for _, c := range b {
		if (c < 0x20 && c != '\t' && c != '\n' && c != '\r' && c != '\f') || c == 0x7f {
			n++
		}
	}
	return n*10 > len(b)
}

// trimPartialRune drops a multi-byte sequence cut off by the read limit.
func trimPartialRune(b []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			break
		}
	}
	return b
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		lines[i] = strings.ReplaceAll(line, "\f", "")
	}
	return lines
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
