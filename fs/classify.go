package fs

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/rfz"
)

var (
	rfcBaseRe   = regexp.MustCompile(`^rfc(\d+)$`)
	numericRe   = regexp.MustCompile(`^\d+$`)
	draftBaseRe = regexp.MustCompile(`^(draft-[a-z0-9][a-z0-9._+-]*?)-(\d{2})$`)
)

// rfcDirs are directory names whose numeric-only files are RFCs.
var rfcDirs = map[string]bool{"rfc": true, "rfcs": true}

// Classify derives the document kind, format and identifier from a path.
// It never fails: unrecognized names are KindOther.
func Classify(path string) rfz.DocumentHandle {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	format := formatOf(ext)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base = name
	}

	h := rfz.DocumentHandle{
		Path:   path,
		Base:   base,
		Format: format,
		Kind:   rfz.KindOther,
		ID:     strings.ToLower(base),
	}
	h.Name = h.ID

	switch {
	case rfcBaseRe.MatchString(h.ID):
		h.Kind = rfz.KindRFC
	case numericRe.MatchString(h.ID) && rfcDirs[strings.ToLower(filepath.Base(filepath.Dir(path)))]:
		h.Kind = rfz.KindRFC
		h.ID = "rfc" + h.ID
		h.Name = h.ID
	default:
		if m := draftBaseRe.FindStringSubmatch(h.ID); m != nil {
			h.Kind = rfz.KindDraft
			h.Name = m[1]
			h.Version = m[2]
		}
	}
	return h
}

func formatOf(ext string) rfz.Format {
	switch strings.ToLower(ext) {
	case "", ".txt":
		return rfz.FormatText
	case ".html", ".htm":
		return rfz.FormatHTML
	case ".xml":
		return rfz.FormatXML
	default:
		return rfz.FormatUnknown
	}
}
