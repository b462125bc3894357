package rfz

import (
	"fmt"
	"iter"
	"sort"
	"strconv"
	"strings"
)

// DuplicatePolicy decides which record survives when two documents map to
// the same identifier.
type DuplicatePolicy int

// DuplicatePolicy constants.
const (
	// FirstWins keeps the earliest record in scan order.
	FirstWins DuplicatePolicy = iota
	// LastWins keeps the latest record in scan order.
	LastWins
)

// String returns the configuration name of the policy.
func (p DuplicatePolicy) String() string {
	if p == LastWins {
		return "last"
	}
	return "first"
}

// ParseDuplicatePolicy parses "first" or "last". An empty string is FirstWins.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first", "first-wins":
		return FirstWins, nil
	case "last", "last-wins":
		return LastWins, nil
	}
	return FirstWins, Errorf(EINVALID, "unknown duplicate policy %q", s)
}

// Index is an ordered, read-only collection of metadata keyed by identifier.
type Index struct {
	records []*Metadata
	byID    map[string]*Metadata
}

// BuildIndex builds an Index from records in scan order. Records that fail
// validation are reported as parse diagnostics. Records whose identifier is
// already taken are resolved by policy and reported as duplicates.
func BuildIndex(records []*Metadata, policy DuplicatePolicy, diag Diagnostics) *Index {
	if diag == nil {
		diag = DiscardDiagnostics
	}

	valid := make([]*Metadata, 0, len(records))
	for _, m := range records {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			diag.Report(Diagnostic{Kind: DiagnosticParse, Path: m.Path, ID: m.ID, Err: err})
			continue
		}
		valid = append(valid, m)
	}

	// winner maps each identifier to the position of its surviving record.
	winner := make(map[string]int, len(valid))
	for i, m := range valid {
		if _, ok := winner[m.ID]; ok && policy == FirstWins {
			continue
		}
		winner[m.ID] = i
	}

	idx := &Index{
		records: make([]*Metadata, 0, len(winner)),
		byID:    make(map[string]*Metadata, len(winner)),
	}
	for i, m := range valid {
		if winner[m.ID] != i {
			kept := valid[winner[m.ID]]
			diag.Report(Diagnostic{
				Kind: DiagnosticDuplicate,
				Path: m.Path,
				ID:   m.ID,
				Err:  duplicateError(m, kept),
			})
			continue
		}
		idx.records = append(idx.records, m)
		idx.byID[m.ID] = m
	}
	return idx
}

func duplicateError(dropped, kept *Metadata) error {
	if dropped.Hash != "" && dropped.Hash == kept.Hash {
		return Errorf(ECONFLICT, "identical header to %s", kept.Path)
	}
	return Errorf(ECONFLICT, "identifier already taken by %s", kept.Path)
}

// Len returns the number of records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Records returns the records in index order. The slice is a copy; the
// records themselves are shared and must not be modified.
func (idx *Index) Records() []*Metadata {
	out := make([]*Metadata, len(idx.records))
	copy(out, idx.records)
	return out
}

// Enumerate yields (identifier, record) pairs in index order.
func (idx *Index) Enumerate() iter.Seq2[string, *Metadata] {
	return func(yield func(string, *Metadata) bool) {
		for _, m := range idx.records {
			if !yield(m.ID, m) {
				return
			}
		}
	}
}

// Lookup returns the record for id. Identifiers are matched case-insensitively.
// Returns ENOTFOUND if no document has that identifier.
func (idx *Index) Lookup(id string) (*Metadata, error) {
	key := NormalizeID(id)
	if m, ok := idx.byID[key]; ok {
		return m, nil
	}
	return nil, Errorf(ENOTFOUND, "document %q not found", key)
}

// NormalizeID returns the canonical form of a user-supplied identifier.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// FilterPrefixes returns the records whose identifier starts with one of
// prefixes. With no prefixes every record is returned.
func FilterPrefixes(records []*Metadata, prefixes []string) []*Metadata {
	if len(prefixes) == 0 {
		return records
	}
	out := make([]*Metadata, 0, len(records))
	for _, m := range records {
		for _, p := range prefixes {
			if strings.HasPrefix(m.ID, NormalizeID(p)) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Latest keeps the n highest versions of each document name, preserving
// the relative order of the survivors. Documents without versions have a
// unique name and are always kept.
func Latest(records []*Metadata, n int) []*Metadata {
	if n <= 0 {
		return nil
	}

	byName := make(map[string][]int)
	for i, m := range records {
		byName[latestKey(m)] = append(byName[latestKey(m)], i)
	}

	keep := make(map[int]bool, len(records))
	for _, positions := range byName {
		sort.SliceStable(positions, func(a, b int) bool {
			return versionNumber(records[positions[a]]) > versionNumber(records[positions[b]])
		})
		for _, pos := range positions[:min(n, len(positions))] {
			keep[pos] = true
		}
	}

	out := make([]*Metadata, 0, len(keep))
	for i, m := range records {
		if keep[i] {
			out = append(out, m)
		}
	}
	return out
}

func latestKey(m *Metadata) string {
	if m.Name == "" {
		return m.ID
	}
	return fmt.Sprintf("%s/%s", m.Kind, m.Name)
}

func versionNumber(m *Metadata) int {
	v, err := strconv.Atoi(m.Version)
	if err != nil {
		return -1
	}
	return v
}
