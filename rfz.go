// Package rfz indexes a local mirror of IETF documents (RFCs,
// Internet-Drafts and related tools-generated files) and renders
// per-document metadata for a fuzzy-finder pipeline.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, fs/).
package rfz
