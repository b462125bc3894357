package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Mirror Traversal
// The scanner yields every document in the mirror, in a stable order,
// without failing on individual broken entries.

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func collect(t *testing.T, s *fs.Scanner, root string, diag rfz.Diagnostics) []rfz.DocumentHandle {
	t.Helper()
	seq, err := s.Scan(context.Background(), root, diag)
	require.NoError(t, err)
	var out []rfz.DocumentHandle
	for h := range seq {
		out = append(out, h)
	}
	return out
}

func relPaths(t *testing.T, root string, handles []rfz.DocumentHandle) []string {
	t.Helper()
	var out []string
	for _, h := range handles {
		rel, err := filepath.Rel(root, h.Path)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestScanner_YieldsDocumentsInLexicalOrder(t *testing.T) {
	t.Parallel()

	// Given a mirror with RFCs, drafts and an unrecognized file
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rfc", "rfc2119.txt"), "rfc")
	writeFile(t, filepath.Join(root, "rfc", "rfc0791.txt"), "rfc")
	writeFile(t, filepath.Join(root, "drafts", "draft-ietf-foo-bar-03.txt"), "draft")
	writeFile(t, filepath.Join(root, "notes.pdf"), "%PDF")

	// When I scan it
	handles := collect(t, fs.NewScanner(), root, nil)

	// Then every file is yielded in lexical order with its kind
	assert.Equal(t, []string{
		"drafts/draft-ietf-foo-bar-03.txt",
		"notes.pdf",
		"rfc/rfc0791.txt",
		"rfc/rfc2119.txt",
	}, relPaths(t, root, handles))
	assert.Equal(t, rfz.KindDraft, handles[0].Kind)
	assert.Equal(t, rfz.KindOther, handles[1].Kind)
	assert.Equal(t, rfz.KindRFC, handles[2].Kind)
	assert.True(t, filepath.IsAbs(handles[0].Path))
}

func TestScanner_SkipsHiddenEntries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "rfc1.txt"), "x")
	writeFile(t, filepath.Join(root, ".rfc2.txt"), "x")
	writeFile(t, filepath.Join(root, "rfc3.txt"), "x")

	handles := collect(t, fs.NewScanner(), root, nil)

	assert.Equal(t, []string{"rfc3.txt"}, relPaths(t, root, handles))
}

func TestScanner_ScanIsRepeatable(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"rfc3.txt", "rfc1.txt", "sub/rfc2.txt", "draft-a-b-01.txt"} {
		writeFile(t, filepath.Join(root, name), "x")
	}
	s := fs.NewScanner()

	first := collect(t, s, root, nil)
	second := collect(t, s, root, nil)

	assert.Equal(t, first, second)
}

func TestScanner_RespectsMaxDepth(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "rfc1.txt"), "x")
	writeFile(t, filepath.Join(root, "a", "b", "rfc2.txt"), "x")

	handles := collect(t, &fs.Scanner{MaxDepth: 1}, root, nil)

	assert.Equal(t, []string{"a/rfc1.txt"}, relPaths(t, root, handles))
}

func TestScanner_FollowsSymlinksWithoutLooping(t *testing.T) {
	t.Parallel()

	// Given a mirror with a symlink back to its own root
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rfc", "rfc1.txt"), "x")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "rfc", "loop")))

	// And a symlinked directory outside the tree
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "rfc2.txt"), "x")
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linked")))

	// When I scan it
	handles := collect(t, fs.NewScanner(), root, nil)

	// Then each document appears once and the loop is not walked
	var ids []string
	for _, h := range handles {
		ids = append(ids, h.ID)
	}
	assert.ElementsMatch(t, []string{"rfc1", "rfc2"}, ids)
}

func TestScanner_ReportsBrokenSymlinkAndContinues(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rfc1.txt"), "x")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.txt"), filepath.Join(root, "rfc0.txt")))
	diag := &rfz.DiagnosticLog{}

	handles := collect(t, fs.NewScanner(), root, diag)

	assert.Equal(t, []string{"rfc1.txt"}, relPaths(t, root, handles))
	require.Equal(t, 1, diag.Count(rfz.DiagnosticScan))
	assert.Equal(t, filepath.Join(root, "rfc0.txt"), diag.All()[0].Path)
}

func TestScanner_StopsWhenConsumerStops(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"rfc1.txt", "rfc2.txt", "rfc3.txt"} {
		writeFile(t, filepath.Join(root, name), "x")
	}

	seq, err := fs.NewScanner().Scan(context.Background(), root, nil)
	require.NoError(t, err)

	var n int
	for range seq {
		n++
		if n == 2 {
			break
		}
	}

	assert.Equal(t, 2, n)
}

func TestScanner_StopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rfc1.txt"), "x")
	ctx, cancel := context.WithCancel(context.Background())

	seq, err := fs.NewScanner().Scan(ctx, root, nil)
	require.NoError(t, err)
	cancel()

	var n int
	for range seq {
		n++
	}
	assert.Zero(t, n)
}

func TestScanner_RootErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing root is EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewScanner().Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)

		assert.Equal(t, rfz.EINVALID, rfz.ErrorCode(err))
		assert.Contains(t, rfz.ErrorMessage(err), "does not exist")
	})

	t.Run("file root is EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rfc1.txt")
		writeFile(t, path, "x")

		_, err := fs.NewScanner().Scan(context.Background(), path, nil)

		assert.Equal(t, rfz.EINVALID, rfz.ErrorCode(err))
	})
}
