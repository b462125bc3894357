package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/fs"
	"github.com/fwojciec/rfz/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGrammar captures the prefix it was given.
func recordingGrammar(got *[]byte) *mock.Grammar {
	return &mock.Grammar{ParseFn: func(h rfz.DocumentHandle, header []byte) *rfz.Metadata {
		*got = header
		m := rfz.NewMetadata(h)
		m.Title = "parsed"
		return m
	}}
}

func TestParser_ParseMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads at most the text header limit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rfc1.txt")
		writeFile(t, path, strings.Repeat("a", fs.DefaultTextLimit*3))
		var got []byte
		p := fs.NewParser(fs.NewRegistry(recordingGrammar(&got)))

		m, err := p.ParseMetadata(context.Background(), fs.Classify(path))

		require.NoError(t, err)
		assert.Len(t, got, fs.DefaultTextLimit)
		assert.Equal(t, "parsed", m.Title)
		assert.Equal(t, "rfc1", m.ID)
		assert.NotEmpty(t, m.Hash)
	})

	t.Run("uses the markup limit for HTML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rfc1.html")
		writeFile(t, path, strings.Repeat("a", fs.DefaultMarkupLimit+10))
		var got []byte
		p := fs.NewParser(fs.NewRegistry(recordingGrammar(&got)))

		_, err := p.ParseMetadata(context.Background(), fs.Classify(path))

		require.NoError(t, err)
		assert.Len(t, got, fs.DefaultMarkupLimit)
	})

	t.Run("honours overridden limits", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rfc1.txt")
		writeFile(t, path, "0123456789")
		var got []byte
		p := &fs.Parser{Grammars: fs.NewRegistry(recordingGrammar(&got)), TextLimit: 4}

		_, err := p.ParseMetadata(context.Background(), fs.Classify(path))

		require.NoError(t, err)
		assert.Equal(t, "0123", string(got))
	})

	t.Run("keeps identity from the file name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rfc2119.txt")
		writeFile(t, path, "x")
		g := &mock.Grammar{ParseFn: func(h rfz.DocumentHandle, _ []byte) *rfz.Metadata {
			return &rfz.Metadata{ID: "bogus", Title: "t"}
		}}

		m, err := fs.NewParser(fs.NewRegistry(g)).ParseMetadata(context.Background(), fs.Classify(path))

		require.NoError(t, err)
		assert.Equal(t, "rfc2119", m.ID)
		assert.Equal(t, path, m.Path)
		assert.Equal(t, rfz.KindRFC, m.Kind)
		assert.Equal(t, "t", m.Title)
	})

	t.Run("empty file yields minimal record", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rfc0000.txt")
		writeFile(t, path, "")
		g := &mock.Grammar{ParseFn: func(rfz.DocumentHandle, []byte) *rfz.Metadata { return nil }}

		m, err := fs.NewParser(fs.NewRegistry(g)).ParseMetadata(context.Background(), fs.Classify(path))

		require.NoError(t, err)
		assert.Equal(t, rfz.NewMetadata(fs.Classify(path)), m)
	})

	t.Run("identical prefixes hash identically", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := filepath.Join(dir, "rfc1.txt")
		b := filepath.Join(dir, "copy", "rfc1.txt")
		writeFile(t, a, "same header")
		writeFile(t, b, "same header")
		p := fs.NewParser(fs.NewRegistry(&mock.Grammar{ParseFn: func(h rfz.DocumentHandle, _ []byte) *rfz.Metadata {
			return rfz.NewMetadata(h)
		}}))

		ma, err := p.ParseMetadata(context.Background(), fs.Classify(a))
		require.NoError(t, err)
		mb, err := p.ParseMetadata(context.Background(), fs.Classify(b))
		require.NoError(t, err)

		assert.Equal(t, ma.Hash, mb.Hash)
	})

	t.Run("returns error for unreadable file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rfc1.txt")
		g := &mock.Grammar{ParseFn: func(rfz.DocumentHandle, []byte) *rfz.Metadata {
			t.Fatal("grammar must not be called")
			return nil
		}}

		m, err := fs.NewParser(fs.NewRegistry(g)).ParseMetadata(context.Background(), fs.Classify(path))

		assert.Nil(t, m)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewParser(fs.NewRegistry(nil)).ParseMetadata(ctx, rfz.DocumentHandle{Path: "/nope"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
