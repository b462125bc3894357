package rsync_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/rsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults", func(t *testing.T) {
		t.Parallel()

		args := rsync.Args(rfz.SyncOptions{Dir: "/data/rfz"})

		assert.Equal(t, []string{
			"--archive", "--compress",
			"--include=*.html",
			"--exclude=**", "--prune-empty-dirs",
			"rsync.tools.ietf.org::tools.html", "/data/rfz",
		}, args)
	})

	t.Run("passes verbosity and includes through", func(t *testing.T) {
		t.Parallel()

		args := rsync.Args(rfz.SyncOptions{
			Remote:    "example.org::docs",
			Dir:       "/data/rfz",
			Include:   []string{"rfc*.txt", "draft-*.txt"},
			Verbosity: 2,
		})

		assert.Equal(t, []string{
			"-vv", "--archive", "--compress",
			"--include=rfc*.txt", "--include=draft-*.txt",
			"--exclude=**", "--prune-empty-dirs",
			"example.org::docs", "/data/rfz",
		}, args)
	})
}

func TestSyncer_Sync(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and runs command", func(t *testing.T) {
		t.Parallel()

		echo, err := exec.LookPath("echo")
		if err != nil {
			t.Skip("echo not available")
		}
		dir := filepath.Join(t.TempDir(), "mirror")
		var stdout bytes.Buffer

		err = rsync.NewSyncer(echo, &stdout, &bytes.Buffer{}).Sync(context.Background(), rfz.SyncOptions{Dir: dir})

		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Contains(t, stdout.String(), "--prune-empty-dirs rsync.tools.ietf.org::tools.html "+dir)
	})

	t.Run("returns error on failing command", func(t *testing.T) {
		t.Parallel()

		falseCmd, err := exec.LookPath("false")
		if err != nil {
			t.Skip("false not available")
		}

		err = rsync.NewSyncer(falseCmd, nil, nil).Sync(context.Background(), rfz.SyncOptions{Dir: t.TempDir()})

		require.Error(t, err)
		assert.Contains(t, rfz.ErrorMessage(err), "failed")
	})

	t.Run("returns EINVALID for missing command", func(t *testing.T) {
		t.Parallel()

		err := rsync.NewSyncer("rfz-no-such-command", nil, nil).Sync(context.Background(), rfz.SyncOptions{Dir: t.TempDir()})

		assert.Equal(t, rfz.EINVALID, rfz.ErrorCode(err))
	})

	t.Run("requires a directory", func(t *testing.T) {
		t.Parallel()

		err := rsync.NewSyncer("", nil, nil).Sync(context.Background(), rfz.SyncOptions{})

		assert.Equal(t, rfz.EINVALID, rfz.ErrorCode(err))
	})
}
