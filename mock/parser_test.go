package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataParser_ParseMetadata(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ParseMetadataFn", func(t *testing.T) {
		t.Parallel()

		var calledWith rfz.DocumentHandle
		p := &mock.MetadataParser{
			ParseMetadataFn: func(_ context.Context, h rfz.DocumentHandle) (*rfz.Metadata, error) {
				calledWith = h
				return rfz.NewMetadata(h), nil
			},
		}

		m, err := p.ParseMetadata(context.Background(), rfz.DocumentHandle{ID: "rfc1", Path: "/m/rfc1.txt"})

		require.NoError(t, err)
		assert.Equal(t, "rfc1", calledWith.ID)
		assert.Equal(t, "/m/rfc1.txt", m.Path)
	})
}

func TestHandles(t *testing.T) {
	t.Parallel()

	seq := mock.Handles(rfz.DocumentHandle{ID: "a"}, rfz.DocumentHandle{ID: "b"}, rfz.DocumentHandle{ID: "c"})

	var ids []string
	for h := range seq {
		ids = append(ids, h.ID)
		if h.ID == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, ids)
}
