package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	domainerrors "foodbridge/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	s := NewBlobStorage(bucket, "/uploads/").(*blobStorage)
	s.now = func() time.Time { return time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC) }

	return s
}

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	key, err := s.Save(ctx, ".PNG", "image/png", strings.NewReader("fake-png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "donations/2026/04/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "/uploads/"+key, s.PublicURL(key))

	obj, err := s.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	require.NoError(t, obj.Body.Close())
	assert.Equal(t, "fake-png", string(body))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len("fake-png")), obj.Size)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Open(ctx, key)
	assert.ErrorIs(t, err, domainerrors.ErrObjectNotFound)

	assert.NoError(t, s.Delete(ctx, key), "deleting twice is not an error")
}

func TestBlobStorage_OpenRejectsTraversal(t *testing.T) {
	s := newTestStorage(t)

	for _, key := range []string{"", "/etc/passwd", "../secret", "donations/../../x"} {
		_, err := s.Open(context.Background(), key)
		assert.ErrorIs(t, err, domainerrors.ErrObjectNotFound, key)
	}
}
