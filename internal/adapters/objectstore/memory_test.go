package objectstore

import (
	"context"
	"testing"

	"pricesplash/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ListFiltersByPrefixSorted(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, key := range []string{"images/b.png", "images/a.png", "splash.png", "images2/c.png"} {
		require.NoError(t, s.Put(ctx, domain.Object{Key: key}))
	}

	infos, err := s.List(ctx, domain.SplashSourcePrefix)
	require.NoError(t, err)
	require.Equal(t, []domain.ObjectInfo{{Key: "images/a.png"}, {Key: "images/b.png"}}, infos)
}

func TestMemoryStore_GetMiss(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "images/none.png")
	require.ErrorIs(t, err, domain.ErrObjectNotFound)
}

func TestMemoryStore_PutGetCopiesBody(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	body := []byte("png")
	require.NoError(t, s.Put(ctx, domain.Object{Key: "k", Body: body, ContentType: "image/png"}))
	body[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "png", string(got.Body))
	require.Equal(t, "image/png", got.ContentType)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, domain.Object{Key: "k"}))

	s.Delete("k")

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, domain.ErrObjectNotFound)
}
