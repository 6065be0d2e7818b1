package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	st, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	return st
}

func TestSaveAndGet(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	err := st.Save(ctx, "banners/a.jpg", bytes.NewReader([]byte("jpeg")), "image/jpeg")
	require.NoError(t, err)

	rc, err := st.Get(ctx, "banners/a.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	size, err := st.GetSize(ctx, "banners/a.jpg")
	require.NoError(t, err)
	assert.EqualValues(t, 4, size)
}

func TestExistsAndDelete(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "categoryImg/x.png", bytes.NewReader([]byte("png")), "image/png"))

	ok, err := st.Exists(ctx, "categoryImg/x.png")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, st.Delete(ctx, "categoryImg/x.png"))

	ok, err = st.Exists(ctx, "categoryImg/x.png")
	require.NoError(t, err)
	assert.False(t, ok)

	// Повторное удаление не ошибка
	assert.NoError(t, st.Delete(ctx, "categoryImg/x.png"))
}

func TestListOnlyFiles(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "featuredImg/a.png", bytes.NewReader([]byte("a")), ""))
	require.NoError(t, st.Save(ctx, "featuredImg/b.png", bytes.NewReader([]byte("b")), ""))
	require.NoError(t, st.Save(ctx, "featuredImg/nested/c.png", bytes.NewReader([]byte("c")), ""))

	names, err := st.List(ctx, "featuredImg")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, names)
}

func TestListMissingDir(t *testing.T) {
	st := newTestStorage(t)

	names, err := st.List(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGetURL(t *testing.T) {
	st := newTestStorage(t)

	url, err := st.GetURL(context.Background(), "banners/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/banners/a.jpg", url)
}

func TestPathTraversalRejected(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	err := st.Save(ctx, "../outside.txt", bytes.NewReader([]byte("x")), "")
	assert.Error(t, err)

	_, err = st.Get(ctx, "../../etc/passwd")
	assert.Error(t, err)
}
