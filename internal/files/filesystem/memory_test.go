package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_OpenAndRead(t *testing.T) {
	mfs := NewMemoryFileSystem("/catalogs")
	mfs.AddFile("in/catalog.xml", "<BMECAT/>")

	rc, err := mfs.Open("/catalogs/in/catalog.xml")
	require.NoError(t, err)
	defer rc.Close()

	sized, ok := rc.(interface{ Len() int })
	require.True(t, ok, "reader should report its length")
	assert.Equal(t, 9, sized.Len())

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<BMECAT/>", string(data))

	content, err := mfs.ReadFile("in/catalog.xml")
	require.NoError(t, err)
	assert.Equal(t, "<BMECAT/>", string(content))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/catalogs")
	mfs.AddFile("catalog.xml", "<BMECAT/>")

	info, err := mfs.Stat("/catalogs/catalog.xml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "catalog.xml", info.Name())
	assert.Equal(t, int64(9), info.Size())
}

func TestMemoryFileSystem_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/catalogs")

	_, err := mfs.Open("nope.xml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, err = mfs.Stat("nope.xml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, err = mfs.ReadFile("nope.xml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_CreateIsVisibleAfterClose(t *testing.T) {
	mfs := NewMemoryFileSystem("/catalogs")

	w, err := mfs.Create("out.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello world"))
	require.NoError(t, err)

	_, err = mfs.Stat("out.xml")
	assert.Error(t, err, "content must not be visible before Close")

	_, err = w.Seek(0, io.SeekStart)
	require.NoError(t, err)
	_, err = w.Write([]byte("HELLO"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	content, err := mfs.ReadFile("/catalogs/out.xml")
	require.NoError(t, err)
	assert.Equal(t, "HELLO world", string(content))

	_, err = w.Write([]byte("x"))
	assert.ErrorIs(t, err, fs.ErrClosed)
}

func TestMemoryWriter_SeekBounds(t *testing.T) {
	w, err := NewMemoryFileSystem("/").Create("x")
	require.NoError(t, err)

	_, err = w.Seek(-1, io.SeekStart)
	assert.Error(t, err)

	w.Write([]byte("abc"))
	pos, err := w.Seek(-1, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)
}
