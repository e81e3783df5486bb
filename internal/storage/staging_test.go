package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="profilePicture"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	require.Len(t, form.File["profilePicture"], 1)
	return form.File["profilePicture"][0]
}

func TestStagerStage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "temp")
	stager := NewStager(dir)

	staged, err := stager.Stage(fileHeader(t, "avatar.png", "image/png", []byte("png-bytes")))
	require.NoError(t, err)

	assert.Equal(t, "avatar.png", staged.OriginalName)
	assert.Equal(t, "image/png", staged.ContentType)
	assert.Equal(t, int64(len("png-bytes")), staged.Size)
	assert.Equal(t, dir, filepath.Dir(staged.Path))

	data, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestStagerUniqueNames(t *testing.T) {
	stager := NewStager(t.TempDir())

	a, err := stager.Stage(fileHeader(t, "same.jpg", "image/jpeg", []byte("a")))
	require.NoError(t, err)
	b, err := stager.Stage(fileHeader(t, "same.jpg", "image/jpeg", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
}

func TestStagerRemove(t *testing.T) {
	stager := NewStager(t.TempDir())
	staged, err := stager.Stage(fileHeader(t, "x.gif", "image/gif", []byte("gif")))
	require.NoError(t, err)

	require.NoError(t, stager.Remove(staged))
	_, err = os.Stat(staged.Path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, stager.Remove(staged), "second remove is a no-op")
	assert.NoError(t, stager.Remove(nil))
}
