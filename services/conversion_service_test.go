package services

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idocx/errs"
	"idocx/models"
	"idocx/storage"
)

func newConversionFixture(t *testing.T) (*ConversionService, *fakeFileRepo, *storage.LocalAdapter) {
	t.Helper()
	files := newFakeFileRepo()
	store, err := storage.NewLocalAdapter(t.TempDir())
	require.NoError(t, err)
	return NewConversionService(files, store, 100), files, store
}

func storedFile(t *testing.T, files *fakeFileRepo, store *storage.LocalAdapter, name string, content []byte) string {
	t.Helper()
	path := store.Resolve("ws/docs", name)
	require.NoError(t, store.Write(path, content))

	saved, err := files.Save(context.Background(), &models.FileMetadata{
		FileName:      name,
		FilePath:      "ws/docs",
		DirectoryName: path,
	})
	require.NoError(t, err)
	return saved.ID.Hex()
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	svc, _, _ := newConversionFixture(t)

	_, err := svc.Convert("64b000000000000000000000", "BMP", 0, 10)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.CodeUnsupported))
}

func TestConvertUnknownFileID(t *testing.T) {
	svc, _, _ := newConversionFixture(t)

	_, err := svc.Convert("64b000000000000000000000", "ZIP", 0, 10)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.CodeResourceNotFound))
}

func TestConvertZipWrapsOriginal(t *testing.T) {
	svc, files, store := newConversionFixture(t)
	content := []byte("original document bytes")
	id := storedFile(t, files, store, "report.pdf", content)

	payloads, err := svc.Convert(id, "zip", 0, 10)
	require.NoError(t, err)
	require.Len(t, payloads, 1)

	zr, err := zip.NewReader(bytes.NewReader(payloads[0]), int64(len(payloads[0])))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "report.pdf", zr.File[0].Name)

	entry, err := zr.File[0].Open()
	require.NoError(t, err)
	defer entry.Close()
	got, err := io.ReadAll(entry)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestPageWindow(t *testing.T) {
	svc := NewConversionService(newFakeFileRepo(), nil, 50)

	start, end, err := svc.pageWindow(0, 10, 25)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end, err = svc.pageWindow(2, 10, 25)
	require.NoError(t, err)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end, "last window clamps to the page count")

	_, _, err = svc.pageWindow(3, 10, 25)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.CodeLimitExceeding), "window beyond the document")

	_, _, err = svc.pageWindow(0, 51, 100)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.CodeLimitExceeding), "window larger than the configured budget")

	start, end, err = svc.pageWindow(0, 0, 25)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end, "non-positive size falls back to the default")
}

func TestBuildDocxPackage(t *testing.T) {
	payload, err := buildDocx("hello <world>\nsecond & line")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)

	names := make(map[string]bool)
	var document string
	for _, f := range zr.File {
		names[f.Name] = true
		if f.Name == "word/document.xml" {
			entry, err := f.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(entry)
			entry.Close()
			require.NoError(t, err)
			document = string(data)
		}
	}

	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["_rels/.rels"])
	assert.Contains(t, document, "hello &lt;world&gt;")
	assert.Contains(t, document, "second &amp; line")
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot; &apos;e&apos;", escapeXML(`a & b <c> "d" 'e'`))
}
