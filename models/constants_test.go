package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkspaceType(t *testing.T) {
	ws, ok := ParseWorkspaceType("auto")
	assert.True(t, ok)
	assert.Equal(t, WorkspaceAuto, ws)

	ws, ok = ParseWorkspaceType("Manual")
	assert.True(t, ok)
	assert.Equal(t, WorkspaceManual, ws)

	_, ok = ParseWorkspaceType("SHARED")
	assert.False(t, ok)

	_, ok = ParseWorkspaceType("")
	assert.False(t, ok)
}

func TestParseResourceAction(t *testing.T) {
	action, ok := ParseResourceAction("favourite")
	assert.True(t, ok)
	assert.Equal(t, ActionFavourite, action)

	_, ok = ParseResourceAction("PIN")
	assert.False(t, ok)
}

func TestParseConversionFormat(t *testing.T) {
	format, ok := ParseConversionFormat("jpeg")
	assert.True(t, ok)
	assert.Equal(t, FormatJPEG, format)

	_, ok = ParseConversionFormat("BMP")
	assert.False(t, ok)
}

func TestFileSetFlagIndependence(t *testing.T) {
	var f FileMetadata

	f.SetFlag(ActionFavourite, true)
	f.SetFlag(ActionArchive, true)
	assert.True(t, f.IsFavourite)
	assert.True(t, f.IsArchive)
	assert.False(t, f.IsTrash)

	f.SetFlag(ActionFavourite, false)
	assert.False(t, f.IsFavourite)
	assert.True(t, f.IsArchive, "clearing one flag leaves the others alone")
}

func TestFolderSetFlag(t *testing.T) {
	var f FolderMetadata

	f.SetFlag(ActionTrash, true)
	assert.True(t, f.IsTrash)
	assert.False(t, f.IsArchive)
	assert.False(t, f.IsFavourite)
}
