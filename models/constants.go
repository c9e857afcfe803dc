package models

import "strings"

// WorkspaceType partitions resources into logical workspaces. It is a tag,
// not a physical storage boundary.
type WorkspaceType string

const (
	WorkspaceAuto   WorkspaceType = "AUTO"
	WorkspaceManual WorkspaceType = "MANUAL"
	WorkspaceBoth   WorkspaceType = "BOTH"
)

// ParseWorkspaceType normalizes and validates a workspace type name.
func ParseWorkspaceType(s string) (WorkspaceType, bool) {
	switch WorkspaceType(strings.ToUpper(s)) {
	case WorkspaceAuto:
		return WorkspaceAuto, true
	case WorkspaceManual:
		return WorkspaceManual, true
	case WorkspaceBoth:
		return WorkspaceBoth, true
	}
	return "", false
}

// ResourceType selects which metadata collection an operation targets.
type ResourceType string

const (
	ResourceFolder   ResourceType = "FOLDER"
	ResourceDocument ResourceType = "DOCUMENT"
)

func ParseResourceType(s string) (ResourceType, bool) {
	switch ResourceType(strings.ToUpper(s)) {
	case ResourceFolder:
		return ResourceFolder, true
	case ResourceDocument:
		return ResourceDocument, true
	}
	return "", false
}

// ResourceAction names one of the three independent status flags.
type ResourceAction string

const (
	ActionFavourite ResourceAction = "FAVOURITE"
	ActionArchive   ResourceAction = "ARCHIVE"
	ActionTrash     ResourceAction = "TRASH"
)

func ParseResourceAction(s string) (ResourceAction, bool) {
	switch ResourceAction(strings.ToUpper(s)) {
	case ActionFavourite:
		return ActionFavourite, true
	case ActionArchive:
		return ActionArchive, true
	case ActionTrash:
		return ActionTrash, true
	}
	return "", false
}

// ConversionFormat is a supported conversion target for stored PDFs.
type ConversionFormat string

const (
	FormatJPEG ConversionFormat = "JPEG"
	FormatPNG  ConversionFormat = "PNG"
	FormatZIP  ConversionFormat = "ZIP"
	FormatTXT  ConversionFormat = "TXT"
	FormatDOC  ConversionFormat = "DOC"
	FormatDOCX ConversionFormat = "DOCX"
	FormatTIFF ConversionFormat = "TIFF"
	FormatXLSX ConversionFormat = "XLSX"
)

func ParseConversionFormat(s string) (ConversionFormat, bool) {
	switch ConversionFormat(strings.ToUpper(s)) {
	case FormatJPEG, FormatPNG, FormatZIP, FormatTXT, FormatDOC, FormatDOCX, FormatTIFF, FormatXLSX:
		return ConversionFormat(strings.ToUpper(s)), true
	}
	return "", false
}
