package models

import "mime/multipart"

// FileUploadRequest carries one or more payloads plus shared metadata applied
// to every file in the batch.
type FileUploadRequest struct {
	FilePath          string                  `form:"filePath" binding:"required"`
	Files             []*multipart.FileHeader `form:"files"`
	FileName          string                  `form:"fileName"`
	DocumentID        string                  `form:"documentId"`
	PasswordProtected bool                    `form:"passwordProtected"`
	Tag               string                  `form:"tag"`
	Version           int                     `form:"version"`
	Remarks           string                  `form:"remarks"`
	WorkspaceType     string                  `form:"workspaceType" binding:"required"`
	FolderName        string                  `form:"folderName"`
}

// ResourceManagementRequest flips one status flag on a batch of resources.
type ResourceManagementRequest struct {
	Action       string   `json:"action" binding:"required"`
	ResourceType string   `json:"resourceType" binding:"required"`
	IDs          []string `json:"ids" binding:"required"`
	Status       bool     `json:"status"`
}

// IdsRequest identifies resources to delete and whether they are files or folders.
type IdsRequest struct {
	IDs  []string `json:"ids" binding:"required"`
	Type string   `json:"type" binding:"required"`
}

// FolderRequest creates an explicit directory without an upload.
type FolderRequest struct {
	FolderPath string `json:"folderPath" binding:"required"`
	FolderName string `json:"folderName" binding:"required"`
}

// EmailRequest asks the notification sender to mail a stored file.
type EmailRequest struct {
	FromEmail string `json:"fromEmail" binding:"required,email"`
	ToEmail   string `json:"toEmail" binding:"required,email"`
	Body      string `json:"body"`
	Subject   string `json:"subject"`
	FilePath  string `json:"filePath" binding:"required"`
}
