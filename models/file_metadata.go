package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileMetadata is the standalone record for a stored document. A denormalized
// copy of it also lives inside the owning folder's Documents list; every
// mutation path is responsible for keeping both views in sync.
type FileMetadata struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FileName          string             `bson:"fileName" json:"fileName"`
	FilePath          string             `bson:"filePath" json:"filePath"`
	DirectoryName     string             `bson:"directoryName" json:"directoryName"`
	DocumentID        string             `bson:"documentId" json:"documentId"`
	Extension         string             `bson:"extension" json:"extension"`
	PasswordProtected bool               `bson:"passwordProtected" json:"passwordProtected"`
	Tag               string             `bson:"tag" json:"tag"`
	Version           int                `bson:"version" json:"version"`
	Remarks           string             `bson:"remarks" json:"remarks"`
	Authorizer        string             `bson:"authorizer" json:"authorizer"`
	WorkSpaceType     WorkspaceType      `bson:"workSpaceType" json:"workSpaceType"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	ModifiedAt        time.Time          `bson:"modifiedAt" json:"modifiedAt"`
	CreatedBy         string             `bson:"createdBy" json:"createdBy"`
	ModifiedBy        string             `bson:"modifiedBy" json:"modifiedBy"`
	IsFavourite       bool               `bson:"isFavourite" json:"isFavourite"`
	IsArchive         bool               `bson:"isArchive" json:"isArchive"`
	IsTrash           bool               `bson:"isTrash" json:"isTrash"`
}

// SetFlag applies a status action to the matching boolean flag.
func (f *FileMetadata) SetFlag(action ResourceAction, status bool) {
	switch action {
	case ActionFavourite:
		f.IsFavourite = status
	case ActionArchive:
		f.IsArchive = status
	case ActionTrash:
		f.IsTrash = status
	}
}
