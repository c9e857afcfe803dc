package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FolderMetadata groups the documents stored under one workspace path.
// FolderPath is unique across all folders. Documents holds denormalized
// snapshots of the standalone FileMetadata records; it is a manually
// maintained copy, not a foreign-key relation.
type FolderMetadata struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FolderName    string             `bson:"folderName" json:"folderName"`
	FolderPath    string             `bson:"folderPath" json:"folderPath"`
	WorkSpaceType WorkspaceType      `bson:"workSpaceType" json:"workSpaceType"`
	Documents     []FileMetadata     `bson:"documents" json:"documents"`
	IsFavourite   bool               `bson:"isFavourite" json:"isFavourite"`
	IsArchive     bool               `bson:"isArchive" json:"isArchive"`
	IsTrash       bool               `bson:"isTrash" json:"isTrash"`
}

// SetFlag applies a status action to the matching boolean flag.
func (f *FolderMetadata) SetFlag(action ResourceAction, status bool) {
	switch action {
	case ActionFavourite:
		f.IsFavourite = status
	case ActionArchive:
		f.IsArchive = status
	case ActionTrash:
		f.IsTrash = status
	}
}
