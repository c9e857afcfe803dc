package database

import "go.mongodb.org/mongo-driver/mongo"

// Collection names as constants to prevent typos
const (
	FileMetadataCollection   = "fileMetadata"
	FolderMetadataCollection = "folderMetadata"
)

// GetCollection returns a MongoDB collection through the manager
func GetCollection(name string) *mongo.Collection {
	return GetManager().GetCollection(name)
}

// FileMetadata returns the standalone file record collection
func FileMetadata() *mongo.Collection {
	return GetCollection(FileMetadataCollection)
}

// FolderMetadata returns the folder record collection
func FolderMetadata() *mongo.Collection {
	return GetCollection(FolderMetadataCollection)
}
