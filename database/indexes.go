package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes creates the indexes backing the metadata query contract.
// folderPath carries a unique index: at most one folder per path.
func CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Creating database indexes...")

	fileIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "fileName", Value: 1}, {Key: "filePath", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "workSpaceType", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "isFavourite", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "isArchive", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "isTrash", Value: 1}},
		},
	}
	if _, err := FileMetadata().Indexes().CreateMany(ctx, fileIndexes); err != nil {
		return fmt.Errorf("failed to create fileMetadata indexes: %v", err)
	}

	folderIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "folderPath", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "workSpaceType", Value: 1}, {Key: "isTrash", Value: 1}, {Key: "isArchive", Value: 1}},
		},
	}
	if _, err := FolderMetadata().Indexes().CreateMany(ctx, folderIndexes); err != nil {
		return fmt.Errorf("failed to create folderMetadata indexes: %v", err)
	}

	log.Println("Database indexes created successfully")
	return nil
}
