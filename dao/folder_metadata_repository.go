package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"idocx/database"
	"idocx/models"
)

const systemUser = "system"

// FolderMetadataRepository is the metadata store contract for folder records.
// Lookup methods return (nil, nil) on a miss.
type FolderMetadataRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.FolderMetadata, error)
	FindByFolderPath(ctx context.Context, folderPath string) (*models.FolderMetadata, error)
	FindAllByWorkSpaceType(ctx context.Context, workspaceType models.WorkspaceType) ([]models.FolderMetadata, error)
	FindByWorkSpaceTypeActive(ctx context.Context, workspaceType models.WorkspaceType) ([]models.FolderMetadata, error)
	FindByFlagTrue(ctx context.Context, action models.ResourceAction, pageNo, pageSize int) ([]models.FolderMetadata, int64, error)
	Save(ctx context.Context, folder *models.FolderMetadata) (*models.FolderMetadata, error)
	SaveAll(ctx context.Context, folders []models.FolderMetadata) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type folderMetadataRepository struct {
	collection *mongo.Collection
}

// NewFolderMetadataRepository returns the MongoDB-backed repository.
func NewFolderMetadataRepository() FolderMetadataRepository {
	return &folderMetadataRepository{
		collection: database.FolderMetadata(),
	}
}

func (r *folderMetadataRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.FolderMetadata, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *folderMetadataRepository) FindByFolderPath(ctx context.Context, folderPath string) (*models.FolderMetadata, error) {
	return r.findOne(ctx, bson.M{"folderPath": folderPath})
}

func (r *folderMetadataRepository) findOne(ctx context.Context, filter bson.M) (*models.FolderMetadata, error) {
	var folder models.FolderMetadata
	err := r.collection.FindOne(ctx, filter).Decode(&folder)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *folderMetadataRepository) FindAllByWorkSpaceType(ctx context.Context, workspaceType models.WorkspaceType) ([]models.FolderMetadata, error) {
	return r.findAll(ctx, bson.M{"workSpaceType": workspaceType})
}

func (r *folderMetadataRepository) FindByWorkSpaceTypeActive(ctx context.Context, workspaceType models.WorkspaceType) ([]models.FolderMetadata, error) {
	return r.findAll(ctx, bson.M{
		"workSpaceType": workspaceType,
		"isTrash":       false,
		"isArchive":     false,
	})
}

func (r *folderMetadataRepository) findAll(ctx context.Context, filter bson.M) ([]models.FolderMetadata, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []models.FolderMetadata
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *folderMetadataRepository) FindByFlagTrue(ctx context.Context, action models.ResourceAction, pageNo, pageSize int) ([]models.FolderMetadata, int64, error) {
	filter := bson.M{flagField(action): true}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().
			SetSkip(int64(pageNo*pageSize)).
			SetLimit(int64(pageSize)),
	)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var folders []models.FolderMetadata
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return folders, total, nil
}

func (r *folderMetadataRepository) Save(ctx context.Context, folder *models.FolderMetadata) (*models.FolderMetadata, error) {
	if folder.ID.IsZero() {
		folder.ID = primitive.NewObjectID()
	}

	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": folder.ID},
		folder,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return folder, nil
}

func (r *folderMetadataRepository) SaveAll(ctx context.Context, folders []models.FolderMetadata) error {
	for i := range folders {
		if _, err := r.Save(ctx, &folders[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *folderMetadataRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// flagField maps a status action to its indexed boolean field.
func flagField(action models.ResourceAction) string {
	switch action {
	case models.ActionFavourite:
		return "isFavourite"
	case models.ActionArchive:
		return "isArchive"
	default:
		return "isTrash"
	}
}
