package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"idocx/database"
	"idocx/models"
)

// FileMetadataRepository is the metadata store contract for standalone file
// records. Lookup methods return (nil, nil) on a miss; the caller decides
// whether a miss is an error.
type FileMetadataRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.FileMetadata, error)
	FindByFileNameAndFilePath(ctx context.Context, fileName, filePath string) (*models.FileMetadata, error)
	FindByFileName(ctx context.Context, fileName string) (*models.FileMetadata, error)
	FindAllByFilePathActive(ctx context.Context, filePath string, pageNo, pageSize int) ([]models.FileMetadata, int64, error)
	FindAllByWorkSpaceType(ctx context.Context, workspaceType models.WorkspaceType) ([]models.FileMetadata, error)
	FindByFlagTrue(ctx context.Context, action models.ResourceAction, pageNo, pageSize int) ([]models.FileMetadata, int64, error)
	Save(ctx context.Context, file *models.FileMetadata) (*models.FileMetadata, error)
	SaveAll(ctx context.Context, files []models.FileMetadata) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type fileMetadataRepository struct {
	collection *mongo.Collection
}

// NewFileMetadataRepository returns the MongoDB-backed repository.
func NewFileMetadataRepository() FileMetadataRepository {
	return &fileMetadataRepository{
		collection: database.FileMetadata(),
	}
}

func (r *fileMetadataRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.FileMetadata, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *fileMetadataRepository) FindByFileNameAndFilePath(ctx context.Context, fileName, filePath string) (*models.FileMetadata, error) {
	return r.findOne(ctx, bson.M{"fileName": fileName, "filePath": filePath})
}

func (r *fileMetadataRepository) FindByFileName(ctx context.Context, fileName string) (*models.FileMetadata, error) {
	return r.findOne(ctx, bson.M{"fileName": fileName})
}

func (r *fileMetadataRepository) findOne(ctx context.Context, filter bson.M) (*models.FileMetadata, error) {
	var file models.FileMetadata
	err := r.collection.FindOne(ctx, filter).Decode(&file)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileMetadataRepository) FindAllByFilePathActive(ctx context.Context, filePath string, pageNo, pageSize int) ([]models.FileMetadata, int64, error) {
	filter := bson.M{
		"filePath":  filePath,
		"isTrash":   false,
		"isArchive": false,
	}
	return r.findPage(ctx, filter, pageNo, pageSize)
}

func (r *fileMetadataRepository) FindAllByWorkSpaceType(ctx context.Context, workspaceType models.WorkspaceType) ([]models.FileMetadata, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"workSpaceType": workspaceType})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []models.FileMetadata
	if err = cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileMetadataRepository) FindByFlagTrue(ctx context.Context, action models.ResourceAction, pageNo, pageSize int) ([]models.FileMetadata, int64, error) {
	return r.findPage(ctx, bson.M{flagField(action): true}, pageNo, pageSize)
}

func (r *fileMetadataRepository) findPage(ctx context.Context, filter bson.M, pageNo, pageSize int) ([]models.FileMetadata, int64, error) {
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().
			SetSkip(int64(pageNo*pageSize)).
			SetLimit(int64(pageSize)),
	)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var files []models.FileMetadata
	if err = cursor.All(ctx, &files); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

// Save inserts a new record or replaces an existing one. Audit fields are set
// here, on write.
func (r *fileMetadataRepository) Save(ctx context.Context, file *models.FileMetadata) (*models.FileMetadata, error) {
	now := time.Now()
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
		file.CreatedAt = now
		file.CreatedBy = systemUser
	}
	file.ModifiedAt = now
	file.ModifiedBy = systemUser

	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": file.ID},
		file,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (r *fileMetadataRepository) SaveAll(ctx context.Context, files []models.FileMetadata) error {
	for i := range files {
		if _, err := r.Save(ctx, &files[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fileMetadataRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
