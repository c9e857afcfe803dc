package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"idocx/models"
)

// In-memory repository fakes. They mirror the MongoDB-backed contracts,
// including (nil, nil) on lookup misses and clone-on-read so callers never
// alias stored state.

type fakeFileRepo struct {
	records []*models.FileMetadata
}

func newFakeFileRepo() *fakeFileRepo { return &fakeFileRepo{} }

func cloneFile(f *models.FileMetadata) *models.FileMetadata {
	c := *f
	return &c
}

func (r *fakeFileRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.FileMetadata, error) {
	for _, f := range r.records {
		if f.ID == id {
			return cloneFile(f), nil
		}
	}
	return nil, nil
}

func (r *fakeFileRepo) FindByFileNameAndFilePath(_ context.Context, fileName, filePath string) (*models.FileMetadata, error) {
	for _, f := range r.records {
		if f.FileName == fileName && f.FilePath == filePath {
			return cloneFile(f), nil
		}
	}
	return nil, nil
}

func (r *fakeFileRepo) FindByFileName(_ context.Context, fileName string) (*models.FileMetadata, error) {
	for _, f := range r.records {
		if f.FileName == fileName {
			return cloneFile(f), nil
		}
	}
	return nil, nil
}

func (r *fakeFileRepo) FindAllByFilePathActive(_ context.Context, filePath string, pageNo, pageSize int) ([]models.FileMetadata, int64, error) {
	var matched []models.FileMetadata
	for _, f := range r.records {
		if f.FilePath == filePath && !f.IsTrash && !f.IsArchive {
			matched = append(matched, *cloneFile(f))
		}
	}
	return page(matched, pageNo, pageSize), int64(len(matched)), nil
}

func (r *fakeFileRepo) FindAllByWorkSpaceType(_ context.Context, workspaceType models.WorkspaceType) ([]models.FileMetadata, error) {
	var matched []models.FileMetadata
	for _, f := range r.records {
		if f.WorkSpaceType == workspaceType {
			matched = append(matched, *cloneFile(f))
		}
	}
	return matched, nil
}

func (r *fakeFileRepo) FindByFlagTrue(_ context.Context, action models.ResourceAction, pageNo, pageSize int) ([]models.FileMetadata, int64, error) {
	var matched []models.FileMetadata
	for _, f := range r.records {
		if fileFlag(f, action) {
			matched = append(matched, *cloneFile(f))
		}
	}
	return page(matched, pageNo, pageSize), int64(len(matched)), nil
}

func (r *fakeFileRepo) Save(_ context.Context, file *models.FileMetadata) (*models.FileMetadata, error) {
	now := time.Now()
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
		file.CreatedAt = now
		file.CreatedBy = "system"
	}
	file.ModifiedAt = now
	file.ModifiedBy = "system"

	for i, existing := range r.records {
		if existing.ID == file.ID {
			r.records[i] = cloneFile(file)
			return file, nil
		}
	}
	r.records = append(r.records, cloneFile(file))
	return file, nil
}

func (r *fakeFileRepo) SaveAll(ctx context.Context, files []models.FileMetadata) error {
	for i := range files {
		if _, err := r.Save(ctx, &files[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, f := range r.records {
		if f.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeFolderRepo struct {
	records []*models.FolderMetadata
}

func newFakeFolderRepo() *fakeFolderRepo { return &fakeFolderRepo{} }

func cloneFolder(f *models.FolderMetadata) *models.FolderMetadata {
	c := *f
	if f.Documents != nil {
		c.Documents = append([]models.FileMetadata(nil), f.Documents...)
	}
	return &c
}

func (r *fakeFolderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.FolderMetadata, error) {
	for _, f := range r.records {
		if f.ID == id {
			return cloneFolder(f), nil
		}
	}
	return nil, nil
}

func (r *fakeFolderRepo) FindByFolderPath(_ context.Context, folderPath string) (*models.FolderMetadata, error) {
	for _, f := range r.records {
		if f.FolderPath == folderPath {
			return cloneFolder(f), nil
		}
	}
	return nil, nil
}

func (r *fakeFolderRepo) FindAllByWorkSpaceType(_ context.Context, workspaceType models.WorkspaceType) ([]models.FolderMetadata, error) {
	var matched []models.FolderMetadata
	for _, f := range r.records {
		if f.WorkSpaceType == workspaceType {
			matched = append(matched, *cloneFolder(f))
		}
	}
	return matched, nil
}

func (r *fakeFolderRepo) FindByWorkSpaceTypeActive(_ context.Context, workspaceType models.WorkspaceType) ([]models.FolderMetadata, error) {
	var matched []models.FolderMetadata
	for _, f := range r.records {
		if f.WorkSpaceType == workspaceType && !f.IsTrash && !f.IsArchive {
			matched = append(matched, *cloneFolder(f))
		}
	}
	return matched, nil
}

func (r *fakeFolderRepo) FindByFlagTrue(_ context.Context, action models.ResourceAction, pageNo, pageSize int) ([]models.FolderMetadata, int64, error) {
	var matched []models.FolderMetadata
	for _, f := range r.records {
		if folderFlag(f, action) {
			matched = append(matched, *cloneFolder(f))
		}
	}
	return page(matched, pageNo, pageSize), int64(len(matched)), nil
}

func (r *fakeFolderRepo) Save(_ context.Context, folder *models.FolderMetadata) (*models.FolderMetadata, error) {
	if folder.ID.IsZero() {
		folder.ID = primitive.NewObjectID()
	}
	for i, existing := range r.records {
		if existing.ID == folder.ID {
			r.records[i] = cloneFolder(folder)
			return folder, nil
		}
	}
	r.records = append(r.records, cloneFolder(folder))
	return folder, nil
}

func (r *fakeFolderRepo) SaveAll(ctx context.Context, folders []models.FolderMetadata) error {
	for i := range folders {
		if _, err := r.Save(ctx, &folders[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeFolderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, f := range r.records {
		if f.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func fileFlag(f *models.FileMetadata, action models.ResourceAction) bool {
	switch action {
	case models.ActionFavourite:
		return f.IsFavourite
	case models.ActionArchive:
		return f.IsArchive
	default:
		return f.IsTrash
	}
}

func folderFlag(f *models.FolderMetadata, action models.ResourceAction) bool {
	switch action {
	case models.ActionFavourite:
		return f.IsFavourite
	case models.ActionArchive:
		return f.IsArchive
	default:
		return f.IsTrash
	}
}

func page[T any](items []T, pageNo, pageSize int) []T {
	start := pageNo * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
