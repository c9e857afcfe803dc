package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"idocx/dao"
	"idocx/errs"
	"idocx/models"
	"idocx/storage"
)

// ResourceService manages the status flags of files and folders and their
// removal. Deletes are hard: the physical content and every metadata record
// go away together, best effort, in that order.
type ResourceService struct {
	files   dao.FileMetadataRepository
	folders dao.FolderMetadataRepository
	store   storage.Adapter
}

func NewResourceService(files dao.FileMetadataRepository, folders dao.FolderMetadataRepository, store storage.Adapter) *ResourceService {
	return &ResourceService{
		files:   files,
		folders: folders,
		store:   store,
	}
}

// UpdateResourceStatus sets one status flag on every listed resource. For
// documents the whole flag state is mirrored onto the embedded entry of the
// containing folder; flagging a folder leaves its embedded documents alone.
// Returns the updated records.
func (rs *ResourceService) UpdateResourceStatus(req *models.ResourceManagementRequest) (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resourceType, ok := models.ParseResourceType(req.ResourceType)
	if !ok {
		return nil, errs.Newf(errs.CodeUnsupported, "unsupported resource type: %s", req.ResourceType)
	}
	action, ok := models.ParseResourceAction(req.Action)
	if !ok {
		return nil, errs.Newf(errs.CodeUnsupported, "unsupported action: %s", req.Action)
	}

	if resourceType == models.ResourceFolder {
		return rs.updateFolderStatus(ctx, req.IDs, action, req.Status)
	}
	return rs.updateFileStatus(ctx, req.IDs, action, req.Status)
}

func (rs *ResourceService) updateFileStatus(ctx context.Context, ids []string, action models.ResourceAction, status bool) ([]models.FileMetadata, error) {
	updated := make([]models.FileMetadata, 0, len(ids))
	for _, id := range ids {
		logrus.WithFields(logrus.Fields{"id": id, "action": action}).Info("Updating file status")

		file, err := rs.findFile(ctx, id)
		if err != nil {
			return nil, err
		}

		file.SetFlag(action, status)
		saved, err := rs.files.Save(ctx, file)
		if err != nil {
			return nil, errs.Wrap(errs.CodeFailedToUpdate, "failed to update file status", err)
		}

		if err := rs.mirrorFileFlags(ctx, saved); err != nil {
			return nil, err
		}
		updated = append(updated, *saved)
	}
	return updated, nil
}

// mirrorFileFlags copies all three flags of a file onto its embedded folder
// entry so both views agree after any single-flag change.
func (rs *ResourceService) mirrorFileFlags(ctx context.Context, file *models.FileMetadata) error {
	folder, err := rs.folders.FindByFolderPath(ctx, file.FilePath)
	if err != nil {
		return err
	}
	if folder == nil {
		return errs.Newf(errs.CodeResourceNotFound, "folder with filePath: %s not found", file.FilePath)
	}

	for i := range folder.Documents {
		doc := &folder.Documents[i]
		if doc.FileName == file.FileName {
			doc.IsFavourite = file.IsFavourite
			doc.IsArchive = file.IsArchive
			doc.IsTrash = file.IsTrash
		}
	}

	_, err = rs.folders.Save(ctx, folder)
	if err != nil {
		return errs.Wrap(errs.CodeFailedToUpdate, "failed to update folder documents", err)
	}
	return nil
}

func (rs *ResourceService) updateFolderStatus(ctx context.Context, ids []string, action models.ResourceAction, status bool) ([]models.FolderMetadata, error) {
	updated := make([]models.FolderMetadata, 0, len(ids))
	for _, id := range ids {
		logrus.WithFields(logrus.Fields{"id": id, "action": action}).Info("Updating folder status")

		folder, err := rs.findFolder(ctx, id)
		if err != nil {
			return nil, err
		}

		folder.SetFlag(action, status)
		saved, err := rs.folders.Save(ctx, folder)
		if err != nil {
			return nil, errs.Wrap(errs.CodeFailedToUpdate, "failed to update folder status", err)
		}
		updated = append(updated, *saved)
	}
	return updated, nil
}

// GetResources returns one page of resources whose given flag is set. Both
// the action and the resource type must be valid enum members.
func (rs *ResourceService) GetResources(action, resourceType string, pageNo, pageSize int) (interface{}, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	parsedAction, ok := models.ParseResourceAction(action)
	if !ok {
		return nil, 0, errs.Newf(errs.CodeUnsupported, "unsupported action: %s", action)
	}
	parsedType, ok := models.ParseResourceType(resourceType)
	if !ok {
		return nil, 0, errs.Newf(errs.CodeUnsupported, "unsupported resource type: %s", resourceType)
	}

	if parsedType == models.ResourceFolder {
		return rs.folders.FindByFlagTrue(ctx, parsedAction, pageNo, pageSize)
	}
	return rs.files.FindByFlagTrue(ctx, parsedAction, pageNo, pageSize)
}

// DeleteResource removes every listed resource, physical content first, then
// metadata. The first failing resource aborts the batch; earlier ones stay
// deleted.
func (rs *ResourceService) DeleteResource(req *models.IdsRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resourceType, ok := models.ParseResourceType(req.Type)
	if !ok {
		return errs.Newf(errs.CodeUnsupported, "unsupported resource type: %s", req.Type)
	}

	for _, id := range req.IDs {
		var err error
		if resourceType == models.ResourceFolder {
			err = rs.deleteFolder(ctx, id)
		} else {
			err = rs.deleteFile(ctx, id)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// deleteFile removes the stored content, the standalone record and the
// embedded folder entry of one file.
func (rs *ResourceService) deleteFile(ctx context.Context, id string) error {
	file, err := rs.findFile(ctx, id)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"id": id, "path": file.DirectoryName}).Info("Deleting file")

	if err := rs.deleteStored(file.DirectoryName); err != nil {
		return err
	}
	if err := rs.files.Delete(ctx, file.ID); err != nil {
		return errs.Wrap(errs.CodeFailedToDelete, "failed to delete file metadata", err)
	}

	folder, err := rs.folders.FindByFolderPath(ctx, file.FilePath)
	if err != nil {
		return err
	}
	if folder == nil {
		return errs.Newf(errs.CodeResourceNotFound, "folder with filePath: %s not found", file.FilePath)
	}

	remaining := folder.Documents[:0]
	for _, doc := range folder.Documents {
		if doc.DirectoryName != file.DirectoryName {
			remaining = append(remaining, doc)
		}
	}
	folder.Documents = remaining

	if _, err := rs.folders.Save(ctx, folder); err != nil {
		return errs.Wrap(errs.CodeFailedToUpdate, "failed to update folder documents", err)
	}
	return nil
}

// deleteFolder removes the directory tree, the folder record and the
// standalone record of every embedded document.
func (rs *ResourceService) deleteFolder(ctx context.Context, id string) error {
	folder, err := rs.findFolder(ctx, id)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"id": id, "path": folder.FolderPath}).Info("Deleting folder")

	if !rs.store.Exists(folder.FolderPath) {
		return errs.Newf(errs.CodeResourceNotFound, "file or folder does not exist: %s", folder.FolderPath)
	}

	entries, err := rs.store.Walk(folder.FolderPath)
	if err != nil {
		return errs.Wrap(errs.CodeFailedToDelete, "failed to walk directory "+folder.FolderPath, err)
	}
	for _, entry := range entries {
		if err := rs.store.Delete(entry); err != nil {
			return errs.Wrap(errs.CodeFailedToDelete, "failed to delete "+entry, err)
		}
	}

	if err := rs.folders.Delete(ctx, folder.ID); err != nil {
		return errs.Wrap(errs.CodeFailedToDelete, "failed to delete folder metadata", err)
	}

	for _, doc := range folder.Documents {
		file, err := rs.files.FindByFileName(ctx, doc.FileName)
		if err != nil {
			return err
		}
		if file == nil {
			return errs.Newf(errs.CodeFileNotFound, "file with name: %s not found", doc.FileName)
		}
		if err := rs.files.Delete(ctx, file.ID); err != nil {
			return errs.Wrap(errs.CodeFailedToDelete, "failed to delete file metadata", err)
		}
	}
	return nil
}

func (rs *ResourceService) deleteStored(path string) error {
	if !rs.store.Exists(path) {
		return errs.Newf(errs.CodeResourceNotFound, "file or folder does not exist: %s", path)
	}
	if err := rs.store.Delete(path); err != nil {
		return errs.Wrap(errs.CodeFailedToDelete, "failed to delete "+path, err)
	}
	return nil
}

func (rs *ResourceService) findFile(ctx context.Context, id string) (*models.FileMetadata, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "file with id: %s not found", id)
	}
	file, err := rs.files.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "file with id: %s not found", id)
	}
	return file, nil
}

func (rs *ResourceService) findFolder(ctx context.Context, id string) (*models.FolderMetadata, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "folder with id: %s not found", id)
	}
	folder, err := rs.folders.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "folder with id: %s not found", id)
	}
	return folder, nil
}
