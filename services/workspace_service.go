package services

import (
	"context"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"idocx/dao"
	"idocx/errs"
	"idocx/models"
	"idocx/storage"
)

// WorkspaceService owns the upload, rename and directory-structure paths of
// the resource lifecycle. Filesystem content and the two metadata views are
// written sequentially, best effort: there is no cross-store transaction and
// a failure partway through leaves whatever already succeeded in place.
type WorkspaceService struct {
	files   dao.FileMetadataRepository
	folders dao.FolderMetadataRepository
	store   storage.Adapter
}

func NewWorkspaceService(files dao.FileMetadataRepository, folders dao.FolderMetadataRepository, store storage.Adapter) *WorkspaceService {
	return &WorkspaceService{
		files:   files,
		folders: folders,
		store:   store,
	}
}

// Store writes every payload of the request to the target directory and
// upserts both metadata views for each. The first empty payload aborts the
// whole batch; earlier payloads stay stored.
func (ws *WorkspaceService) Store(req *models.FileUploadRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	workspaceType, ok := models.ParseWorkspaceType(req.WorkspaceType)
	if !ok {
		return errs.Newf(errs.CodeUnsupported, "unsupported workspace type: %s", req.WorkspaceType)
	}

	if err := ws.store.CreateDirectories(req.FilePath); err != nil {
		return errs.Wrap(errs.CodeDirectoryCreation, "could not create directory", err)
	}

	for _, header := range req.Files {
		if header == nil || header.Size == 0 {
			return errs.New(errs.CodeFileNotFound, "there are no files in the request")
		}

		data, err := readMultipart(header)
		if err != nil {
			return errs.Wrap(errs.CodeFileReading, "failed to read uploaded file", err)
		}

		directoryName := ws.store.Resolve(req.FilePath, header.Filename)
		if err := ws.store.Write(directoryName, data); err != nil {
			return errs.Wrap(errs.CodeFileStorage, "failed to store file", err)
		}

		if err := ws.processFileMetadata(ctx, req, workspaceType, header.Filename, directoryName); err != nil {
			return err
		}
	}

	return nil
}

// processFileMetadata upserts the standalone record and the embedded folder
// entry for one stored payload.
func (ws *WorkspaceService) processFileMetadata(ctx context.Context, req *models.FileUploadRequest, workspaceType models.WorkspaceType, fileName, directoryName string) error {
	existing, err := ws.files.FindByFileNameAndFilePath(ctx, fileName, req.FilePath)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.DirectoryName != directoryName {
			existing.DirectoryName = directoryName
			if _, err := ws.files.Save(ctx, existing); err != nil {
				return err
			}
		}
	} else {
		if _, err := ws.files.Save(ctx, ws.newFileMetadata(req, workspaceType, fileName, directoryName)); err != nil {
			return err
		}
	}

	folder, err := ws.folders.FindByFolderPath(ctx, req.FilePath)
	if err != nil {
		return err
	}
	if folder != nil {
		for _, doc := range folder.Documents {
			if doc.FileName == fileName {
				return nil
			}
		}
		folder.Documents = append(folder.Documents, *ws.newFileMetadata(req, workspaceType, fileName, directoryName))
		_, err = ws.folders.Save(ctx, folder)
		return err
	}

	_, err = ws.folders.Save(ctx, &models.FolderMetadata{
		FolderName:    req.FolderName,
		FolderPath:    req.FilePath,
		WorkSpaceType: workspaceType,
		Documents:     []models.FileMetadata{*ws.newFileMetadata(req, workspaceType, fileName, directoryName)},
	})
	return err
}

func (ws *WorkspaceService) newFileMetadata(req *models.FileUploadRequest, workspaceType models.WorkspaceType, fileName, directoryName string) *models.FileMetadata {
	return &models.FileMetadata{
		FileName:          fileName,
		FilePath:          req.FilePath,
		DirectoryName:     directoryName,
		DocumentID:        req.DocumentID,
		Extension:         ExtractExtension(fileName),
		PasswordProtected: req.PasswordProtected,
		Tag:               req.Tag,
		Version:           req.Version,
		Remarks:           req.Remarks,
		WorkSpaceType:     workspaceType,
	}
}

// ExtractExtension returns the suffix starting at the last dot, or "" when
// the name has no extension. A leading dot does not count: ".hidden" has no
// extension.
func ExtractExtension(fileName string) string {
	dot := strings.LastIndex(fileName, ".")
	if dot > 0 && dot < len(fileName)-1 {
		return fileName[dot:]
	}
	return ""
}

// GenerateDirectory creates an explicit directory plus its folder record.
// At most one folder may exist per path.
func (ws *WorkspaceService) GenerateDirectory(req *models.FolderRequest) (*models.FolderMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := ws.folders.FindByFolderPath(ctx, req.FolderPath)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.New(errs.CodeFolderAlreadyExists, "folder already exists, cannot create folder on same path")
	}

	if err := ws.store.CreateDirectories(req.FolderPath); err != nil {
		return nil, errs.Wrap(errs.CodeDirectoryCreation, "could not create directory", err)
	}

	return ws.folders.Save(ctx, &models.FolderMetadata{
		FolderName:    req.FolderName,
		FolderPath:    req.FolderPath,
		WorkSpaceType: models.WorkspaceManual,
	})
}

// GetAllFolderStructure returns the folders of a workspace with their
// embedded documents, excluding trashed and archived folders. The result is
// a flat list; no tree is reconstructed.
func (ws *WorkspaceService) GetAllFolderStructure(workspaceName string) ([]models.FolderMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	workspaceType, ok := models.ParseWorkspaceType(workspaceName)
	if !ok {
		return nil, errs.Newf(errs.CodeUnsupported, "unsupported workspace type: %s", workspaceName)
	}

	folders, err := ws.folders.FindByWorkSpaceTypeActive(ctx, workspaceType)
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// GetFilesMetadata returns one page of active file records under a path.
func (ws *WorkspaceService) GetFilesMetadata(filePath string, pageNo, pageSize int) ([]models.FileMetadata, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return ws.files.FindAllByFilePathActive(ctx, filePath, pageNo, pageSize)
}

// UpdateFileName renames a file on disk and in both metadata views.
func (ws *WorkspaceService) UpdateFileName(id, newFileName string) (*models.FileMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	file, err := ws.findFile(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPath := path.Join(file.FilePath, file.FileName)
	newPath := path.Join(file.FilePath, newFileName)
	newDirectoryName := file.FilePath + "/" + newFileName

	if !ws.store.Exists(oldPath) {
		return nil, errs.Newf(errs.CodeFileNotFound, "file not found %s", oldPath)
	}
	if err := ws.store.Move(oldPath, newPath); err != nil {
		return nil, errs.Wrap(errs.CodeFailedToUpdate,
			"failed to update file name from "+file.FileName+" to "+newFileName, err)
	}

	folder, err := ws.folders.FindByFolderPath(ctx, file.FilePath)
	if err != nil {
		return nil, err
	}
	if folder != nil {
		for i := range folder.Documents {
			doc := &folder.Documents[i]
			if doc.FileName == file.FileName && doc.FilePath == file.FilePath {
				doc.FileName = newFileName
				doc.DirectoryName = newDirectoryName
				break
			}
		}
		if _, err := ws.folders.Save(ctx, folder); err != nil {
			return nil, err
		}
	}

	file.FileName = newFileName
	file.DirectoryName = newDirectoryName
	return ws.files.Save(ctx, file)
}

// UpdateFolderName renames a directory and sweeps the rename through every
// record of the same workspace whose path mentions the old folder name.
func (ws *WorkspaceService) UpdateFolderName(id, newFolderName string) (*models.FolderMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	folder, err := ws.findFolder(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPath := folder.FolderPath
	newPath := constructNewPath(oldPath, newFolderName)
	if err := ws.store.Move(oldPath, newPath); err != nil {
		return nil, errs.Wrap(errs.CodeFailedToUpdate,
			"failed to rename directory from "+oldPath+" to "+newPath, err)
	}
	folder.FolderPath = newPath

	if err := ws.propagateRename(ctx, folder, newFolderName); err != nil {
		return nil, err
	}

	folder.FolderName = newFolderName
	return folder, nil
}

// constructNewPath swaps the last path segment for the new name.
func constructNewPath(oldPath, newFolderName string) string {
	return oldPath[:strings.LastIndex(oldPath, "/")+1] + newFolderName
}

// pathRewriter encapsulates how a folder rename maps onto stored paths.
// Matching is by substring, so a record whose path merely mentions the old
// name anywhere is rewritten too; switching to prefix matching only requires
// changing these two methods.
type pathRewriter struct {
	oldName string
	newName string
}

func (p pathRewriter) matches(s string) bool {
	return strings.Contains(s, p.oldName)
}

func (p pathRewriter) rewrite(s string) string {
	return strings.ReplaceAll(s, p.oldName, p.newName)
}

func (p pathRewriter) rewriteFile(file *models.FileMetadata) {
	file.FilePath = p.rewrite(file.FilePath)
	file.DirectoryName = p.rewrite(file.DirectoryName)
}

// propagateRename sweeps every file and folder record of the workspace and
// rewrites paths mentioning the old folder name.
func (ws *WorkspaceService) propagateRename(ctx context.Context, folder *models.FolderMetadata, newFolderName string) error {
	rewriter := pathRewriter{oldName: folder.FolderName, newName: newFolderName}

	logrus.WithFields(logrus.Fields{
		"folder_path": folder.FolderPath,
		"old_name":    rewriter.oldName,
		"new_name":    rewriter.newName,
	}).Info("Propagating folder rename")

	if folder.Documents != nil {
		files, err := ws.files.FindAllByWorkSpaceType(ctx, folder.WorkSpaceType)
		if err != nil {
			return err
		}
		for i := range files {
			if rewriter.matches(files[i].FilePath) {
				rewriter.rewriteFile(&files[i])
			}
		}
		if err := ws.files.SaveAll(ctx, files); err != nil {
			return err
		}
	}

	folders, err := ws.folders.FindAllByWorkSpaceType(ctx, folder.WorkSpaceType)
	if err != nil {
		return err
	}
	for i := range folders {
		affected := &folders[i]
		if !rewriter.matches(affected.FolderPath) {
			continue
		}
		affected.FolderPath = rewriter.rewrite(affected.FolderPath)
		for j := range affected.Documents {
			rewriter.rewriteFile(&affected.Documents[j])
		}
		if affected.FolderName == rewriter.oldName {
			affected.FolderName = rewriter.newName
		}
	}
	return ws.folders.SaveAll(ctx, folders)
}

// LoadFile returns a file's metadata together with its stored content.
func (ws *WorkspaceService) LoadFile(id string) (*models.FileMetadata, []byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	file, err := ws.findFile(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	data, err := ws.store.Read(file.DirectoryName)
	if err != nil {
		return nil, nil, errs.Wrap(errs.CodeFileReading, "could not read file: "+file.DirectoryName, err)
	}
	return file, data, nil
}

// parseObjectID converts a hex id from the request path into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

func (ws *WorkspaceService) findFile(ctx context.Context, id string) (*models.FileMetadata, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "file with id: %s not found", id)
	}

	file, err := ws.files.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "file with id: %s not found", id)
	}
	return file, nil
}

func (ws *WorkspaceService) findFolder(ctx context.Context, id string) (*models.FolderMetadata, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "folder with id: %s not found", id)
	}

	folder, err := ws.folders.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, errs.Newf(errs.CodeResourceNotFound, "folder with id: %s not found", id)
	}
	return folder, nil
}

func readMultipart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
