package dao

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"idocx/database"
	"idocx/models"
)

// Searchable fields per resource type. Requests naming any other field fall
// through to an unfiltered (workspace-only) query.
var validFieldsPerSearchType = map[models.ResourceType]map[string]bool{
	models.ResourceFolder: {
		"id":            true,
		"folderName":    true,
		"folderPath":    true,
		"workSpaceType": true,
	},
	models.ResourceDocument: {
		"id":            true,
		"fileName":      true,
		"extension":     true,
		"tag":           true,
		"workSpaceType": true,
	},
}

// SearchDao runs field-level regex queries against either metadata collection.
type SearchDao struct {
	files   *mongo.Collection
	folders *mongo.Collection
}

// NewSearchDao returns the MongoDB-backed search dao.
func NewSearchDao() *SearchDao {
	return &SearchDao{
		files:   database.FileMetadata(),
		folders: database.FolderMetadata(),
	}
}

// Search returns one page of folders or documents matching the filter. The
// result slice element type follows searchOn: []models.FolderMetadata for
// FOLDER, []models.FileMetadata otherwise.
func (d *SearchDao) Search(ctx context.Context, searchOn models.ResourceType, field, workspace, filter, value string, page, size int) (interface{}, int64, error) {
	criteria := BuildCriteria(searchOn, field, workspace, filter, value)
	opts := options.Find().
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	if searchOn == models.ResourceFolder {
		cursor, err := d.folders.Find(ctx, criteria, opts)
		if err != nil {
			return nil, 0, err
		}
		defer cursor.Close(ctx)

		var folders []models.FolderMetadata
		if err = cursor.All(ctx, &folders); err != nil {
			return nil, 0, err
		}
		total, err := d.folders.CountDocuments(ctx, criteria)
		if err != nil {
			return nil, 0, err
		}
		return folders, total, nil
	}

	cursor, err := d.files.Find(ctx, criteria, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var files []models.FileMetadata
	if err = cursor.All(ctx, &files); err != nil {
		return nil, 0, err
	}
	total, err := d.files.CountDocuments(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

// BuildCriteria assembles the Mongo filter for a search request. Exported for
// tests; it is pure.
func BuildCriteria(searchOn models.ResourceType, field, workspace, filter, value string) bson.M {
	criteria := bson.M{}

	if validFieldsPerSearchType[searchOn][field] && value != "" {
		if expr, ok := regexFor(filter, value); ok {
			criteria[fieldName(field)] = expr
		}
	}

	if workspace != "" {
		if ws, ok := models.ParseWorkspaceType(workspace); ok {
			if ws != models.WorkspaceBoth {
				criteria["workSpaceType"] = ws
			}
		} else {
			// Unknown workspace names scope the query to a value no record
			// carries: garbage input matches nothing, not everything.
			criteria["workSpaceType"] = models.WorkspaceType(strings.ToUpper(workspace))
		}
	}

	return criteria
}

// regexFor translates a filter keyword into a case-insensitive regex clause.
func regexFor(filter, value string) (bson.M, bool) {
	quoted := regexp.QuoteMeta(value)
	switch filter {
	case "isEqualTo", "contains":
		return bson.M{"$regex": ".*" + quoted + ".*", "$options": "i"}, true
	case "beginsWith":
		return bson.M{"$regex": "^" + quoted, "$options": "i"}, true
	case "endsWith":
		return bson.M{"$regex": quoted + "$", "$options": "i"}, true
	case "notContains":
		return bson.M{"$not": bson.M{"$regex": ".*" + quoted + ".*", "$options": "i"}}, true
	}
	return nil, false
}

func fieldName(field string) string {
	if strings.EqualFold(field, "id") {
		return "_id"
	}
	return field
}
