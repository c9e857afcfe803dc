package services

import (
	"context"
	"strings"
	"time"

	"idocx/dao"
	"idocx/models"
)

// SearchService answers field-level metadata queries over either collection.
type SearchService struct {
	dao *dao.SearchDao
}

func NewSearchService(searchDao *dao.SearchDao) *SearchService {
	return &SearchService{dao: searchDao}
}

// Search returns one page of folders or documents matching the filter.
// searchOn selects the collection; anything other than FOLDER searches
// documents.
func (ss *SearchService) Search(searchOn, field, workspace, filter, value string, page, size int) (interface{}, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resourceType := models.ResourceDocument
	if strings.EqualFold(searchOn, string(models.ResourceFolder)) {
		resourceType = models.ResourceFolder
	}

	return ss.dao.Search(ctx, resourceType, field, workspace, filter, value, page, size)
}
