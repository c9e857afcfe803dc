package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"idocx/models"
)

func TestBuildCriteriaContains(t *testing.T) {
	criteria := BuildCriteria(models.ResourceDocument, "fileName", "AUTO", "contains", "report")

	assert.Equal(t, bson.M{"$regex": ".*report.*", "$options": "i"}, criteria["fileName"])
	assert.Equal(t, models.WorkspaceAuto, criteria["workSpaceType"])
}

func TestBuildCriteriaFilters(t *testing.T) {
	cases := []struct {
		filter string
		want   bson.M
	}{
		{"isEqualTo", bson.M{"$regex": ".*v.*", "$options": "i"}},
		{"beginsWith", bson.M{"$regex": "^v", "$options": "i"}},
		{"endsWith", bson.M{"$regex": "v$", "$options": "i"}},
		{"notContains", bson.M{"$not": bson.M{"$regex": ".*v.*", "$options": "i"}}},
	}
	for _, tc := range cases {
		criteria := BuildCriteria(models.ResourceDocument, "tag", "BOTH", tc.filter, "v")
		assert.Equal(t, tc.want, criteria["tag"], "filter %s", tc.filter)
	}
}

func TestBuildCriteriaUnknownFilterIgnored(t *testing.T) {
	criteria := BuildCriteria(models.ResourceDocument, "tag", "BOTH", "soundsLike", "v")
	assert.NotContains(t, criteria, "tag")
}

func TestBuildCriteriaRejectsFieldsOutsideWhitelist(t *testing.T) {
	criteria := BuildCriteria(models.ResourceDocument, "passwordProtected", "BOTH", "contains", "true")
	assert.Empty(t, criteria)

	// folderName is searchable on folders, not on documents.
	criteria = BuildCriteria(models.ResourceDocument, "folderName", "BOTH", "contains", "x")
	assert.NotContains(t, criteria, "folderName")

	criteria = BuildCriteria(models.ResourceFolder, "folderName", "BOTH", "contains", "x")
	assert.Contains(t, criteria, "folderName")
}

func TestBuildCriteriaWorkspaceScoping(t *testing.T) {
	criteria := BuildCriteria(models.ResourceFolder, "", "manual", "", "")
	assert.Equal(t, models.WorkspaceManual, criteria["workSpaceType"])

	// BOTH and absent workspaces leave the query unscoped; an unknown name
	// scopes it to a value no record carries, so it matches nothing.
	assert.NotContains(t, BuildCriteria(models.ResourceFolder, "", "BOTH", "", ""), "workSpaceType")
	assert.NotContains(t, BuildCriteria(models.ResourceFolder, "", "", "", ""), "workSpaceType")
	criteria = BuildCriteria(models.ResourceFolder, "", "nope", "", "")
	assert.Equal(t, models.WorkspaceType("NOPE"), criteria["workSpaceType"])
}

func TestBuildCriteriaQuotesRegexValue(t *testing.T) {
	criteria := BuildCriteria(models.ResourceDocument, "extension", "BOTH", "beginsWith", ".pdf")
	assert.Equal(t, bson.M{"$regex": `^\.pdf`, "$options": "i"}, criteria["extension"])
}

func TestBuildCriteriaMapsIDField(t *testing.T) {
	criteria := BuildCriteria(models.ResourceFolder, "id", "BOTH", "contains", "abc")
	assert.Contains(t, criteria, "_id")
}

func TestBuildCriteriaEmptyValueIgnored(t *testing.T) {
	criteria := BuildCriteria(models.ResourceDocument, "fileName", "BOTH", "contains", "")
	assert.Empty(t, criteria)
}
