package etl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFileExtractor(t *testing.T) {
	ext := &JSONFileExtractor{Path: "testdata/lists.json"}
	lists, err := ext.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, lists, 2)

	first := lists[0]
	assert.Equal(t, int64(1), *first.ID)
	assert.Equal(t, "Picked by O'Reilly readers", *first.Description)
	require.Len(t, first.Courses, 2)

	course := first.Courses[0]
	assert.Equal(t, 4.5, *course.AvgRating)
	assert.Equal(t, 100.0, *course.CompletionRatio)
	assert.Nil(t, course.FavoriteTime)
	require.NotNil(t, course.ContextInfo)
	assert.Equal(t, int64(55), *course.ContextInfo.Subcategory.ID)

	second := first.Courses[1]
	assert.Nil(t, second.PrimarySubcategory)
	assert.Nil(t, second.ContextInfo.Label)

	assert.Nil(t, lists[1].Description)
	assert.Nil(t, lists[1].Courses[1].ContextInfo)
}

func TestJSONFileExtractorMissingFile(t *testing.T) {
	ext := &JSONFileExtractor{Path: filepath.Join(t.TempDir(), "missing.json")}
	_, err := ext.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read JSON file")
}

func TestJSONFileExtractorInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "courses": [`), 0o644))

	_, err := (&JSONFileExtractor{Path: path}).Extract(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON file")
}

func TestParseListsRejectsWrongTypes(t *testing.T) {
	_, err := ParseLists([]byte(`[{"id": 1, "title": 42}]`), "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'inline'")
}
