package etl

import (
	"testing"

	"github.com/BartekS5/seedgen/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		lists   []models.List
		wantErr string
	}{
		{name: "empty export"},
		{
			name:  "optional relations absent",
			lists: []models.List{{ID: ptr(int64(1)), Courses: []models.Course{{ID: ptr(int64(2))}}}},
		},
		{
			name:  "optional ids absent",
			lists: []models.List{{ID: ptr(int64(1)), Courses: []models.Course{{
				ID:              ptr(int64(2)),
				PrimaryCategory: &models.Category{},
				ContextInfo:     &models.ContextInfo{Label: &models.Topic{}},
			}}}},
		},
		{
			name:    "list id",
			lists:   []models.List{{ID: ptr(int64(1))}, {Title: ptr("no id")}},
			wantErr: "lists[1].id: missing required id",
		},
		{
			name:    "course id",
			lists:   []models.List{{ID: ptr(int64(1)), Courses: []models.Course{{ID: ptr(int64(2))}, {}}}},
			wantErr: "lists[0].courses[1].id: missing required id",
		},
		{
			name: "instructor id",
			lists: []models.List{{ID: ptr(int64(1)), Courses: []models.Course{{
				ID:                 ptr(int64(2)),
				VisibleInstructors: []models.Instructor{{Name: ptr("anon")}},
			}}}},
			wantErr: "lists[0].courses[0].visible_instructors[0].id: missing required id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.lists)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingID)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
