package etl

import (
	"errors"
	"fmt"

	"github.com/BartekS5/seedgen/pkg/models"
)

var ErrMissingID = errors.New("missing required id")

// Validate checks the ids the traversal dereferences unconditionally: every
// list, course and visible instructor must carry one. Optional relations
// (categories, topics) are not checked; absent ones simply produce no rows.
func Validate(lists []models.List) error {
	for i := range lists {
		l := &lists[i]
		if l.ID == nil {
			return fmt.Errorf("lists[%d].id: %w", i, ErrMissingID)
		}
		for j := range l.Courses {
			c := &l.Courses[j]
			if c.ID == nil {
				return fmt.Errorf("lists[%d].courses[%d].id: %w", i, j, ErrMissingID)
			}
			for k := range c.VisibleInstructors {
				if c.VisibleInstructors[k].ID == nil {
					return fmt.Errorf("lists[%d].courses[%d].visible_instructors[%d].id: %w", i, j, k, ErrMissingID)
				}
			}
		}
	}
	return nil
}
