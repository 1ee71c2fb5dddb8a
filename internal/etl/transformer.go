package etl

import (
	"github.com/BartekS5/seedgen/pkg/models"
)

// Script is the output of one transformer run: entity inserts and join
// inserts, kept apart so they can be written as two blocks.
type Script struct {
	Entities []string
	Joins    []string
}

// Transformer turns a list export into INSERT statements for Schema.
type Transformer struct {
	Schema string
}

func NewTransformer(schema string) *Transformer {
	return &Transformer{Schema: schema}
}

// Transform validates lists, walks them once depth first, and returns the
// post-processed script. All seen-id state lives in a run value created
// here, so calls never share state.
func (t *Transformer) Transform(lists []models.List) (*Script, error) {
	if err := Validate(lists); err != nil {
		return nil, err
	}

	r := newRun(t.Schema)
	for i := range lists {
		r.list(&lists[i])
	}
	return &Script{
		Entities: PostProcess(r.entities),
		Joins:    PostProcess(r.joins),
	}, nil
}

type idSet map[int64]struct{}

// add records id and reports whether it was new.
func (s idSet) add(id int64) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

type run struct {
	schema string

	courses       idSet
	instructors   idSet
	categories    idSet
	subcategories idSet
	topics        idSet

	entities []string
	joins    []string
}

func newRun(schema string) *run {
	return &run{
		schema:        schema,
		courses:       idSet{},
		instructors:   idSet{},
		categories:    idSet{},
		subcategories: idSet{},
		topics:        idSet{},
	}
}

func (r *run) list(l *models.List) {
	r.entities = append(r.entities, listInsert(r.schema, l))
	listID := *l.ID

	for i := range l.Courses {
		c := &l.Courses[i]
		courseID := *c.ID

		// A course belongs to many lists, so the join is recorded for every
		// occurrence, before the course id is checked.
		r.joins = append(r.joins, joinStatement(r.schema, TableCourseList, "list_id", courseID, listID))

		// Children of a repeated course are not revisited, even when this
		// occurrence carries different instructors or taxonomy.
		if !r.courses.add(courseID) {
			continue
		}
		r.course(c)
	}
}

func (r *run) course(c *models.Course) {
	courseID := *c.ID
	r.entities = append(r.entities, courseInsert(r.schema, c))

	for i := range c.VisibleInstructors {
		inst := &c.VisibleInstructors[i]
		r.joins = append(r.joins, joinStatement(r.schema, TableCourseInstructor, "instructor_id", courseID, *inst.ID))
		if r.instructors.add(*inst.ID) {
			r.entities = append(r.entities, instructorInsert(r.schema, inst))
		}
	}

	if cat := c.PrimaryCategory; cat != nil && models.HasID(cat.ID) {
		r.joins = append(r.joins, joinStatement(r.schema, TableCourseCategory, "category_id", courseID, *cat.ID))
		if r.categories.add(*cat.ID) {
			r.entities = append(r.entities, categoryInsert(r.schema, TableCategory, cat))
		}
	}

	if sub := c.PrimarySubcategory; sub != nil && models.HasID(sub.ID) {
		r.joins = append(r.joins, joinStatement(r.schema, TableCourseSubcategory, "subcategory_id", courseID, *sub.ID))
		if r.subcategories.add(*sub.ID) {
			r.entities = append(r.entities, categoryInsert(r.schema, TableSubcategory, (*models.Category)(sub)))
		}
	}

	if ci := c.ContextInfo; ci != nil {
		r.topic(courseID, ci.Label)
		r.topic(courseID, ci.Subcategory)
	}
}

// topic handles one of the two context topics. A topic without an id
// produces no rows and never enters the seen set. A zero id still gets its
// entity row but no join.
func (r *run) topic(courseID int64, t *models.Topic) {
	if t == nil || t.ID == nil {
		return
	}
	if models.HasID(t.ID) {
		r.joins = append(r.joins, joinStatement(r.schema, TableCourseTopic, "topic_id", courseID, *t.ID))
	}
	if r.topics.add(*t.ID) {
		r.entities = append(r.entities, topicInsert(r.schema, t))
	}
}
