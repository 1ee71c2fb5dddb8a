package etl

import (
	"strings"

	"github.com/BartekS5/seedgen/pkg/models"
	"github.com/BartekS5/seedgen/pkg/utils"
)

// Entity tables.
const (
	TableList        = "List"
	TableCourse      = "Course"
	TableInstructor  = "Instructor"
	TableCategory    = "Category"
	TableSubcategory = "Subcategory"
	TableTopic       = "Topic"
)

// Join tables.
const (
	TableCourseList        = "Course_List"
	TableCourseInstructor  = "Course_Instructor"
	TableCourseCategory    = "Course_Category"
	TableCourseSubcategory = "Course_Subcategory"
	TableCourseTopic       = "Course_Topic"
)

var (
	listColumns = []string{"id", "title", "description"}

	courseColumns = []string{
		"id", "title", "url", "is_paid", "image_240x135", "is_practice_test_course",
		"image_480x270", "published_title", "tracking_id", "headline", "num_subscribers",
		"avg_rating", "num_reviews", "favorite_time", "archive_time", "completion_ratio",
		"num_quizzes", "num_lectures", "is_private", "status_label", "created",
		"estimated_content_length", "buyable_object_type", "last_accessed_time",
		"enrollment_time", "last_update_date", "is_published",
	}

	instructorColumns = []string{
		"id", "name", "display_name", "job_title", "image_50x50", "image_100x100", "initials", "url",
	}

	categoryColumns = []string{"id", "title", "title_cleaned", "url", "icon_class"}

	topicColumns = []string{"id", "title", "url"}
)

// insertStatement renders INSERT INTO <schema>.<table> (<columns>) VALUES (<values>);
// values must already be SQL literals.
func insertStatement(schema, table string, columns, values []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(schema)
	b.WriteByte('.')
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(values, ", "))
	b.WriteString(");")
	return b.String()
}

func joinStatement(schema, table, column string, courseID, relatedID int64) string {
	return insertStatement(schema, table,
		[]string{"course_id", column},
		[]string{utils.IntLiteral(&courseID), utils.IntLiteral(&relatedID)})
}

func listInsert(schema string, l *models.List) string {
	return insertStatement(schema, TableList, listColumns, []string{
		utils.IntLiteral(l.ID),
		utils.EscapeQuotes(l.Title),
		utils.EscapeQuotes(l.Description),
	})
}

func courseInsert(schema string, c *models.Course) string {
	return insertStatement(schema, TableCourse, courseColumns, []string{
		utils.IntLiteral(c.ID),
		utils.EscapeQuotes(c.Title),
		utils.EscapeQuotes(c.URL),
		utils.BoolLiteral(c.IsPaid),
		utils.EscapeQuotes(c.Image240x135),
		utils.BoolLiteral(c.IsPracticeTestCourse),
		utils.EscapeQuotes(c.Image480x270),
		utils.EscapeQuotes(c.PublishedTitle),
		utils.EscapeQuotes(c.TrackingID),
		utils.EscapeQuotes(c.Headline),
		utils.IntLiteral(c.NumSubscribers),
		utils.FloatLiteral(c.AvgRating),
		utils.IntLiteral(c.NumReviews),
		utils.EscapeQuotes(c.FavoriteTime),
		utils.EscapeQuotes(c.ArchiveTime),
		utils.FloatLiteral(c.CompletionRatio),
		utils.IntLiteral(c.NumQuizzes),
		utils.IntLiteral(c.NumLectures),
		utils.BoolLiteral(c.IsPrivate),
		utils.EscapeQuotes(c.StatusLabel),
		utils.EscapeQuotes(c.Created),
		utils.IntLiteral(c.EstimatedContentLength),
		utils.EscapeQuotes(c.BuyableObjectType),
		utils.EscapeQuotes(c.LastAccessedTime),
		utils.EscapeQuotes(c.EnrollmentTime),
		utils.EscapeQuotes(c.LastUpdateDate),
		utils.BoolLiteral(c.IsPublished),
	})
}

func instructorInsert(schema string, i *models.Instructor) string {
	return insertStatement(schema, TableInstructor, instructorColumns, []string{
		utils.IntLiteral(i.ID),
		utils.EscapeQuotes(i.Name),
		utils.EscapeQuotes(i.DisplayName),
		utils.EscapeQuotes(i.JobTitle),
		utils.EscapeQuotes(i.Image50x50),
		utils.EscapeQuotes(i.Image100x100),
		utils.EscapeQuotes(i.Initials),
		utils.EscapeQuotes(i.URL),
	})
}

// categoryInsert serves both Category and Subcategory, which share columns.
func categoryInsert(schema, table string, c *models.Category) string {
	return insertStatement(schema, table, categoryColumns, []string{
		utils.IntLiteral(c.ID),
		utils.EscapeQuotes(c.Title),
		utils.EscapeQuotes(c.TitleCleaned),
		utils.EscapeQuotes(c.URL),
		utils.EscapeQuotes(c.IconClass),
	})
}

func topicInsert(schema string, t *models.Topic) string {
	return insertStatement(schema, TableTopic, topicColumns, []string{
		utils.IntLiteral(t.ID),
		utils.EscapeQuotes(t.Title),
		utils.EscapeQuotes(t.URL),
	})
}
