// Package models describes the curated-list export consumed by the seed
// generator. Every scalar is a pointer so that an explicit JSON null and an
// absent key both surface as nil and render as SQL null.
package models

// List is a curated collection of courses.
type List struct {
	ID          *int64   `json:"id" bson:"id"`
	Title       *string  `json:"title" bson:"title"`
	Description *string  `json:"description" bson:"description"`
	Courses     []Course `json:"courses" bson:"courses"`
}

// Course is a single course entry inside a List.
type Course struct {
	ID                     *int64   `json:"id" bson:"id"`
	Title                  *string  `json:"title" bson:"title"`
	URL                    *string  `json:"url" bson:"url"`
	IsPaid                 *bool    `json:"is_paid" bson:"is_paid"`
	Image240x135           *string  `json:"image_240x135" bson:"image_240x135"`
	IsPracticeTestCourse   *bool    `json:"is_practice_test_course" bson:"is_practice_test_course"`
	Image480x270           *string  `json:"image_480x270" bson:"image_480x270"`
	PublishedTitle         *string  `json:"published_title" bson:"published_title"`
	TrackingID             *string  `json:"tracking_id" bson:"tracking_id"`
	Headline               *string  `json:"headline" bson:"headline"`
	NumSubscribers         *int64   `json:"num_subscribers" bson:"num_subscribers"`
	AvgRating              *float64 `json:"avg_rating" bson:"avg_rating"`
	NumReviews             *int64   `json:"num_reviews" bson:"num_reviews"`
	FavoriteTime           *string  `json:"favorite_time" bson:"favorite_time"`
	ArchiveTime            *string  `json:"archive_time" bson:"archive_time"`
	CompletionRatio        *float64 `json:"completion_ratio" bson:"completion_ratio"`
	NumQuizzes             *int64   `json:"num_quizzes" bson:"num_quizzes"`
	NumLectures            *int64   `json:"num_lectures" bson:"num_lectures"`
	IsPrivate              *bool    `json:"is_private" bson:"is_private"`
	StatusLabel            *string  `json:"status_label" bson:"status_label"`
	Created                *string  `json:"created" bson:"created"`
	EstimatedContentLength *int64   `json:"estimated_content_length" bson:"estimated_content_length"`
	BuyableObjectType      *string  `json:"buyable_object_type" bson:"buyable_object_type"`
	LastAccessedTime       *string  `json:"last_accessed_time" bson:"last_accessed_time"`
	EnrollmentTime         *string  `json:"enrollment_time" bson:"enrollment_time"`
	LastUpdateDate         *string  `json:"last_update_date" bson:"last_update_date"`
	IsPublished            *bool    `json:"is_published" bson:"is_published"`

	VisibleInstructors []Instructor `json:"visible_instructors" bson:"visible_instructors"`
	PrimaryCategory    *Category    `json:"primary_category" bson:"primary_category"`
	PrimarySubcategory *Subcategory `json:"primary_subcategory" bson:"primary_subcategory"`
	ContextInfo        *ContextInfo `json:"context_info" bson:"context_info"`
}

type Instructor struct {
	ID           *int64  `json:"id" bson:"id"`
	Name         *string `json:"name" bson:"name"`
	DisplayName  *string `json:"display_name" bson:"display_name"`
	JobTitle     *string `json:"job_title" bson:"job_title"`
	Image50x50   *string `json:"image_50x50" bson:"image_50x50"`
	Image100x100 *string `json:"image_100x100" bson:"image_100x100"`
	Initials     *string `json:"initials" bson:"initials"`
	URL          *string `json:"url" bson:"url"`
}

// Category is a course's primary category.
type Category struct {
	ID           *int64  `json:"id" bson:"id"`
	Title        *string `json:"title" bson:"title"`
	TitleCleaned *string `json:"title_cleaned" bson:"title_cleaned"`
	URL          *string `json:"url" bson:"url"`
	IconClass    *string `json:"icon_class" bson:"icon_class"`
}

// Subcategory shares the Category shape but lands in its own table.
type Subcategory Category

// Topic is a label taken from a course's context metadata.
type Topic struct {
	ID    *int64  `json:"id" bson:"id"`
	Title *string `json:"title" bson:"title"`
	URL   *string `json:"url" bson:"url"`
}

// ContextInfo carries the two topic sources of a course.
type ContextInfo struct {
	Label       *Topic `json:"label" bson:"label"`
	Subcategory *Topic `json:"subcategory" bson:"subcategory"`
}

// HasID reports whether an optional related id is usable: present and
// non-zero.
func HasID(id *int64) bool {
	return id != nil && *id != 0
}
