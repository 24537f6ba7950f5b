package models

// Category represents a board category. Categories are created by seeding or
// admin tooling and are immutable in normal use; the app never deletes them.
type Category struct {
	Slug    string `json:"slug" firestore:"slug"` // Document ID in the categories collection
	TitleEn string `json:"titleEn" firestore:"titleEn"`
	TitleZh string `json:"titleZh,omitempty" firestore:"titleZh,omitempty"`
	Order   int    `json:"order" firestore:"order"` // Ascending display sort key, default 0
}
