package models

// Category represents a category model.
// Categories are created on first use of a name and never change afterwards.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
