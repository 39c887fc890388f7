package models

// Item represents a listed item joined with the name of its category.
type Item struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	CategoryID int64  `db:"category_id"`
	Category   string `db:"category"`
	// Image is the stored image filename, empty when the item was listed without one.
	Image string `db:"image"`
}
