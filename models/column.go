package models

// BoardColumn is an ordered kanban lane. The id is a slug derived from the
// title at creation time and never changes afterwards, so tasks keep a
// stable status string across renames.
type BoardColumn struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}
