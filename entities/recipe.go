package entities

import "time"

// Recipe is one recipe row. Imported recipes carry a nil AuthorID;
// hand-authored ones reference the admin user who created them.
type Recipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Slug         string    `gorm:"uniqueIndex;size:100" json:"slug"`
	Description  string    `json:"description"`
	Ingredients  []string  `gorm:"serializer:json" json:"ingredients"`
	Instructions []string  `gorm:"serializer:json" json:"instructions"`
	Time         string    `json:"time"`       // display string, e.g. "45 Min"
	Difficulty   string    `json:"difficulty"` // leicht|mittel|schwer
	Category     string    `json:"category"`
	Servings     int       `json:"servings"`
	ImageURL     *string   `json:"image_url"`
	Featured     bool      `json:"featured"`
	Published    bool      `gorm:"index" json:"published"`
	AuthorID     *uint     `json:"author_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
