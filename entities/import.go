package entities

import "time"

const (
	FrequencyDaily      = "daily"
	FrequencyEvery2Days = "every_2_days"
	FrequencyWeekly     = "weekly"
)

// ImportSetting is the single row controlling unattended imports.
// Enabled and NextImportAt gate scheduled runs; ImportHour is a hint for
// operators and does not gate date eligibility.
type ImportSetting struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Enabled      bool       `json:"enabled"`
	Frequency    string     `json:"frequency"`   // daily|every_2_days|weekly
	ImportHour   int        `json:"import_hour"` // 0-23
	LastImportAt *time.Time `json:"last_import_at"`
	NextImportAt *time.Time `json:"next_import_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ImportedRecipe records one consumed external recipe. The composite
// unique index is the dedup key: at most one row per (source id, project).
type ImportedRecipe struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SourceRecipeID string    `gorm:"uniqueIndex:ux_imported_source,priority:1" json:"source_recipe_id"`
	SourceProject  string    `gorm:"uniqueIndex:ux_imported_source,priority:2" json:"source_project"`
	LocalRecipeID  *uint     `gorm:"index" json:"local_recipe_id"`
	RawData        string    `json:"raw_data"` // original provider JSON, kept for audit
	ImportedAt     time.Time `json:"imported_at"`
}
