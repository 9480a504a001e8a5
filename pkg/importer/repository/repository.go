package repository

import "cookitsimple/entities"

// LedgerRepository is the dedup ledger: one row per consumed
// (source id, project) pair.
type LedgerRepository interface {
	// FindBySource returns nil, nil when the pair was never imported.
	FindBySource(sourceID, project string) (*entities.ImportedRecipe, error)
	Record(e *entities.ImportedRecipe) error
	List(limit int) ([]entities.ImportedRecipe, error)
}

// SettingsRepository reads and writes the import_settings singleton.
type SettingsRepository interface {
	// Get returns nil, nil when no settings row exists.
	Get() (*entities.ImportSetting, error)
	Save(s *entities.ImportSetting) error
}
