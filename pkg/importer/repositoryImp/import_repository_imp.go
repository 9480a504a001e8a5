package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"cookitsimple/entities"
	"cookitsimple/pkg/importer/repository"
)

const defaultHistoryLimit = 100

type ledgerRepo struct{ db *gorm.DB }

func NewLedger(db *gorm.DB) repository.LedgerRepository { return &ledgerRepo{db} }

func (r *ledgerRepo) FindBySource(sourceID, project string) (*entities.ImportedRecipe, error) {
	var out entities.ImportedRecipe
	err := r.db.Where("source_recipe_id = ? AND source_project = ?", sourceID, project).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ledgerRepo) Record(e *entities.ImportedRecipe) error {
	return r.db.Create(e).Error
}

func (r *ledgerRepo) List(limit int) ([]entities.ImportedRecipe, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultHistoryLimit
	}
	var out []entities.ImportedRecipe
	return out, r.db.Order("imported_at DESC").Limit(limit).Find(&out).Error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettings(db *gorm.DB) repository.SettingsRepository { return &settingsRepo{db} }

func (r *settingsRepo) Get() (*entities.ImportSetting, error) {
	var out entities.ImportSetting
	err := r.db.Order("id ASC").First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *settingsRepo) Save(s *entities.ImportSetting) error {
	return r.db.Save(s).Error
}
