package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookitsimple/entities"
)

func TestOpenSQLite_SeedsDisabledSettings(t *testing.T) {
	db := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))

	var cfg entities.ImportSetting
	require.NoError(t, db.First(&cfg).Error)
	assert.False(t, cfg.Enabled, "fresh installs must not import until enabled")
	assert.Equal(t, entities.FrequencyEvery2Days, cfg.Frequency)
	assert.Nil(t, cfg.NextImportAt)
}

func TestSeedImportSettings_Idempotent(t *testing.T) {
	db := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, SeedImportSettings(db))
	require.NoError(t, SeedImportSettings(db))

	var n int64
	require.NoError(t, db.Model(&entities.ImportSetting{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestOpenSQLite_LedgerUniqueness(t *testing.T) {
	db := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))

	require.NoError(t, db.Create(&entities.ImportedRecipe{
		SourceRecipeID: "ext-1", SourceProject: "recipe-pixie",
	}).Error)

	err := db.Create(&entities.ImportedRecipe{
		SourceRecipeID: "ext-1", SourceProject: "recipe-pixie",
	}).Error
	assert.Error(t, err, "the (source id, project) pair must be unique")

	// same id under a different provider is a different recipe
	assert.NoError(t, db.Create(&entities.ImportedRecipe{
		SourceRecipeID: "ext-1", SourceProject: "other-project",
	}).Error)
}
