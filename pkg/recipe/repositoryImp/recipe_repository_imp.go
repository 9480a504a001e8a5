package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cookitsimple/entities"
	"cookitsimple/pkg/recipe/repository"
)

type recipeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecipeRepository { return &recipeRepo{db} }

func (r *recipeRepo) Insert(rec *entities.Recipe) error {
	if err := r.db.Create(rec).Error; err != nil {
		// slug is the only unique column on recipes
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", repository.ErrDuplicateSlug, rec.Slug)
		}
		return err
	}
	return nil
}

func (r *recipeRepo) List(category string) ([]entities.Recipe, error) {
	q := r.db.Where("published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []entities.Recipe
	return out, q.Order("created_at DESC").Find(&out).Error
}

func (r *recipeRepo) FindBySlug(slug string) (*entities.Recipe, error) {
	var out entities.Recipe
	if err := r.db.Where("slug = ? AND published = ?", slug, true).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
