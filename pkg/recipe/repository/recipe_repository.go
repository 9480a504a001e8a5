package repository

import (
	"errors"

	"cookitsimple/entities"
)

// ErrDuplicateSlug marks an insert rejected by the slug uniqueness
// constraint, so callers can tell colliding titles apart from other
// storage failures.
var ErrDuplicateSlug = errors.New("duplicate slug")

type RecipeRepository interface {
	Insert(r *entities.Recipe) error
	List(category string) ([]entities.Recipe, error)
	FindBySlug(slug string) (*entities.Recipe, error)
}
