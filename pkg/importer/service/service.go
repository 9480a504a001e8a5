package service

import (
	"context"
	"time"

	"cookitsimple/entities"
)

// Status classifies the result of one import attempt.
type Status string

const (
	StatusImported Status = "imported"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Skip reasons.
const (
	SkipNoSettings      = "no_settings"
	SkipDisabled        = "disabled"
	SkipNotYetDue       = "not_yet_due"
	SkipNoCandidate     = "no_candidate"
	SkipAlreadyImported = "already_imported"
)

// Failure kinds. Duplicate-slug failures keep FailPersistence as their
// kind; errors.Is(out.Err, repository.ErrDuplicateSlug) tells them apart.
const (
	FailProviderUnreachable = "provider_unreachable"
	FailProviderError       = "provider_error"
	FailPersistence         = "persistence_error"
)

// Outcome is the structured result of a single import run. Exactly one
// of the Status values applies; Reason carries the skip reason or
// failure kind.
type Outcome struct {
	Status        Status
	Reason        string
	Message       string
	Recipe        *entities.Recipe
	LocalRecipeID *uint      // set for already_imported skips
	NextImportAt  *time.Time // set for not_yet_due skips
	Err           error      // set for failures
}

type ImportService interface {
	Run(ctx context.Context, force bool) Outcome
}
