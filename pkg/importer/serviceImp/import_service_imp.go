package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"cookitsimple/entities"
	"cookitsimple/pkg/convert"
	imprepo "cookitsimple/pkg/importer/repository"
	"cookitsimple/pkg/importer/service"
	"cookitsimple/pkg/provider"
	reciperepo "cookitsimple/pkg/recipe/repository"
)

// Fetcher is the slice of the provider client the orchestrator needs.
type Fetcher interface {
	Fetch(ctx context.Context) (*provider.ExternalRecipe, json.RawMessage, string, error)
}

type importService struct {
	mu       sync.Mutex
	fetcher  Fetcher
	recipes  reciperepo.RecipeRepository
	ledger   imprepo.LedgerRepository
	settings imprepo.SettingsRepository
	now      func() time.Time
}

func New(f Fetcher, recipes reciperepo.RecipeRepository, ledger imprepo.LedgerRepository, settings imprepo.SettingsRepository) service.ImportService {
	return &importService{
		fetcher:  f,
		recipes:  recipes,
		ledger:   ledger,
		settings: settings,
		now:      time.Now,
	}
}

// Run performs one import attempt: schedule gate (unless forced), fetch,
// dedup check, convert, persist, bookkeeping. Every outcome is returned
// structured; nothing escapes as a panic or naked error.
func (s *importService) Run(ctx context.Context, force bool) service.Outcome {
	// The ledger check and the recipe insert are not one transaction, so
	// concurrent runs could both pass the dedup check. Serializing runs
	// here closes that window for this single-process deployment.
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	// A forced run skips the gate entirely, settings read included; the
	// schedule is still advanced afterwards if a settings row exists.
	if !force {
		cfg, err := s.settings.Get()
		if err != nil {
			return failed(service.FailPersistence, "could not fetch import settings", err)
		}
		if out := gate(cfg, now); out != nil {
			return *out
		}
	}

	ext, raw, msg, err := s.fetcher.Fetch(ctx)
	if err != nil {
		var se *provider.StatusError
		if errors.As(err, &se) {
			return failed(service.FailProviderError, se.Error(), err)
		}
		return failed(service.FailProviderUnreachable, "provider unreachable: "+err.Error(), err)
	}
	if ext == nil {
		return skipped(service.SkipNoCandidate, msg)
	}
	log.Printf("[import] candidate %q (id=%s)", ext.Title, ext.ID)

	prev, err := s.ledger.FindBySource(string(ext.ID), provider.SourceProject)
	if err != nil {
		return failed(service.FailPersistence, "ledger lookup failed", err)
	}
	if prev != nil {
		out := skipped(service.SkipAlreadyImported, "Recipe already imported")
		out.LocalRecipeID = prev.LocalRecipeID
		return out
	}

	rec := convert.FromExternal(ext)
	if err := s.recipes.Insert(&rec); err != nil {
		if errors.Is(err, reciperepo.ErrDuplicateSlug) {
			return failed(service.FailPersistence, "duplicate slug: "+rec.Slug, err)
		}
		return failed(service.FailPersistence, "insert recipe failed", err)
	}
	log.Printf("[import] inserted recipe id=%d slug=%s", rec.ID, rec.Slug)

	// Bookkeeping failures past this point are logged, not returned: the
	// recipe is live. A ledger gap only means a repeat attempt falls
	// through to the slug constraint instead of the dedup check.
	if err := s.ledger.Record(&entities.ImportedRecipe{
		SourceRecipeID: string(ext.ID),
		SourceProject:  provider.SourceProject,
		LocalRecipeID:  &rec.ID,
		RawData:        string(raw),
		ImportedAt:     now,
	}); err != nil {
		log.Printf("[import] WARN: record ledger entry: %v", err)
	}

	s.advance(now)

	return service.Outcome{
		Status:  service.StatusImported,
		Message: "Recipe imported successfully",
		Recipe:  &rec,
	}
}

// gate returns the skip outcome blocking an unattended run, or nil when
// the run may proceed.
func gate(cfg *entities.ImportSetting, now time.Time) *service.Outcome {
	if cfg == nil {
		out := skipped(service.SkipNoSettings, "No import settings configured")
		return &out
	}
	if !cfg.Enabled {
		out := skipped(service.SkipDisabled, "Import is disabled")
		return &out
	}
	if cfg.NextImportAt != nil && cfg.NextImportAt.After(now) {
		out := skipped(service.SkipNotYetDue, "Not yet time for next import")
		out.NextImportAt = cfg.NextImportAt
		return &out
	}
	return nil
}

// advance stamps the completed run and schedules the next one. The
// settings row is re-read here so a frequency edited mid-run (and the
// forced path, which never read it) is honored. Failures are logged, not
// returned; the recipe is already live. Manual settings edits never pass
// through here.
func (s *importService) advance(now time.Time) {
	cfg, err := s.settings.Get()
	if err != nil {
		log.Printf("[import] WARN: read settings for advance: %v", err)
		return
	}
	if cfg == nil {
		return
	}
	next := now.AddDate(0, 0, frequencyDays(cfg.Frequency))
	cfg.LastImportAt = &now
	cfg.NextImportAt = &next
	if err := s.settings.Save(cfg); err != nil {
		log.Printf("[import] WARN: advance schedule: %v", err)
	}
}

// frequencyDays treats unknown values as every_2_days.
func frequencyDays(frequency string) int {
	switch frequency {
	case entities.FrequencyDaily:
		return 1
	case entities.FrequencyWeekly:
		return 7
	default:
		return 2
	}
}

func skipped(reason, msg string) service.Outcome {
	return service.Outcome{Status: service.StatusSkipped, Reason: reason, Message: msg}
}

func failed(kind, msg string, err error) service.Outcome {
	return service.Outcome{Status: service.StatusFailed, Reason: kind, Message: msg, Err: err}
}
