// Package service implements the business logic between the HTTP handlers
// and the repositories: preference reconciliation, search resolution, recipe
// ownership rules, and the cached derived views.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/plateful/Plateful_Backend/internal/cache"
	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/repository"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// PreferenceService manages per-user preference scores and the cached merged
// views that cover the full catalog per category.
type PreferenceService struct {
	catalogRepo repository.CatalogRepository
	prefRepo    repository.PreferenceRepository
	cache       cache.Cache
	cacheTTL    time.Duration
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(
	catalogRepo repository.CatalogRepository,
	prefRepo repository.PreferenceRepository,
	c cache.Cache,
	cacheTTL time.Duration,
) *PreferenceService {
	return &PreferenceService{
		catalogRepo: catalogRepo,
		prefRepo:    prefRepo,
		cache:       c,
		cacheTTL:    cacheTTL,
	}
}

// GetCatalog returns the full item list for a category, cached with the
// preference TTL. Catalogs change only through operational seeding.
func (s *PreferenceService) GetCatalog(ctx context.Context, category models.Category) ([]*models.CatalogItem, error) {
	return cache.GetOrCompute(ctx, s.cache, cache.CatalogKey(string(category)), s.cacheTTL,
		validCatalogItems,
		func(ctx context.Context) ([]*models.CatalogItem, error) {
			return s.catalogRepo.ListAll(ctx, category)
		})
}

// validCatalogItems rejects cached catalog payloads whose entries lost their
// identity fields, which happens when an entry was written under an older
// encoding and decoded into zero values.
func validCatalogItems(items []*models.CatalogItem) bool {
	if items == nil {
		return false
	}
	for _, item := range items {
		if item == nil || item.ID == 0 || item.Name == "" {
			return false
		}
	}
	return true
}

// SearchCatalog returns the catalog items matching a query text with a
// case-insensitive substring match, plus the total match count. Results go
// straight to the repository; the dialogs that use this need fresh counts,
// and the match set is too query-specific to cache usefully.
func (s *PreferenceService) SearchCatalog(ctx context.Context, category models.Category, query string, limit, offset int) ([]*models.CatalogItem, int, error) {
	return s.catalogRepo.Search(ctx, category, query, limit, offset)
}

// GetMergedPreferences returns the merged view for a user and category: every
// catalog item paired with the user's score, defaulting to zero. The view is
// served from the cache when fresh; writes invalidate it. A cached view is
// checked against the current catalog size before being served, so an entry
// that survived a catalog change or an encoding change is recomputed instead
// of breaking the one-entry-per-catalog-item shape.
func (s *PreferenceService) GetMergedPreferences(ctx context.Context, category models.Category, userID int64) ([]*models.MergedPreference, error) {
	items, err := s.GetCatalog(ctx, category)
	if err != nil {
		return nil, err
	}

	key := cache.PreferenceKey(string(category), userID)
	return cache.GetOrCompute(ctx, s.cache, key, s.cacheTTL,
		func(merged []*models.MergedPreference) bool {
			return validMergedView(merged, len(items))
		},
		func(ctx context.Context) ([]*models.MergedPreference, error) {
			return s.buildMergedView(ctx, category, userID)
		})
}

// validMergedView rejects cached merged views that no longer line up with the
// catalog: wrong length, or entries missing their identity fields.
func validMergedView(merged []*models.MergedPreference, catalogSize int) bool {
	if merged == nil || len(merged) != catalogSize {
		return false
	}
	for _, entry := range merged {
		if entry == nil || entry.ItemID == 0 || entry.Name == "" {
			return false
		}
	}
	return true
}

// buildMergedView reconciles the catalog with the user's stored rows. Catalog
// and preference reads run concurrently; the catalog side drives the result
// so every item appears exactly once, in catalog order. Stored rows whose
// item no longer exists are ignored.
func (s *PreferenceService) buildMergedView(ctx context.Context, category models.Category, userID int64) ([]*models.MergedPreference, error) {
	var items []*models.CatalogItem
	var prefs []*models.PreferenceRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.GetCatalog(gctx, category)
		return err
	})
	g.Go(func() error {
		var err error
		prefs, err = s.prefRepo.GetByUserID(gctx, category, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make(map[int64]int, len(prefs))
	for _, pref := range prefs {
		scores[pref.ItemID] = pref.Score
	}

	merged := make([]*models.MergedPreference, 0, len(items))
	for _, item := range items {
		merged = append(merged, &models.MergedPreference{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			IconURL:     item.IconURL,
			Score:       scores[item.ID],
		})
	}

	return merged, nil
}

// ReplacePreferences replaces a user's entire preference set for one of the
// replace-all categories. Submitted items that no longer exist in the catalog
// are dropped silently; zero scores are accepted but never persisted.
// Resubmitting the same set is idempotent.
func (s *PreferenceService) ReplacePreferences(ctx context.Context, category models.Category, userID int64, req *models.ReplacePreferencesRequest) error {
	if category == models.CategoryNutrient {
		return utils.NewBadRequestError("Nutrition targets are updated via the targets endpoint")
	}

	prefs, err := s.sanitize(ctx, category, req.Preferences)
	if err != nil {
		return err
	}

	if err := s.prefRepo.ReplaceAll(ctx, category, userID, prefs); err != nil {
		return err
	}

	s.invalidate(ctx, category, userID)

	log.Info().
		Str("event", constants.LogEventPreferenceReplace).
		Str("category", string(category)).
		Int64("user_id", userID).
		Int("count", len(prefs)).
		Msg("Preference set replaced")

	return nil
}

// UpsertTargets writes nutrition targets without touching unmentioned
// nutrients. A zero score removes the target.
func (s *PreferenceService) UpsertTargets(ctx context.Context, userID int64, req *models.UpsertTargetsRequest) error {
	targets, err := s.sanitize(ctx, models.CategoryNutrient, req.Targets)
	if err != nil {
		return err
	}

	if err := s.prefRepo.UpsertScores(ctx, models.CategoryNutrient, userID, targets); err != nil {
		return err
	}

	s.invalidate(ctx, models.CategoryNutrient, userID)

	log.Info().
		Str("event", constants.LogEventPreferenceUpsert).
		Int64("user_id", userID).
		Int("count", len(targets)).
		Msg("Nutrition targets upserted")

	return nil
}

// ClearPreferences removes all of a user's scores in one category, returning
// them to the all-zero state. Clearing an already empty category is a no-op.
func (s *PreferenceService) ClearPreferences(ctx context.Context, category models.Category, userID int64) error {
	if err := s.prefRepo.DeleteByUserID(ctx, category, userID); err != nil {
		return err
	}

	s.invalidate(ctx, category, userID)

	log.Info().
		Str("event", constants.LogEventPreferenceClear).
		Str("category", string(category)).
		Int64("user_id", userID).
		Msg("Preference set cleared")

	return nil
}

// PreferredNames returns the lowercased catalog names the user scored above
// zero, highest score first. The search gateway uses these as ranking signals.
func (s *PreferenceService) PreferredNames(ctx context.Context, category models.Category, userID int64) ([]string, error) {
	merged, err := s.GetMergedPreferences(ctx, category, userID)
	if err != nil {
		return nil, err
	}

	preferred := make([]*models.MergedPreference, 0, len(merged))
	for _, entry := range merged {
		if entry.Score > 0 {
			preferred = append(preferred, entry)
		}
	}
	sort.SliceStable(preferred, func(i, j int) bool {
		return preferred[i].Score > preferred[j].Score
	})

	names := make([]string, len(preferred))
	for i, entry := range preferred {
		names[i] = strings.ToLower(entry.Name)
	}
	return names, nil
}

// sanitize rejects out-of-bounds scores, collapses duplicate item IDs (last
// submission wins), and drops references to catalog items that no longer
// exist.
func (s *PreferenceService) sanitize(ctx context.Context, category models.Category, updates []models.PreferenceUpdate) ([]models.PreferenceUpdate, error) {
	maxScore := repository.MaxScore(category)
	ids := make([]int64, 0, len(updates))
	byID := make(map[int64]models.PreferenceUpdate, len(updates))

	for _, update := range updates {
		if update.Score < 0 || update.Score > maxScore {
			return nil, utils.NewValidationError("score",
				fmt.Sprintf("Score for item %d must be between 0 and %d", update.ItemID, maxScore))
		}
		if _, seen := byID[update.ItemID]; !seen {
			ids = append(ids, update.ItemID)
		}
		byID[update.ItemID] = update
	}

	existing, err := s.catalogRepo.ExistingIDs(ctx, category, ids)
	if err != nil {
		return nil, err
	}

	sanitized := make([]models.PreferenceUpdate, 0, len(ids))
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			log.Warn().
				Str("category", string(category)).
				Int64("item_id", id).
				Msg("Dropping preference for unknown catalog item")
			continue
		}
		sanitized = append(sanitized, byID[id])
	}

	return sanitized, nil
}

// invalidate drops the user's cached merged view for a category. A failed
// invalidation is logged but not surfaced; the TTL bounds the staleness.
func (s *PreferenceService) invalidate(ctx context.Context, category models.Category, userID int64) {
	key := cache.PreferenceKey(string(category), userID)
	if err := s.cache.Delete(ctx, key); err != nil {
		utils.LogCacheEvent("invalidate_failed", key, err)
	}
}
