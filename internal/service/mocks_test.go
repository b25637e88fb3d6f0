package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// Mock implementations for testing

// MockCatalogRepository serves catalog items from memory.
type MockCatalogRepository struct {
	items     map[models.Category][]*models.CatalogItem
	listCalls int
}

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		items: make(map[models.Category][]*models.CatalogItem),
	}
}

func (m *MockCatalogRepository) Seed(category models.Category, items ...*models.CatalogItem) {
	m.items[category] = append(m.items[category], items...)
}

// sortByName returns a copy of items in catalog order, which is alphabetical
// by name regardless of seeding order.
func sortByName(items []*models.CatalogItem) []*models.CatalogItem {
	sorted := append([]*models.CatalogItem(nil), items...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}

func (m *MockCatalogRepository) ListAll(ctx context.Context, category models.Category) ([]*models.CatalogItem, error) {
	m.listCalls++
	return sortByName(m.items[category]), nil
}

func (m *MockCatalogRepository) Search(ctx context.Context, category models.Category, query string, limit, offset int) ([]*models.CatalogItem, int, error) {
	matches := make([]*models.CatalogItem, 0)
	for _, item := range sortByName(m.items[category]) {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(query)) {
			matches = append(matches, item)
		}
	}
	total := len(matches)
	if offset >= total {
		return []*models.CatalogItem{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matches[offset:end], total, nil
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, category models.Category, id int64) (*models.CatalogItem, error) {
	for _, item := range m.items[category] {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, utils.NewNotFoundError("CatalogItem", id)
}

func (m *MockCatalogRepository) ExistingIDs(ctx context.Context, category models.Category, ids []int64) (map[int64]struct{}, error) {
	known := make(map[int64]struct{})
	for _, item := range m.items[category] {
		known[item.ID] = struct{}{}
	}
	existing := make(map[int64]struct{})
	for _, id := range ids {
		if _, ok := known[id]; ok {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}

// MockPreferenceRepository stores preference rows in memory, keyed by
// category and user.
type MockPreferenceRepository struct {
	rows map[models.Category]map[int64][]*models.PreferenceRow
}

func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{
		rows: make(map[models.Category]map[int64][]*models.PreferenceRow),
	}
}

func (m *MockPreferenceRepository) userRows(category models.Category) map[int64][]*models.PreferenceRow {
	if m.rows[category] == nil {
		m.rows[category] = make(map[int64][]*models.PreferenceRow)
	}
	return m.rows[category]
}

func (m *MockPreferenceRepository) GetByUserID(ctx context.Context, category models.Category, userID int64) ([]*models.PreferenceRow, error) {
	return m.userRows(category)[userID], nil
}

func (m *MockPreferenceRepository) ReplaceAll(ctx context.Context, category models.Category, userID int64, prefs []models.PreferenceUpdate) error {
	rows := make([]*models.PreferenceRow, 0, len(prefs))
	for _, pref := range prefs {
		if pref.Score <= 0 {
			continue
		}
		rows = append(rows, &models.PreferenceRow{UserID: userID, ItemID: pref.ItemID, Score: pref.Score})
	}
	m.userRows(category)[userID] = rows
	return nil
}

func (m *MockPreferenceRepository) UpsertScores(ctx context.Context, category models.Category, userID int64, targets []models.PreferenceUpdate) error {
	rows := m.userRows(category)[userID]
	for _, target := range targets {
		found := false
		for i, row := range rows {
			if row.ItemID == target.ItemID {
				if target.Score <= 0 {
					rows = append(rows[:i], rows[i+1:]...)
				} else {
					row.Score = target.Score
				}
				found = true
				break
			}
		}
		if !found && target.Score > 0 {
			rows = append(rows, &models.PreferenceRow{UserID: userID, ItemID: target.ItemID, Score: target.Score})
		}
	}
	m.userRows(category)[userID] = rows
	return nil
}

func (m *MockPreferenceRepository) DeleteByUserID(ctx context.Context, category models.Category, userID int64) error {
	delete(m.userRows(category), userID)
	return nil
}

// MockRecipeRepository stores recipes in memory and records the last search
// request it received.
type MockRecipeRepository struct {
	recipes       map[int64]*models.Recipe
	nextID        int64
	lastSearch    *models.RecipeSearchRequest
	searchResult  *models.RecipeSearchResult
}

func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{
		recipes:      make(map[int64]*models.Recipe),
		nextID:       1,
		searchResult: &models.RecipeSearchResult{Recipes: []*models.Recipe{}},
	}
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	recipe.ID = m.nextID
	m.nextID++
	m.recipes[recipe.ID] = recipe
	return nil
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe, ok := m.recipes[id]
	if !ok {
		return nil, utils.NewNotFoundError("Recipe", id)
	}
	return recipe, nil
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	if _, ok := m.recipes[recipe.ID]; !ok {
		return utils.NewNotFoundError("Recipe", recipe.ID)
	}
	m.recipes[recipe.ID] = recipe
	return nil
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.recipes[id]; !ok {
		return utils.NewNotFoundError("Recipe", id)
	}
	delete(m.recipes, id)
	return nil
}

func (m *MockRecipeRepository) Search(ctx context.Context, req *models.RecipeSearchRequest) (*models.RecipeSearchResult, error) {
	m.lastSearch = req
	return m.searchResult, nil
}

// MockReviewRepository stores reviews in memory.
type MockReviewRepository struct {
	reviews map[int64]*models.Review
	nextID  int64
}

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[int64]*models.Review),
		nextID:  1,
	}
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	for _, existing := range m.reviews {
		if existing.RecipeID == review.RecipeID && existing.UserID == review.UserID {
			return utils.NewDuplicateError("Review", "user_id", review.UserID)
		}
	}
	review.ID = m.nextID
	m.nextID++
	m.reviews[review.ID] = review
	return nil
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	review, ok := m.reviews[id]
	if !ok {
		return nil, utils.NewNotFoundError("Review", id)
	}
	return review, nil
}

func (m *MockReviewRepository) ListByRecipe(ctx context.Context, recipeID int64, limit, offset int) ([]*models.Review, int, error) {
	matches := make([]*models.Review, 0)
	for _, review := range m.reviews {
		if review.RecipeID == recipeID {
			matches = append(matches, review)
		}
	}
	return matches, len(matches), nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.reviews[id]; !ok {
		return utils.NewNotFoundError("Review", id)
	}
	delete(m.reviews, id)
	return nil
}

func (m *MockReviewRepository) Rating(ctx context.Context, recipeID int64) (*models.RecipeRating, error) {
	rating := &models.RecipeRating{RecipeID: recipeID}
	total := 0
	for _, review := range m.reviews {
		if review.RecipeID == recipeID {
			total += review.Rating
			rating.ReviewCount++
		}
	}
	if rating.ReviewCount > 0 {
		rating.AverageRating = float64(total) / float64(rating.ReviewCount)
	}
	return rating, nil
}

// MockMealPlanRepository stores plans and entries in memory.
type MockMealPlanRepository struct {
	plans       map[int64]*models.MealPlan
	entries     map[int64]*models.MealPlanEntry
	nextPlanID  int64
	nextEntryID int64
}

func NewMockMealPlanRepository() *MockMealPlanRepository {
	return &MockMealPlanRepository{
		plans:       make(map[int64]*models.MealPlan),
		entries:     make(map[int64]*models.MealPlanEntry),
		nextPlanID:  1,
		nextEntryID: 1,
	}
}

func (m *MockMealPlanRepository) Create(ctx context.Context, plan *models.MealPlan) error {
	plan.ID = m.nextPlanID
	m.nextPlanID++
	m.plans[plan.ID] = plan
	return nil
}

func (m *MockMealPlanRepository) GetByID(ctx context.Context, id int64) (*models.MealPlan, error) {
	plan, ok := m.plans[id]
	if !ok {
		return nil, utils.NewNotFoundError("MealPlan", id)
	}
	return plan, nil
}

func (m *MockMealPlanRepository) ListByUser(ctx context.Context, userID int64) ([]*models.MealPlan, error) {
	plans := make([]*models.MealPlan, 0)
	for _, plan := range m.plans {
		if plan.UserID == userID {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (m *MockMealPlanRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.plans[id]; !ok {
		return utils.NewNotFoundError("MealPlan", id)
	}
	delete(m.plans, id)
	for entryID, entry := range m.entries {
		if entry.PlanID == id {
			delete(m.entries, entryID)
		}
	}
	return nil
}

func (m *MockMealPlanRepository) AddEntry(ctx context.Context, entry *models.MealPlanEntry) error {
	for _, existing := range m.entries {
		if existing.PlanID == entry.PlanID && existing.PlanDate.Equal(entry.PlanDate) && existing.Slot == entry.Slot {
			return utils.NewDuplicateError("MealPlanEntry", "slot", entry.Slot)
		}
	}
	entry.ID = m.nextEntryID
	m.nextEntryID++
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockMealPlanRepository) GetEntry(ctx context.Context, id int64) (*models.MealPlanEntry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, utils.NewNotFoundError("MealPlanEntry", id)
	}
	return entry, nil
}

func (m *MockMealPlanRepository) ListEntries(ctx context.Context, planID int64) ([]*models.MealPlanEntry, error) {
	entries := make([]*models.MealPlanEntry, 0)
	for _, entry := range m.entries {
		if entry.PlanID == planID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (m *MockMealPlanRepository) DeleteEntry(ctx context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return utils.NewNotFoundError("MealPlanEntry", id)
	}
	delete(m.entries, id)
	return nil
}

func (m *MockMealPlanRepository) UpcomingEntries(ctx context.Context, userID int64, from, until time.Time) ([]*models.MealPlanEntry, error) {
	entries := make([]*models.MealPlanEntry, 0)
	for _, entry := range m.entries {
		plan, ok := m.plans[entry.PlanID]
		if !ok || plan.UserID != userID {
			continue
		}
		if !entry.PlanDate.Before(from) && entry.PlanDate.Before(until) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
