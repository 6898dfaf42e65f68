package cart

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/recipe"
	"Foodgram-Backend/pkg/user"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeCartRepository struct {
	entries   map[string]bool
	recipeIDs []uuid.UUID
	lines     []domain.IngredientLine
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{entries: make(map[string]bool)}
}

func (f *fakeCartRepository) AddToCart(_ context.Context, userID, recipeID string) error {
	f.entries[userID+"/"+recipeID] = true
	return nil
}

func (f *fakeCartRepository) RemoveFromCart(_ context.Context, userID, recipeID string) (bool, error) {
	key := userID + "/" + recipeID
	if !f.entries[key] {
		return false, nil
	}
	delete(f.entries, key)
	return true, nil
}

func (f *fakeCartRepository) IsInCart(_ context.Context, userID, recipeID string) (bool, error) {
	return f.entries[userID+"/"+recipeID], nil
}

func (f *fakeCartRepository) GetCartRecipeIDs(_ context.Context, _ string) ([]uuid.UUID, error) {
	return f.recipeIDs, nil
}

func (f *fakeCartRepository) ListIngredientLines(_ context.Context, _ []uuid.UUID) ([]domain.IngredientLine, error) {
	return f.lines, nil
}

type fakeRecipeRepository struct {
	recipe.RecipeRepository
	recipes map[string]*entities.Recipe
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

type fakeUserRepository struct {
	user.UserRepository
	users map[string]*entities.User
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func fixedClock() time.Time {
	return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()
	recipeID := uuid.New()
	userID := uuid.New().String()

	recipes := &fakeRecipeRepository{recipes: map[string]*entities.Recipe{
		recipeID.String(): {ID: recipeID, Name: "Омлет", CookingTime: 10},
	}}
	users := &fakeUserRepository{}

	t.Run("adds recipe and returns short payload", func(t *testing.T) {
		carts := newFakeCartRepository()
		service := NewCartService(carts, recipes, users, fixedClock)

		res, err := service.AddToCart(ctx, recipeID.String(), userID)

		assert.NoError(t, err)
		assert.Equal(t, recipeID.String(), res.ID)
		assert.Equal(t, "Омлет", res.Name)
	})

	t.Run("rejects duplicate entry", func(t *testing.T) {
		carts := newFakeCartRepository()
		service := NewCartService(carts, recipes, users, fixedClock)

		_, err := service.AddToCart(ctx, recipeID.String(), userID)
		assert.NoError(t, err)

		_, err = service.AddToCart(ctx, recipeID.String(), userID)
		assert.ErrorIs(t, err, domain.ErrAlreadyInCart)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		carts := newFakeCartRepository()
		service := NewCartService(carts, recipes, users, fixedClock)

		_, err := service.AddToCart(ctx, uuid.New().String(), userID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	recipeID := uuid.New()
	userID := uuid.New().String()

	recipes := &fakeRecipeRepository{recipes: map[string]*entities.Recipe{
		recipeID.String(): {ID: recipeID, Name: "Омлет"},
	}}
	users := &fakeUserRepository{}

	t.Run("removes existing entry", func(t *testing.T) {
		carts := newFakeCartRepository()
		service := NewCartService(carts, recipes, users, fixedClock)

		_, err := service.AddToCart(ctx, recipeID.String(), userID)
		assert.NoError(t, err)

		assert.NoError(t, service.RemoveFromCart(ctx, recipeID.String(), userID))
	})

	t.Run("missing entry", func(t *testing.T) {
		carts := newFakeCartRepository()
		service := NewCartService(carts, recipes, users, fixedClock)

		err := service.RemoveFromCart(ctx, recipeID.String(), userID)
		assert.ErrorIs(t, err, domain.ErrNotInCart)
	})
}

func TestDownloadShoppingList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	users := &fakeUserRepository{users: map[string]*entities.User{
		userID.String(): {
			ID:        userID,
			Username:  "ivan",
			FirstName: "Иван",
			LastName:  "Иванов",
		},
	}}
	recipes := &fakeRecipeRepository{}

	t.Run("empty cart is rejected", func(t *testing.T) {
		carts := newFakeCartRepository()
		service := NewCartService(carts, recipes, users, fixedClock)

		_, err := service.DownloadShoppingList(ctx, userID.String())
		assert.ErrorIs(t, err, domain.ErrCartEmpty)
	})

	t.Run("cart with recipes but no ingredient rows is rejected", func(t *testing.T) {
		carts := newFakeCartRepository()
		carts.recipeIDs = []uuid.UUID{uuid.New()}
		service := NewCartService(carts, recipes, users, fixedClock)

		_, err := service.DownloadShoppingList(ctx, userID.String())
		assert.ErrorIs(t, err, domain.ErrCartEmpty)
	})

	t.Run("unknown user", func(t *testing.T) {
		carts := newFakeCartRepository()
		service := NewCartService(carts, recipes, users, fixedClock)

		_, err := service.DownloadShoppingList(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("aggregates across recipes into one document", func(t *testing.T) {
		carts := newFakeCartRepository()
		carts.recipeIDs = []uuid.UUID{uuid.New(), uuid.New()}
		carts.lines = []domain.IngredientLine{
			{Name: "Яйца", MeasurementUnit: "шт", Amount: 2},
			{Name: "Молоко", MeasurementUnit: "мл", Amount: 200},
			{Name: "Яйца", MeasurementUnit: "шт", Amount: 3},
			{Name: "Молоко", MeasurementUnit: "мл", Amount: 300},
		}
		service := NewCartService(carts, recipes, users, fixedClock)

		report, err := service.DownloadShoppingList(ctx, userID.String())

		assert.NoError(t, err)
		assert.Equal(t, "ivan_shopping_list.txt", report.Filename)
		want := "Список покупок для: Иван Иванов\n\n" +
			"Дата: 2026-08-31\n\n" +
			"- Молоко (мл) - 500\n" +
			"- Яйца (шт) - 5\n\n" +
			"Foodgram (2026)"
		assert.Equal(t, want, report.Content)
	})

	t.Run("repeated downloads with a fixed clock are identical", func(t *testing.T) {
		carts := newFakeCartRepository()
		carts.recipeIDs = []uuid.UUID{uuid.New()}
		carts.lines = []domain.IngredientLine{
			{Name: "Мука", MeasurementUnit: "г", Amount: 400},
			{Name: "Соль", MeasurementUnit: "г", Amount: 5},
		}
		service := NewCartService(carts, recipes, users, fixedClock)

		first, err := service.DownloadShoppingList(ctx, userID.String())
		assert.NoError(t, err)
		second, err := service.DownloadShoppingList(ctx, userID.String())
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
