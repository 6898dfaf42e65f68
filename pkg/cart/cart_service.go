package cart

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/pkg/recipe"
	"Foodgram-Backend/pkg/user"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, recipeID string, userID string) (domain.ShortRecipeResponse, error)
		RemoveFromCart(ctx context.Context, recipeID string, userID string) error
		DownloadShoppingList(ctx context.Context, userID string) (domain.ShoppingReport, error)
	}

	cartService struct {
		cartRepository   CartRepository
		recipeRepository recipe.RecipeRepository
		userRepository   user.UserRepository
		now              func() time.Time
	}
)

// NewCartService wires the cart with its collaborators. The clock is
// injected so report generation is reproducible in tests.
func NewCartService(
	cartRepository CartRepository,
	recipeRepository recipe.RecipeRepository,
	userRepository user.UserRepository,
	now func() time.Time,
) CartService {
	if now == nil {
		now = time.Now
	}
	return &cartService{
		cartRepository:   cartRepository,
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
		now:              now,
	}
}

func (s *cartService) AddToCart(ctx context.Context, recipeID string, userID string) (domain.ShortRecipeResponse, error) {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShortRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ShortRecipeResponse{}, err
	}

	inCart, err := s.cartRepository.IsInCart(ctx, userID, recipeID)
	if err != nil {
		return domain.ShortRecipeResponse{}, err
	}
	if inCart {
		return domain.ShortRecipeResponse{}, domain.ErrAlreadyInCart
	}

	if err := s.cartRepository.AddToCart(ctx, userID, recipeID); err != nil {
		return domain.ShortRecipeResponse{}, err
	}

	return domain.ShortRecipeResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Image:       r.ImageURL,
		CookingTime: r.CookingTime,
		PubDate:     r.PubDate,
	}, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	removed, err := s.cartRepository.RemoveFromCart(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotInCart
	}
	return nil
}

// DownloadShoppingList aggregates the user's cart into a flat-text
// shopping list. An empty cart is a precondition failure, never an
// empty document.
func (s *cartService) DownloadShoppingList(ctx context.Context, userID string) (domain.ShoppingReport, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingReport{}, domain.ErrUserNotFound
		}
		return domain.ShoppingReport{}, err
	}

	recipeIDs, err := s.cartRepository.GetCartRecipeIDs(ctx, userID)
	if err != nil {
		return domain.ShoppingReport{}, err
	}
	if len(recipeIDs) == 0 {
		return domain.ShoppingReport{}, domain.ErrCartEmpty
	}

	lines, err := s.cartRepository.ListIngredientLines(ctx, recipeIDs)
	if err != nil {
		return domain.ShoppingReport{}, err
	}
	if len(lines) == 0 {
		return domain.ShoppingReport{}, domain.ErrCartEmpty
	}

	aggregated := AggregateIngredients(lines)
	now := s.now()

	return domain.ShoppingReport{
		Content:  RenderShoppingList(u.FullName(), now, aggregated),
		Filename: ReportFilename(u.Username),
	}, nil
}
