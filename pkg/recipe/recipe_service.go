package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/internal/utils/storage"
	"Foodgram-Backend/pkg/ingredient"
	"Foodgram-Backend/pkg/tag"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const shortCodeLength = 10

type (
	// SubscriptionChecker reports whether one user follows another. The
	// user repository satisfies it; declaring it here keeps the package
	// free of a dependency on pkg/user.
	SubscriptionChecker interface {
		IsSubscribed(ctx context.Context, followerID, followedID string) (bool, error)
	}

	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeUpdateRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, params domain.RecipeListParams, userID string) ([]domain.RecipeResponse, int64, error)
		FavoriteRecipe(ctx context.Context, recipeID string, userID string) (domain.ShortRecipeResponse, error)
		UnfavoriteRecipe(ctx context.Context, recipeID string, userID string) error
		GetShortLink(ctx context.Context, recipeID string, baseURL string) (domain.ShortLinkResponse, error)
		ResolveShortCode(ctx context.Context, code string) (string, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		tagRepository        tag.TagRepository
		subscriptions        SubscriptionChecker
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	tagRepository tag.TagRepository,
	subscriptions SubscriptionChecker,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		tagRepository:        tagRepository,
		subscriptions:        subscriptions,
		s3:                   s3,
	}
}

// validateComposition rejects empty or duplicated tag/ingredient sets,
// mirroring the create/update rules of the API contract.
func validateComposition(tagIDs []string, lines []domain.RecipeIngredientRequest) error {
	if len(lines) == 0 {
		return domain.ErrNoIngredients
	}
	if len(tagIDs) == 0 {
		return domain.ErrNoTags
	}

	seenTags := make(map[string]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seenTags[id]; ok {
			return domain.ErrDuplicateTag
		}
		seenTags[id] = struct{}{}
	}

	seenIngredients := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if line.Amount < 1 {
			return domain.ErrInvalidAmount
		}
		if _, ok := seenIngredients[line.ID]; ok {
			return domain.ErrDuplicateIngredient
		}
		seenIngredients[line.ID] = struct{}{}
	}

	return nil
}

// resolveComposition loads the referenced tags and ingredients and
// builds the ingredient line entities. Unknown ids are rejected.
func (s *recipeService) resolveComposition(ctx context.Context, tagIDs []string, lines []domain.RecipeIngredientRequest) ([]*entities.Tag, []*entities.RecipeIngredient, error) {
	tags, err := s.tagRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, nil, domain.ErrTagNotFound
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ID)
	}
	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(ingredients) != len(lines) {
		return nil, nil, domain.ErrIngredientNotFound
	}

	entityLines := make([]*entities.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		ingredientUUID, err := uuid.Parse(line.ID)
		if err != nil {
			return nil, nil, domain.ErrParseUUID
		}
		entityLines = append(entityLines, &entities.RecipeIngredient{
			ID:           uuid.New(),
			IngredientID: ingredientUUID,
			Amount:       line.Amount,
		})
	}

	return tags, entityLines, nil
}

func (s *recipeService) uploadImage(ctx context.Context, image string) (string, error) {
	raw, ext, contentType, err := utils.DecodeBase64Image(image)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("recipes/images/%s.%s", uuid.New().String(), ext)
	return s.s3.UploadFile(ctx, key, bytes.NewReader(raw), contentType)
}

func generateShortCode() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:shortCodeLength]
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest, userID string) (domain.RecipeResponse, error) {
	if req.CookingTime < 1 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookingTime
	}
	if err := validateComposition(req.Tags, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	tags, lines, err := s.resolveComposition(ctx, req.Tags, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	authorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorUUID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		ImageURL:    imageURL,
		ShortCode:   generateShortCode(),
		PubDate:     time.Now(),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, tags, lines); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeUpdateRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	if recipe.AuthorID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrNotRecipeAuthor
	}

	if req.CookingTime < 1 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookingTime
	}
	if err := validateComposition(req.Tags, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	tags, lines, err := s.resolveComposition(ctx, req.Tags, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	if req.Image != "" {
		imageURL, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.ImageURL = imageURL
	}

	// Preloaded associations must not be re-saved alongside the row.
	recipe.Tags = nil
	recipe.Ingredients = nil
	recipe.Author = nil

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, lines); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID.String() != userID {
		return domain.ErrNotRecipeAuthor
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return s.toRecipeResponse(ctx, recipe, userID)
}

func (s *recipeService) GetRecipes(ctx context.Context, params domain.RecipeListParams, userID string) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, params, userID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := s.toRecipeResponse(ctx, recipe, userID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}

	return result, count, nil
}

func (s *recipeService) FavoriteRecipe(ctx context.Context, recipeID string, userID string) (domain.ShortRecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShortRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ShortRecipeResponse{}, err
	}

	favorited, err := s.recipeRepository.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return domain.ShortRecipeResponse{}, err
	}
	if favorited {
		return domain.ShortRecipeResponse{}, domain.ErrAlreadyFavorited
	}

	if err := s.recipeRepository.AddFavorite(ctx, userID, recipeID); err != nil {
		return domain.ShortRecipeResponse{}, err
	}

	return domain.ShortRecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
		PubDate:     recipe.PubDate,
	}, nil
}

func (s *recipeService) UnfavoriteRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	removed, err := s.recipeRepository.RemoveFavorite(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFavorited
	}
	return nil
}

func (s *recipeService) GetShortLink(ctx context.Context, recipeID string, baseURL string) (domain.ShortLinkResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShortLinkResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ShortLinkResponse{}, err
	}

	return domain.ShortLinkResponse{
		ShortLink: fmt.Sprintf("%s/s/%s", baseURL, recipe.ShortCode),
	}, nil
}

func (s *recipeService) ResolveShortCode(ctx context.Context, code string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrShortLinkNotFound
		}
		return "", err
	}
	return recipe.ID.String(), nil
}

func (s *recipeService) toRecipeResponse(ctx context.Context, recipe *entities.Recipe, userID string) (domain.RecipeResponse, error) {
	isFavorited := false
	isInCart := false
	isSubscribed := false

	if userID != "" {
		var err error
		if isFavorited, err = s.recipeRepository.IsFavorited(ctx, userID, recipe.ID.String()); err != nil {
			return domain.RecipeResponse{}, err
		}
		if isInCart, err = s.recipeRepository.IsInShoppingCart(ctx, userID, recipe.ID.String()); err != nil {
			return domain.RecipeResponse{}, err
		}
		if isSubscribed, err = s.subscriptions.IsSubscribed(ctx, userID, recipe.AuthorID.String()); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	author := domain.UserProfileResponse{
		ID:           recipe.AuthorID.String(),
		IsSubscribed: isSubscribed,
	}
	if recipe.Author != nil {
		author.Email = recipe.Author.Email
		author.Username = recipe.Author.Username
		author.FirstName = recipe.Author.FirstName
		author.LastName = recipe.Author.LastName
		author.Avatar = recipe.Author.AvatarURL
	}

	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, domain.TagResponse{
			ID:   t.ID.String(),
			Name: t.Name,
			Slug: t.Slug,
		})
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		res := domain.RecipeIngredientResponse{
			ID:     line.IngredientID.String(),
			Amount: line.Amount,
		}
		if line.Ingredient != nil {
			res.Name = line.Ingredient.Name
			res.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, res)
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Author:           author,
		Name:             recipe.Name,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		Image:            recipe.ImageURL,
		Tags:             tags,
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		PubDate:          recipe.PubDate,
	}, nil
}
