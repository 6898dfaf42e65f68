package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessFavorite        = "recipe added to favorites"
	MessageSuccessUnfavorite      = "recipe removed from favorites"
	MessageSuccessGetShortLink    = "success get short link"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedFavorite        = "failed to add recipe to favorites"
	MessageFailedUnfavorite      = "failed to remove recipe from favorites"
	MessageFailedGetShortLink    = "failed to get short link"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrNotRecipeAuthor     = errors.New("only the author can modify this recipe")
	ErrNoIngredients       = errors.New("recipe must have at least one ingredient")
	ErrNoTags              = errors.New("recipe must have at least one tag")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in recipe")
	ErrDuplicateTag        = errors.New("duplicate tag in recipe")
	ErrInvalidCookingTime  = errors.New("cooking time cannot be less than 1 minute")
	ErrInvalidAmount       = errors.New("ingredient amount cannot be less than 1")
	ErrAlreadyFavorited    = errors.New("recipe already in favorites")
	ErrNotFavorited        = errors.New("recipe is not in favorites")
	ErrShortLinkNotFound   = errors.New("short link not found")
)

type (
	RecipeIngredientRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount" validate:"required,min=1"`
	}

	RecipeCreateRequest struct {
		Name        string                    `json:"name" validate:"required,max=256"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1"`
		Image       string                    `json:"image" validate:"required"`
		Tags        []string                  `json:"tags" validate:"required,dive,uuid"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
	}

	RecipeUpdateRequest struct {
		Name        string                    `json:"name" validate:"required,max=256"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1"`
		Image       string                    `json:"image,omitempty"`
		Tags        []string                  `json:"tags" validate:"required,dive,uuid"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
	}

	RecipeIngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Author           UserProfileResponse        `json:"author"`
		Name             string                     `json:"name"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
		Image            string                     `json:"image,omitempty"`
		Tags             []TagResponse              `json:"tags"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		PubDate          time.Time                  `json:"pub_date"`
	}

	// RecipeListParams carries list filters parsed from query params:
	// author id, tag slugs, and the per-user favorite/cart flags.
	RecipeListParams struct {
		Page             int
		Limit            int
		Author           string
		Tags             []string
		IsFavorited      bool
		IsInShoppingCart bool
	}

	ShortLinkResponse struct {
		ShortLink string `json:"short-link"`
	}
)
