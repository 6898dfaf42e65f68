package domain

import "errors"

var (
	MessageSuccessAddToCart      = "recipe added to shopping cart"
	MessageSuccessRemoveFromCart = "recipe removed from shopping cart"
	MessageSuccessDownloadCart   = "shopping list generated successfully"

	MessageFailedAddToCart      = "failed to add recipe to shopping cart"
	MessageFailedRemoveFromCart = "failed to remove recipe from shopping cart"
	MessageFailedDownloadCart   = "failed to generate shopping list"

	ErrAlreadyInCart = errors.New("recipe already in shopping cart")
	ErrNotInCart     = errors.New("recipe is not in shopping cart")
	// ErrCartEmpty is returned when a shopping list is requested for a
	// cart that resolves to zero recipes. It is a user error, not a
	// server fault.
	ErrCartEmpty = errors.New("shopping cart is empty")
)

type (
	// IngredientLine is one (ingredient, amount) row of a recipe in the
	// user's cart, as returned by the read interface. Lines are keyed by
	// (Name, MeasurementUnit) for aggregation, not by ingredient id.
	IngredientLine struct {
		Name            string
		MeasurementUnit string
		Amount          int
	}

	// AggregatedLine is one rendered row of the shopping list: the total
	// amount of an ingredient across every recipe in the cart.
	AggregatedLine struct {
		Name            string
		MeasurementUnit string
		Total           int64
	}

	// ShoppingReport is the downloadable flat-text document plus its
	// suggested filename.
	ShoppingReport struct {
		Content  string
		Filename string
	}
)
