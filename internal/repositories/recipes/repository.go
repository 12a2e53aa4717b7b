// Package recipes provides the recipe and recipe-type registry consumed
// by the crafting resolver.
package recipes

//go:generate mockgen -destination=mock/mock_repository.go -package=recipesmock github.com/voxforge/storage-api/internal/repositories/recipes Repository

import (
	"context"
	"strings"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/errors"
)

// TypeIDSeparator splits a recipe type ID into its namespace and name.
const TypeIDSeparator = ":"

// RecipeType describes one class of crafting machine: where its inputs go
// and where its products appear.
type RecipeType struct {
	// ID is namespaced, two non-empty segments separated by ':'
	// (e.g. "minecraft:crafting").
	ID string `json:"id"`
	// InputLocation is the inventory name receiving craft inputs.
	InputLocation string `json:"input_location"`
	// OutputLocation is the inventory name producing craft outputs.
	OutputLocation string `json:"output_location"`
}

// Recipe is one transformation: consume the inputs, produce the output.
// At most one recipe exists per output item name.
type Recipe struct {
	// Type references a registered RecipeType ID.
	Type string `json:"type"`
	// Output is the item produced and how many per invocation.
	Output items.ItemStack `json:"output"`
	// Inputs are consumed per invocation.
	Inputs []items.ItemStack `json:"inputs"`
}

// Repository defines the interface for recipe persistence.
type Repository interface {
	// PutRecipeType registers a recipe type.
	// Returns errors.InvalidArgument for a malformed type.
	// Returns errors.AlreadyExists if the type ID is taken.
	PutRecipeType(ctx context.Context, input PutRecipeTypeInput) (*PutRecipeTypeOutput, error)

	// GetRecipeType retrieves a recipe type by ID.
	// Returns errors.NotFound if no such type is registered.
	GetRecipeType(ctx context.Context, input GetRecipeTypeInput) (*GetRecipeTypeOutput, error)

	// ListRecipeTypes returns every registered type, sorted by ID.
	ListRecipeTypes(ctx context.Context) (*ListRecipeTypesOutput, error)

	// PutRecipe registers a recipe.
	// Returns errors.InvalidArgument for a malformed recipe.
	// Returns errors.FailedPrecondition if the referenced type is not registered,
	// or if the recipe would introduce a dependency cycle.
	// Returns errors.AlreadyExists if a recipe for the output name exists.
	PutRecipe(ctx context.Context, input PutRecipeInput) (*PutRecipeOutput, error)

	// GetRecipeByOutput retrieves the recipe producing an item name.
	// Returns errors.NotFound if no recipe produces it.
	GetRecipeByOutput(ctx context.Context, input GetRecipeByOutputInput) (*GetRecipeByOutputOutput, error)

	// ListRecipes returns every registered recipe, sorted by output name.
	ListRecipes(ctx context.Context) (*ListRecipesOutput, error)

	// DeleteRecipe removes the recipe producing an item name.
	// Returns errors.NotFound if no recipe produces it.
	DeleteRecipe(ctx context.Context, input DeleteRecipeInput) (*DeleteRecipeOutput, error)
}

// PutRecipeTypeInput defines the input for registering a recipe type
type PutRecipeTypeInput struct {
	RecipeType RecipeType
}

// PutRecipeTypeOutput defines the output for registering a recipe type
type PutRecipeTypeOutput struct {
	RecipeType RecipeType
}

// GetRecipeTypeInput defines the input for getting a recipe type
type GetRecipeTypeInput struct {
	ID string
}

// GetRecipeTypeOutput defines the output for getting a recipe type
type GetRecipeTypeOutput struct {
	RecipeType RecipeType
}

// ListRecipeTypesOutput defines the output for listing recipe types
type ListRecipeTypesOutput struct {
	RecipeTypes []RecipeType
}

// PutRecipeInput defines the input for registering a recipe
type PutRecipeInput struct {
	Recipe Recipe
}

// PutRecipeOutput defines the output for registering a recipe
type PutRecipeOutput struct {
	Recipe Recipe
}

// GetRecipeByOutputInput defines the input for looking up a recipe
type GetRecipeByOutputInput struct {
	OutputName string
}

// GetRecipeByOutputOutput defines the output for looking up a recipe
type GetRecipeByOutputOutput struct {
	Recipe Recipe
}

// ListRecipesOutput defines the output for listing recipes
type ListRecipesOutput struct {
	Recipes []Recipe
}

// DeleteRecipeInput defines the input for deleting a recipe
type DeleteRecipeInput struct {
	OutputName string
}

// DeleteRecipeOutput defines the output for deleting a recipe
type DeleteRecipeOutput struct {
	// Empty for now, can be extended later
}

// ValidateTypeID checks the two-segment namespaced form.
func ValidateTypeID(id string) error {
	parts := strings.Split(id, TypeIDSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errors.InvalidArgumentf(
			"recipe type ID %q must be two non-empty segments separated by %q", id, TypeIDSeparator)
	}
	return nil
}

// Validate checks a recipe type's fields.
func (t RecipeType) Validate() error {
	if err := ValidateTypeID(t.ID); err != nil {
		return err
	}
	vb := errors.NewValidationBuilder()
	if t.InputLocation == "" {
		vb.RequiredField("InputLocation")
	}
	if t.OutputLocation == "" {
		vb.RequiredField("OutputLocation")
	}
	return vb.Build()
}

// Validate checks a recipe's fields. Type registration and cycle freedom
// are checked at insertion, not here.
func (r Recipe) Validate() error {
	vb := errors.NewValidationBuilder()
	if r.Type == "" {
		vb.RequiredField("Type")
	}
	if r.Output.Name == "" {
		vb.RequiredField("Output.Name")
	}
	if r.Output.Count <= 0 {
		vb.Field("Output.Count", "must be positive")
	}
	if len(r.Inputs) == 0 {
		vb.Field("Inputs", "at least one input is required")
	}
	for i, in := range r.Inputs {
		if in.Name == "" {
			vb.Fieldf("Inputs", "input %d: name cannot be empty", i)
		}
		if in.Count <= 0 {
			vb.Fieldf("Inputs", "input %d: count must be positive", i)
		}
	}
	return vb.Build()
}
