// Package crafting implements the ingredient resolver: given a target
// item and quantity it walks the recipe graph against current storage
// totals and produces a bill of materials plus an ordered build plan.
package crafting

//go:generate mockgen -destination=mock/mock_service.go -package=craftingmock github.com/voxforge/storage-api/internal/orchestrators/crafting Service

import (
	"context"
	"log/slog"

	"github.com/voxforge/storage-api/internal/errors"
	"github.com/voxforge/storage-api/internal/pkg/idgen"
	"github.com/voxforge/storage-api/internal/repositories/recipes"
)

// Service defines the interface for craft planning
type Service interface {
	// GatherIngredients resolves the recipes and raw items needed to
	// produce the requested quantity of an item. It never fails on missing
	// recipe data; unknown items degrade to externally supplied
	// requirements.
	GatherIngredients(ctx context.Context, input *GatherIngredientsInput) (*GatherIngredientsOutput, error)
}

// StockCounter reports current storage totals. *storage.Group satisfies it.
type StockCounter interface {
	TotalCount(ctx context.Context, name string) int
}

// RecipeSource is the read side of the recipe registry the resolver
// consults. recipes.Repository satisfies it.
type RecipeSource interface {
	GetRecipeByOutput(ctx context.Context, input recipes.GetRecipeByOutputInput) (*recipes.GetRecipeByOutputOutput, error)
}

// Config holds the dependencies for the crafting orchestrator
type Config struct {
	Stock       StockCounter
	RecipeRepo  RecipeSource
	IDGenerator idgen.Generator

	// Logger is optional; nil disables plan logging.
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Stock == nil {
		vb.RequiredField("Stock")
	}
	if c.RecipeRepo == nil {
		vb.RequiredField("RecipeRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	stock      StockCounter
	recipeRepo RecipeSource
	idGen      idgen.Generator
	logger     *slog.Logger
}

// NewOrchestrator creates a new crafting orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		stock:      cfg.Stock,
		recipeRepo: cfg.RecipeRepo,
		idGen:      cfg.IDGenerator,
		logger:     cfg.Logger,
	}, nil
}

// workItem is one pending demand on the to-gather stack.
type workItem struct {
	name  string
	count int
}

// invocation is one recipe use before duplicate collapsing.
type invocation struct {
	recipe     recipes.Recipe
	multiplier int
}

func (o *orchestrator) GatherIngredients(ctx context.Context, input *GatherIngredientsInput) (*GatherIngredientsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.ItemName == "" {
		return nil, errors.InvalidArgument("item name cannot be empty")
	}
	if input.Count < 0 {
		return nil, errors.InvalidArgumentf("count cannot be negative, got %d", input.Count)
	}

	gathered := make(map[string]int)
	var invocations []invocation

	// Depth-first over the dependency tree with an explicit stack. Cyclic
	// recipe graphs are rejected at registration time, so the walk
	// terminates.
	stack := []workItem{{name: input.ItemName, count: input.Count}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		used := gathered[item.name]
		available := o.stock.TotalCount(ctx, item.name) - used
		deficit := item.count - available

		if deficit <= 0 {
			// Stock not yet earmarked covers this demand entirely.
			gathered[item.name] = used + item.count
			continue
		}

		got, err := o.recipeRepo.GetRecipeByOutput(ctx, recipes.GetRecipeByOutputInput{OutputName: item.name})
		if err != nil {
			if !errors.IsNotFound(err) {
				return nil, errors.Wrapf(err, "recipe lookup for %s failed", item.name)
			}
			// No recipe: the full demand must come from storage or the
			// operator's hands. Recording the demand itself (rather than
			// the shortfall) lets callers compute what is missing as
			// demand minus current stock.
			gathered[item.name] = used + item.count
			continue
		}

		// Craftable: everything currently in stock is committed to this
		// item, and the rest is produced by running the recipe enough
		// times, rounding up. The surplus of a partial final invocation is
		// not modeled; it simply shows up as extra stock afterwards.
		recipe := got.Recipe
		gathered[item.name] = used + available
		multiplier := (deficit + recipe.Output.Count - 1) / recipe.Output.Count
		for _, in := range recipe.Inputs {
			stack = append(stack, workItem{name: in.Name, count: in.Count * multiplier})
		}
		invocations = append(invocations, invocation{recipe: recipe, multiplier: multiplier})
	}

	plan := collapseInvocations(invocations)

	missing := make(map[string]int)
	for name, required := range gathered {
		if short := required - o.stock.TotalCount(ctx, name); short > 0 {
			missing[name] = short
		}
	}

	out := &GatherIngredientsOutput{
		PlanID:       o.idGen.Generate(),
		Requirements: gathered,
		Missing:      missing,
		Plan:         plan,
	}
	if o.logger != nil {
		o.logger.Info("build plan resolved",
			"plan_id", out.PlanID,
			"item", input.ItemName,
			"count", input.Count,
			"steps", len(plan),
			"missing_items", len(missing))
	}
	return out, nil
}

// collapseInvocations merges invocations of the same recipe, summing
// multipliers. The merged entry keeps the position of the recipe's first
// occurrence: the plan is executed in reverse, so keeping dependency
// recipes at their earliest (deepest) position preserves the topological
// bias of the traversal.
func collapseInvocations(invocations []invocation) []PlanStep {
	byOutput := make(map[string]int) // output name -> index into plan
	plan := make([]PlanStep, 0, len(invocations))

	for _, inv := range invocations {
		if i, ok := byOutput[inv.recipe.Output.Name]; ok {
			plan[i].Invocations += inv.multiplier
			continue
		}
		byOutput[inv.recipe.Output.Name] = len(plan)
		plan = append(plan, PlanStep{Recipe: inv.recipe, Invocations: inv.multiplier})
	}
	return plan
}
