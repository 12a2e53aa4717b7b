package crafting

import (
	"github.com/voxforge/storage-api/internal/repositories/recipes"
)

// GatherIngredientsInput defines the request for planning a craft
type GatherIngredientsInput struct {
	// ItemName is the target item to produce.
	ItemName string
	// Count is how many units of the target are wanted.
	Count int
}

// GatherIngredientsOutput defines the response for planning a craft
type GatherIngredientsOutput struct {
	// PlanID tags this plan in logs.
	PlanID string

	// Requirements is the flattened bill of materials: for each item, the
	// total quantity the plan consumes from storage or demands from the
	// operator.
	Requirements map[string]int

	// Missing is the per-item shortfall against current stock: what the
	// operator must insert before the plan can run. Items fully covered by
	// stock or by crafted intermediates do not appear.
	Missing map[string]int

	// Plan is the ordered, deduplicated list of recipe invocations. An
	// executor consumes it last-in-first-out so leaf dependencies are
	// crafted before the recipes that need them.
	Plan []PlanStep
}

// PlanStep is one recipe invocation in a build plan, with the number of
// times the recipe must run after duplicate collapsing.
type PlanStep struct {
	Recipe      recipes.Recipe
	Invocations int
}
