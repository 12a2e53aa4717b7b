package crafting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/errors"
	"github.com/voxforge/storage-api/internal/orchestrators/crafting"
	"github.com/voxforge/storage-api/internal/pkg/idgen"
	"github.com/voxforge/storage-api/internal/repositories/recipes"
	recipesmock "github.com/voxforge/storage-api/internal/repositories/recipes/mock"
)

// mapStock is a fixed stock snapshot standing in for a storage group.
type mapStock map[string]int

func (m mapStock) TotalCount(_ context.Context, name string) int { return m[name] }

type OrchestratorTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	recipeRepo *recipesmock.MockRepository
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.recipeRepo = recipesmock.NewMockRepository(s.ctrl)
}

func (s *OrchestratorTestSuite) newService(stock mapStock) crafting.Service {
	svc, err := crafting.NewOrchestrator(&crafting.Config{
		Stock:       stock,
		RecipeRepo:  s.recipeRepo,
		IDGenerator: idgen.NewSequential("plan"),
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) expectRecipe(recipe recipes.Recipe) {
	s.recipeRepo.EXPECT().
		GetRecipeByOutput(gomock.Any(), recipes.GetRecipeByOutputInput{OutputName: recipe.Output.Name}).
		Return(&recipes.GetRecipeByOutputOutput{Recipe: recipe}, nil).
		AnyTimes()
}

func (s *OrchestratorTestSuite) expectNoRecipe(name string) {
	s.recipeRepo.EXPECT().
		GetRecipeByOutput(gomock.Any(), recipes.GetRecipeByOutputInput{OutputName: name}).
		Return(nil, errors.NotFoundf("no recipe produces %s", name)).
		AnyTimes()
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *crafting.Config
	}{
		{name: "missing stock", cfg: &crafting.Config{
			RecipeRepo:  s.recipeRepo,
			IDGenerator: idgen.NewSequential("plan"),
		}},
		{name: "missing recipe repo", cfg: &crafting.Config{
			Stock:       mapStock{},
			IDGenerator: idgen.NewSequential("plan"),
		}},
		{name: "missing id generator", cfg: &crafting.Config{
			Stock:      mapStock{},
			RecipeRepo: s.recipeRepo,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := crafting.NewOrchestrator(tc.cfg)
			s.Assert().Error(err)
		})
	}
}

func (s *OrchestratorTestSuite) TestInputValidation() {
	svc := s.newService(mapStock{})

	_, err := svc.GatherIngredients(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{Count: 1})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "minecraft:stick",
		Count:    -1,
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStockCoversDemand() {
	s.expectNoRecipe("minecraft:iron_ingot")
	svc := s.newService(mapStock{"minecraft:iron_ingot": 50})

	out, err := svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "minecraft:iron_ingot",
		Count:    20,
	})
	s.Require().NoError(err)

	s.Assert().Equal(map[string]int{"minecraft:iron_ingot": 20}, out.Requirements)
	s.Assert().Empty(out.Missing)
	s.Assert().Empty(out.Plan)
	s.Assert().NotEmpty(out.PlanID)
}

func (s *OrchestratorTestSuite) TestZeroCount() {
	svc := s.newService(mapStock{})

	out, err := svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "minecraft:piston",
		Count:    0,
	})
	s.Require().NoError(err)
	s.Assert().Empty(out.Plan)
	s.Assert().Empty(out.Missing)
}

func (s *OrchestratorTestSuite) TestCraftableChain() {
	// 20 iron blocks wanted, 9 ingots each, 10 ingots on hand and no way
	// to make more: the full 180 ingots are required and 170 are missing.
	s.expectRecipe(recipes.Recipe{
		Type:   "minecraft:crafting",
		Output: items.ItemStack{Name: "minecraft:iron_block", Count: 1},
		Inputs: []items.ItemStack{{Name: "minecraft:iron_ingot", Count: 9}},
	})
	s.expectNoRecipe("minecraft:iron_ingot")

	svc := s.newService(mapStock{"minecraft:iron_ingot": 10})

	out, err := svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "minecraft:iron_block",
		Count:    20,
	})
	s.Require().NoError(err)

	s.Assert().Equal(180, out.Requirements["minecraft:iron_ingot"])
	s.Assert().Equal(map[string]int{"minecraft:iron_ingot": 170}, out.Missing)

	s.Require().Len(out.Plan, 1)
	s.Assert().Equal("minecraft:iron_block", out.Plan[0].Recipe.Output.Name)
	s.Assert().Equal(20, out.Plan[0].Invocations)
}

func (s *OrchestratorTestSuite) TestPartialStockReducesInvocations() {
	s.expectRecipe(recipes.Recipe{
		Type:   "minecraft:crafting",
		Output: items.ItemStack{Name: "minecraft:iron_block", Count: 1},
		Inputs: []items.ItemStack{{Name: "minecraft:iron_ingot", Count: 9}},
	})
	s.expectNoRecipe("minecraft:iron_ingot")

	// 6 blocks already on hand, only 14 need crafting.
	svc := s.newService(mapStock{
		"minecraft:iron_block": 6,
		"minecraft:iron_ingot": 200,
	})

	out, err := svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "minecraft:iron_block",
		Count:    20,
	})
	s.Require().NoError(err)

	s.Require().Len(out.Plan, 1)
	s.Assert().Equal(14, out.Plan[0].Invocations)
	s.Assert().Equal(126, out.Requirements["minecraft:iron_ingot"])
	s.Assert().Empty(out.Missing)
}

func (s *OrchestratorTestSuite) TestMultiOutputRecipeRoundsUp() {
	// Sticks come four per craft; ten sticks take three invocations.
	s.expectRecipe(recipes.Recipe{
		Type:   "minecraft:crafting",
		Output: items.ItemStack{Name: "minecraft:stick", Count: 4},
		Inputs: []items.ItemStack{{Name: "minecraft:planks", Count: 2}},
	})
	s.expectNoRecipe("minecraft:planks")

	svc := s.newService(mapStock{"minecraft:planks": 6})

	out, err := svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "minecraft:stick",
		Count:    10,
	})
	s.Require().NoError(err)

	s.Require().Len(out.Plan, 1)
	s.Assert().Equal(3, out.Plan[0].Invocations)
	s.Assert().Equal(6, out.Requirements["minecraft:planks"])
	s.Assert().Empty(out.Missing)
}

func (s *OrchestratorTestSuite) TestSharedDependencyCollapses() {
	// Both branches of the tree consume gears; the plan carries one gear
	// step with the summed invocation count, kept at its first position.
	s.expectRecipe(recipes.Recipe{
		Type:   "minecraft:crafting",
		Output: items.ItemStack{Name: "factory:machine", Count: 1},
		Inputs: []items.ItemStack{
			{Name: "factory:rotor", Count: 1},
			{Name: "factory:frame", Count: 1},
		},
	})
	s.expectRecipe(recipes.Recipe{
		Type:   "minecraft:crafting",
		Output: items.ItemStack{Name: "factory:rotor", Count: 1},
		Inputs: []items.ItemStack{{Name: "factory:gear", Count: 2}},
	})
	s.expectRecipe(recipes.Recipe{
		Type:   "minecraft:crafting",
		Output: items.ItemStack{Name: "factory:frame", Count: 1},
		Inputs: []items.ItemStack{{Name: "factory:gear", Count: 3}},
	})
	s.expectRecipe(recipes.Recipe{
		Type:   "minecraft:crafting",
		Output: items.ItemStack{Name: "factory:gear", Count: 1},
		Inputs: []items.ItemStack{{Name: "minecraft:iron_ingot", Count: 4}},
	})
	s.expectNoRecipe("minecraft:iron_ingot")

	svc := s.newService(mapStock{})

	out, err := svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "factory:machine",
		Count:    1,
	})
	s.Require().NoError(err)

	gearSteps := 0
	for _, step := range out.Plan {
		if step.Recipe.Output.Name == "factory:gear" {
			gearSteps++
			s.Assert().Equal(5, step.Invocations)
		}
	}
	s.Assert().Equal(1, gearSteps)
	s.Assert().Len(out.Plan, 4)
	s.Assert().Equal(20, out.Requirements["minecraft:iron_ingot"])
	s.Assert().Equal(map[string]int{"minecraft:iron_ingot": 20}, out.Missing)
}

func (s *OrchestratorTestSuite) TestRecipeLookupFailurePropagates() {
	s.recipeRepo.EXPECT().
		GetRecipeByOutput(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis connection lost"))

	svc := s.newService(mapStock{})

	_, err := svc.GatherIngredients(s.ctx, &crafting.GatherIngredientsInput{
		ItemName: "minecraft:piston",
		Count:    1,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}
