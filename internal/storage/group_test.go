package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/errors"
	"github.com/voxforge/storage-api/internal/peripheral/fake"
	"github.com/voxforge/storage-api/internal/storage"
)

type GroupTestSuite struct {
	suite.Suite
	ctx   context.Context
	world *fake.World
}

func TestGroupSuite(t *testing.T) {
	suite.Run(t, new(GroupTestSuite))
}

func (s *GroupTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = fake.NewWorld()
	s.world.AddInventory("minecraft:furnace_0", 3, 64)
	s.world.AddInventory("minecraft:barrel_0", 27, 64)
	s.world.AddInventory("minecraft:chest_0", 27, 64)
	s.world.AddInventory("minecraft:chest_1", 27, 64)
	s.world.AddInventory("minecraft:chest_2", 27, 64)
}

func (s *GroupTestSuite) newGroup() *storage.Group {
	g, err := storage.NewGroup(s.ctx, &storage.GroupConfig{
		Registry:    s.world,
		InputNames:  []string{"minecraft:furnace_0"},
		OutputNames: []string{"minecraft:barrel_0"},
	})
	s.Require().NoError(err)
	return g
}

func (s *GroupTestSuite) TestNewGroupDiscoversAndAssignsRoles() {
	g := s.newGroup()

	s.Assert().Equal([]string{
		"minecraft:barrel_0",
		"minecraft:chest_0",
		"minecraft:chest_1",
		"minecraft:chest_2",
		"minecraft:furnace_0",
	}, g.InventoryNames())

	inputs := g.Handles(items.RoleInput)
	s.Require().Len(inputs, 1)
	s.Assert().Equal("minecraft:furnace_0", inputs[0].Name())

	outputs := g.Handles(items.RoleOutput)
	s.Require().Len(outputs, 1)
	s.Assert().Equal("minecraft:barrel_0", outputs[0].Name())

	s.Assert().Len(g.Handles(items.RoleStorage), 3)
	s.Assert().Len(g.Handles(items.NotInput()...), 4)
}

func (s *GroupTestSuite) TestNewGroupConfigValidation() {
	_, err := storage.NewGroup(s.ctx, &storage.GroupConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *GroupTestSuite) TestInventoryRetriesDiscoveryOnMiss() {
	g := s.newGroup()

	_, err := g.Inventory(s.ctx, "minecraft:chest_3")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))

	// Attach a new chest after the group was built; the next lookup
	// rediscovers and finds it.
	s.world.AddInventory("minecraft:chest_3", 27, 64)
	h, err := g.Inventory(s.ctx, "minecraft:chest_3")
	s.Require().NoError(err)
	s.Assert().Equal("minecraft:chest_3", h.Name())
	s.Assert().Equal(items.RoleStorage, h.Role())
}

func (s *GroupTestSuite) TestTotalCountExcludesInputs() {
	s.world.Seed("minecraft:chest_0", 1, "minecraft:iron_ingot", 40)
	s.world.Seed("minecraft:barrel_0", 1, "minecraft:iron_ingot", 10)
	s.world.Seed("minecraft:furnace_0", 1, "minecraft:iron_ingot", 25)

	g := s.newGroup()

	s.Assert().Equal(50, g.TotalCount(s.ctx, "minecraft:iron_ingot"))
	s.Assert().Equal(0, g.TotalCount(s.ctx, "minecraft:iron_ore"))
}

func (s *GroupTestSuite) TestItemNamesIncludesSeeds() {
	s.world.Seed("minecraft:chest_0", 1, "minecraft:cobblestone", 64)
	s.world.Seed("minecraft:chest_1", 1, "minecraft:oak_log", 5)

	g := s.newGroup()

	s.Assert().Equal(
		[]string{"minecraft:cobblestone", "minecraft:oak_log", "minecraft:piston"},
		g.ItemNames("minecraft:piston"),
	)
}

func (s *GroupTestSuite) TestMoveItemFromMany() {
	// 10 + 10 + 40 across three sources, limit 50: exactly 50 move and
	// 10 stay behind.
	s.world.Seed("minecraft:chest_0", 1, "minecraft:cobblestone", 10)
	s.world.Seed("minecraft:chest_1", 1, "minecraft:cobblestone", 10)
	s.world.Seed("minecraft:chest_2", 1, "minecraft:cobblestone", 40)

	g := s.newGroup()
	to, err := g.Inventory(s.ctx, "minecraft:barrel_0")
	s.Require().NoError(err)

	moved, err := g.MoveItemFromMany(s.ctx, g.Handles(items.RoleStorage), to, "minecraft:cobblestone", 50)
	s.Require().NoError(err)
	s.Assert().Equal(50, moved)
	s.Assert().Equal(50, to.ItemCount("minecraft:cobblestone"))

	remaining := 0
	for _, h := range g.Handles(items.RoleStorage) {
		remaining += h.ItemCount("minecraft:cobblestone")
	}
	s.Assert().Equal(10, remaining)
}

func (s *GroupTestSuite) TestMoveItemFromManyShortStock() {
	s.world.Seed("minecraft:chest_0", 1, "minecraft:redstone", 7)

	g := s.newGroup()
	to, err := g.Inventory(s.ctx, "minecraft:barrel_0")
	s.Require().NoError(err)

	moved, err := g.MoveItemFromMany(s.ctx, g.Handles(items.RoleStorage), to, "minecraft:redstone", 50)
	s.Require().NoError(err)
	s.Assert().Equal(7, moved, "moves what exists, reports the shortfall via the count")
}

func (s *GroupTestSuite) TestMoveItemFromOne() {
	s.world.Seed("minecraft:chest_0", 1, "minecraft:iron_ingot", 30)
	s.world.Seed("minecraft:chest_0", 5, "minecraft:iron_ingot", 30)

	g := s.newGroup()
	from, err := g.Inventory(s.ctx, "minecraft:chest_0")
	s.Require().NoError(err)

	ok, err := g.MoveItemFromOne(s.ctx, from, g.Handles(items.RoleOutput), "minecraft:iron_ingot", 45)
	s.Require().NoError(err)
	s.Assert().True(ok)
	s.Assert().Equal(15, from.ItemCount("minecraft:iron_ingot"))
	s.Assert().Equal(45, s.world.TotalOf("minecraft:barrel_0", "minecraft:iron_ingot"))
}

func (s *GroupTestSuite) TestMoveItemFromOneAbsentItem() {
	g := s.newGroup()
	from, err := g.Inventory(s.ctx, "minecraft:chest_0")
	s.Require().NoError(err)

	ok, err := g.MoveItemFromOne(s.ctx, from, g.Handles(items.RoleOutput), "minecraft:diamond", 1)
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func (s *GroupTestSuite) TestMoveOneToMany() {
	s.world.Seed("minecraft:barrel_0", 1, "minecraft:stone_bricks", 64)
	s.world.Seed("minecraft:barrel_0", 2, "minecraft:glass", 12)

	g := s.newGroup()
	from, err := g.Inventory(s.ctx, "minecraft:barrel_0")
	s.Require().NoError(err)

	err = g.MoveOneToMany(s.ctx, from, g.Handles(items.RoleStorage))
	s.Require().NoError(err)

	s.Assert().Empty(from.OccupiedSlots())
	s.Assert().Equal(64, g.TotalCount(s.ctx, "minecraft:stone_bricks"))
	s.Assert().Equal(12, g.TotalCount(s.ctx, "minecraft:glass"))
	s.Assert().Equal(0, s.world.TotalOf("minecraft:barrel_0", "minecraft:stone_bricks"))
}
