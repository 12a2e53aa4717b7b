package storage_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/storage"
)

type SlotIndexTestSuite struct {
	suite.Suite
}

func TestSlotIndexSuite(t *testing.T) {
	suite.Run(t, new(SlotIndexTestSuite))
}

func (s *SlotIndexTestSuite) newIndex(listing map[int]items.ItemStack) *storage.SlotIndex {
	idx := storage.NewSlotIndex(27)
	idx.Rebuild(listing)
	return idx
}

func (s *SlotIndexTestSuite) TestRebuild() {
	idx := s.newIndex(map[int]items.ItemStack{
		1:  {Name: "minecraft:cobblestone", Count: 64},
		3:  {Name: "minecraft:iron_ingot", Count: 12},
		27: {Name: "minecraft:cobblestone", Count: 30},
		99: {Name: "minecraft:dirt", Count: 5}, // out of range, dropped
	})

	s.Assert().Equal(27, idx.Size())
	s.Assert().Equal(94, idx.Count("minecraft:cobblestone"))
	s.Assert().Equal(12, idx.Count("minecraft:iron_ingot"))
	s.Assert().Equal(0, idx.Count("minecraft:dirt"))
	s.Assert().Equal([]int{1, 3, 27}, idx.Occupied())
	s.Assert().Equal([]int{1, 27}, idx.SlotsFor("minecraft:cobblestone"))

	st, ok := idx.Stack(3)
	s.Require().True(ok)
	s.Assert().Equal(items.ItemStack{Name: "minecraft:iron_ingot", Count: 12}, st)

	_, ok = idx.Stack(2)
	s.Assert().False(ok)
}

func (s *SlotIndexTestSuite) TestRebuildReplacesPreviousContents() {
	idx := s.newIndex(map[int]items.ItemStack{
		1: {Name: "minecraft:cobblestone", Count: 64},
	})
	idx.Rebuild(map[int]items.ItemStack{
		2: {Name: "minecraft:oak_log", Count: 16},
	})

	s.Assert().Equal(0, idx.Count("minecraft:cobblestone"))
	s.Assert().Equal(16, idx.Count("minecraft:oak_log"))
	s.Assert().Equal([]int{2}, idx.Occupied())
}

func (s *SlotIndexTestSuite) TestAddAndDeductStayCoherent() {
	idx := s.newIndex(nil)

	idx.Add("minecraft:redstone", 5, 40)
	idx.Add("minecraft:redstone", 5, 10)
	s.Assert().Equal(50, idx.Count("minecraft:redstone"))

	st, ok := idx.Stack(5)
	s.Require().True(ok)
	s.Assert().Equal(50, st.Count)

	idx.Deduct("minecraft:redstone", 5, 20)
	s.Assert().Equal(30, idx.Count("minecraft:redstone"))

	idx.Deduct("minecraft:redstone", 5, 30)
	s.Assert().Equal(0, idx.Count("minecraft:redstone"))
	_, ok = idx.Stack(5)
	s.Assert().False(ok)
	s.Assert().Empty(idx.SlotsFor("minecraft:redstone"))
	s.Assert().Empty(idx.Names())
}

func (s *SlotIndexTestSuite) TestAvailableSlotsOrder() {
	// Partial stacks of the item come first in ascending slot order,
	// then every empty slot ascending. Full stacks and other items are
	// excluded.
	idx := s.newIndex(map[int]items.ItemStack{
		2: {Name: "minecraft:cobblestone", Count: 64}, // full
		4: {Name: "minecraft:cobblestone", Count: 10}, // partial
		6: {Name: "minecraft:iron_ingot", Count: 3},   // other item
		9: {Name: "minecraft:cobblestone", Count: 63}, // partial
	})

	got := idx.AvailableSlots("minecraft:cobblestone", 64)
	s.Require().GreaterOrEqual(len(got), 2)
	s.Assert().Equal([]int{4, 9}, got[:2])

	want := []int{4, 9, 1, 3, 5, 7, 8}
	for slot := 10; slot <= 27; slot++ {
		want = append(want, slot)
	}
	s.Assert().Equal(want, got)
}

func (s *SlotIndexTestSuite) TestAvailableSlotsForAbsentItem() {
	idx := s.newIndex(map[int]items.ItemStack{
		1: {Name: "minecraft:iron_ingot", Count: 3},
	})

	got := idx.AvailableSlots("minecraft:cobblestone", 64)
	want := make([]int, 0, 26)
	for slot := 2; slot <= 27; slot++ {
		want = append(want, slot)
	}
	s.Assert().Equal(want, got)
}
