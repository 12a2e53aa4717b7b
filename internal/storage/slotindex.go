package storage

import (
	"sort"

	"github.com/voxforge/storage-api/internal/entities/items"
)

// SlotIndex is the derived view of one inventory's raw contents: an
// ordered slot list plus a name -> slot -> count index. Both structures
// are updated together on every mutation; a slot with a zero count and an
// absent slot are the same state. The index is not safe for concurrent
// use; Handle serializes access to it.
type SlotIndex struct {
	size   int
	slots  []items.ItemStack // 1-based; slots[0] unused, empty Name means empty slot
	byName map[string]map[int]int
}

// NewSlotIndex creates an empty index for an inventory with the given
// slot count.
func NewSlotIndex(size int) *SlotIndex {
	return &SlotIndex{
		size:   size,
		slots:  make([]items.ItemStack, size+1),
		byName: make(map[string]map[int]int),
	}
}

// Rebuild replaces the index contents from a raw listing. Slots outside
// 1..size are ignored.
func (idx *SlotIndex) Rebuild(listing map[int]items.ItemStack) {
	idx.slots = make([]items.ItemStack, idx.size+1)
	idx.byName = make(map[string]map[int]int)
	for slot, st := range listing {
		if slot < 1 || slot > idx.size || st.Count <= 0 {
			continue
		}
		idx.slots[slot] = st
		bySlot := idx.byName[st.Name]
		if bySlot == nil {
			bySlot = make(map[int]int)
			idx.byName[st.Name] = bySlot
		}
		bySlot[slot] = st.Count
	}
}

// Size returns the slot count the index covers.
func (idx *SlotIndex) Size() int { return idx.size }

// Stack returns the contents of a slot. ok is false for an empty slot.
func (idx *SlotIndex) Stack(slot int) (items.ItemStack, bool) {
	if slot < 1 || slot > idx.size {
		return items.ItemStack{}, false
	}
	st := idx.slots[slot]
	if st.Count == 0 {
		return items.ItemStack{}, false
	}
	return st, true
}

// Count sums an item's count across every slot holding it.
func (idx *SlotIndex) Count(name string) int {
	total := 0
	for _, count := range idx.byName[name] {
		total += count
	}
	return total
}

// SlotsFor returns the slots currently holding an item, ascending.
func (idx *SlotIndex) SlotsFor(name string) []int {
	bySlot := idx.byName[name]
	slots := make([]int, 0, len(bySlot))
	for slot := range bySlot {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

// Occupied returns every non-empty slot, ascending.
func (idx *SlotIndex) Occupied() []int {
	var slots []int
	for slot := 1; slot <= idx.size; slot++ {
		if idx.slots[slot].Count > 0 {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Names returns every item name present, unordered.
func (idx *SlotIndex) Names() []string {
	names := make([]string, 0, len(idx.byName))
	for name := range idx.byName {
		names = append(names, name)
	}
	return names
}

// Add folds count additional units of an item into a slot, creating the
// slot entry when absent. The caller has already checked for conflicts.
func (idx *SlotIndex) Add(name string, slot, count int) {
	st := idx.slots[slot]
	idx.slots[slot] = items.ItemStack{Name: name, Count: st.Count + count}

	bySlot := idx.byName[name]
	if bySlot == nil {
		bySlot = make(map[int]int)
		idx.byName[name] = bySlot
	}
	bySlot[slot] += count
}

// Deduct removes count units of an item from a slot, deleting the slot
// entry when it reaches zero.
func (idx *SlotIndex) Deduct(name string, slot, count int) {
	st := idx.slots[slot]
	remaining := st.Count - count
	if remaining <= 0 {
		idx.slots[slot] = items.ItemStack{}
	} else {
		idx.slots[slot] = items.ItemStack{Name: name, Count: remaining}
	}

	bySlot := idx.byName[name]
	if bySlot == nil {
		return
	}
	if bySlot[slot] <= count {
		delete(bySlot, slot)
		if len(bySlot) == 0 {
			delete(idx.byName, name)
		}
	} else {
		bySlot[slot] -= count
	}
}

// AvailableSlots returns candidate destination slots for an item, in the
// order pushes must fill them: partially filled slots holding the item
// (count below maxStack) in ascending slot order, then empty slots in
// ascending slot order. Topping off partial stacks first keeps slot
// fragmentation down.
func (idx *SlotIndex) AvailableSlots(name string, maxStack int) []int {
	partial := make([]int, 0, len(idx.byName[name]))
	for slot, count := range idx.byName[name] {
		if count < maxStack {
			partial = append(partial, slot)
		}
	}
	sort.Ints(partial)

	candidates := partial
	for slot := 1; slot <= idx.size; slot++ {
		if idx.slots[slot].Count == 0 {
			candidates = append(candidates, slot)
		}
	}
	return candidates
}
