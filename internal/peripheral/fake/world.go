// Package fake provides an in-memory implementation of the peripheral
// boundary. It backs unit tests as the ground truth the storage layer's
// slot index is checked against, and the controller's --fake demo mode.
package fake

import (
	"context"
	"sort"
	"sync"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/errors"
	"github.com/voxforge/storage-api/internal/peripheral"
)

// World is a set of fake inventories that can push items between each
// other. A single mutex serializes all access, including cross-inventory
// moves, so raw contents are always internally consistent.
type World struct {
	mu          sync.Mutex
	inventories map[string]*Inventory
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		inventories: make(map[string]*Inventory),
	}
}

// AddInventory creates an empty inventory with the given slot count and
// uniform max stack size, replacing any previous inventory with the name.
func (w *World) AddInventory(name string, size, maxStack int) *Inventory {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv := &Inventory{
		world:    w,
		name:     name,
		size:     size,
		maxStack: maxStack,
		slots:    make(map[int]items.ItemStack),
	}
	w.inventories[name] = inv
	return inv
}

// Seed places a stack directly into a slot, bypassing stack-size checks.
// Test setup only.
func (w *World) Seed(name string, slot int, item string, count int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv := w.inventories[name]
	if inv == nil {
		panic("fake: Seed on unknown inventory " + name)
	}
	if count <= 0 {
		delete(inv.slots, slot)
		return
	}
	inv.slots[slot] = items.ItemStack{Name: item, Count: count}
}

// Stacks returns a snapshot of an inventory's raw contents. This is the
// oracle tests compare slot indexes against.
func (w *World) Stacks(name string) map[int]items.ItemStack {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv := w.inventories[name]
	if inv == nil {
		return nil
	}
	return inv.snapshotLocked()
}

// TotalOf returns the total count of an item across one inventory.
func (w *World) TotalOf(name, item string) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv := w.inventories[name]
	if inv == nil {
		return 0
	}
	total := 0
	for _, st := range inv.slots {
		if st.Name == item {
			total += st.Count
		}
	}
	return total
}

// Names implements peripheral.Registry.
func (w *World) Names(_ context.Context) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	names := make([]string, 0, len(w.inventories))
	for name := range w.inventories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Inventory implements peripheral.Registry.
func (w *World) Inventory(_ context.Context, name string) (peripheral.Inventory, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv := w.inventories[name]
	if inv == nil {
		return nil, errors.NotFoundf("no peripheral named %s", name)
	}
	return inv, nil
}

// Inventory is one fake container. All state lives behind the world mutex.
type Inventory struct {
	world    *World
	name     string
	size     int
	maxStack int
	slots    map[int]items.ItemStack
}

var _ peripheral.Inventory = (*Inventory)(nil)

// Name implements peripheral.Inventory.
func (inv *Inventory) Name() string { return inv.name }

// Size implements peripheral.Inventory.
func (inv *Inventory) Size(_ context.Context) (int, error) {
	return inv.size, nil
}

// List implements peripheral.Inventory.
func (inv *Inventory) List(_ context.Context) (map[int]items.ItemStack, error) {
	inv.world.mu.Lock()
	defer inv.world.mu.Unlock()
	return inv.snapshotLocked(), nil
}

// ItemDetail implements peripheral.Inventory.
func (inv *Inventory) ItemDetail(_ context.Context, slot int) (*items.ItemDetail, error) {
	inv.world.mu.Lock()
	defer inv.world.mu.Unlock()

	st, ok := inv.slots[slot]
	if !ok {
		return nil, nil
	}
	return &items.ItemDetail{
		Name:     st.Name,
		Count:    st.Count,
		MaxCount: inv.maxStack,
	}, nil
}

// ItemLimit implements peripheral.Inventory.
func (inv *Inventory) ItemLimit(_ context.Context, slot int) (int, error) {
	if slot < 1 || slot > inv.size {
		return 0, errors.InvalidArgumentf("slot %d out of range 1..%d", slot, inv.size)
	}
	return inv.maxStack, nil
}

// PushItems implements peripheral.Inventory. It honors the same semantics
// the host does: the destination slot must be empty or already hold the
// same item, and the move is bounded by the source count, the requested
// limit, and the destination slot's remaining capacity.
func (inv *Inventory) PushItems(_ context.Context, toName string, fromSlot, limit, toSlot int) (int, error) {
	inv.world.mu.Lock()
	defer inv.world.mu.Unlock()

	dst := inv.world.inventories[toName]
	if dst == nil {
		return 0, errors.NotFoundf("no peripheral named %s", toName)
	}
	if toSlot < 1 || toSlot > dst.size {
		return 0, errors.InvalidArgumentf("destination slot %d out of range 1..%d", toSlot, dst.size)
	}

	src, ok := inv.slots[fromSlot]
	if !ok || src.Count == 0 {
		return 0, nil
	}

	existing, occupied := dst.slots[toSlot]
	if occupied && existing.Name != src.Name {
		return 0, nil
	}

	room := dst.maxStack
	if occupied {
		room = dst.maxStack - existing.Count
	}

	moved := src.Count
	if limit < moved {
		moved = limit
	}
	if room < moved {
		moved = room
	}
	if moved <= 0 {
		return 0, nil
	}

	if src.Count == moved {
		delete(inv.slots, fromSlot)
	} else {
		inv.slots[fromSlot] = items.ItemStack{Name: src.Name, Count: src.Count - moved}
	}
	dst.slots[toSlot] = items.ItemStack{Name: src.Name, Count: existing.Count + moved}
	return moved, nil
}

func (inv *Inventory) snapshotLocked() map[int]items.ItemStack {
	out := make(map[int]items.ItemStack, len(inv.slots))
	for slot, st := range inv.slots {
		out[slot] = st
	}
	return out
}
