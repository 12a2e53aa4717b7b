// Package storage implements the slot-cache and item-transfer engine: a
// Handle per inventory peripheral keeping a synchronized slot index, and
// a Group aggregating handles by role with multi-inventory transfers.
package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/errors"
	"github.com/voxforge/storage-api/internal/peripheral"
)

// HandleConfig holds the dependencies for one inventory handle.
type HandleConfig struct {
	Peripheral peripheral.Inventory
	Role       items.StorageRole

	// MaxStackOverride fixes the uniform max stack size instead of deriving
	// it from slot 1. Zero means derive.
	MaxStackOverride int

	// Logger is optional; nil disables handle logging.
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided.
func (cfg *HandleConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Peripheral == nil {
		vb.RequiredField("Peripheral")
	}
	if !cfg.Role.IsValid() {
		vb.Field("Role", "must be one of input, output, storage")
	}
	if cfg.MaxStackOverride < 0 {
		vb.Field("MaxStackOverride", "cannot be negative")
	}

	return vb.Build()
}

// Handle wraps one external inventory with a slot index kept in lockstep
// with the moves issued through it. External mutations (a player moving
// items by hand) are invisible until the next Resync; callers that know
// the world changed must Resync before relying on counts.
//
// A single mutex guards the index. Every local mutation is atomic under
// it, and the lock is never held across a boundary call, so two handles
// pushing into each other cannot deadlock.
type Handle struct {
	name     string
	role     items.StorageRole
	inv      peripheral.Inventory
	size     int
	maxStack int
	logger   *slog.Logger

	mu    sync.Mutex
	index *SlotIndex
}

// NewHandle wraps a peripheral: determines the slot count and max stack
// size, then performs the initial resync.
func NewHandle(ctx context.Context, cfg *HandleConfig) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid handle config")
	}

	size, err := cfg.Peripheral.Size(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to size inventory %s", cfg.Peripheral.Name())
	}
	if size <= 0 {
		return nil, errors.Internalf("inventory %s reported size %d", cfg.Peripheral.Name(), size)
	}

	maxStack := cfg.MaxStackOverride
	if maxStack == 0 {
		maxStack, err = cfg.Peripheral.ItemLimit(ctx, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read stack limit of inventory %s", cfg.Peripheral.Name())
		}
	}
	if maxStack <= 0 {
		return nil, errors.Internalf("inventory %s reported stack limit %d", cfg.Peripheral.Name(), maxStack)
	}

	h := &Handle{
		name:     cfg.Peripheral.Name(),
		role:     cfg.Role,
		inv:      cfg.Peripheral,
		size:     size,
		maxStack: maxStack,
		logger:   cfg.Logger,
		index:    NewSlotIndex(size),
	}
	if err := h.Resync(ctx); err != nil {
		return nil, err
	}
	return h, nil
}

// Name returns the inventory's peripheral name.
func (h *Handle) Name() string { return h.name }

// Role returns the handle's storage role.
func (h *Handle) Role() items.StorageRole { return h.role }

// Size returns the inventory's slot count.
func (h *Handle) Size() int { return h.size }

// MaxStack returns the uniform per-slot stack limit.
func (h *Handle) MaxStack() int { return h.maxStack }

// Resync fetches the full slot listing in one call and rebuilds the index
// from scratch. Callers see either the old or the new index, never a
// partial one.
func (h *Handle) Resync(ctx context.Context) error {
	listing, err := h.inv.List(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to list inventory %s", h.name)
	}

	fresh := NewSlotIndex(h.size)
	fresh.Rebuild(listing)

	h.mu.Lock()
	h.index = fresh
	h.mu.Unlock()
	return nil
}

// ItemCount returns how many of an item this handle holds as available
// stock. Input-role handles always report zero: their contents are
// earmarked, not stock.
func (h *Handle) ItemCount(name string) int {
	if h.role == items.RoleInput {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index.Count(name)
}

// ItemNames returns the item names currently present, unordered.
func (h *Handle) ItemNames() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index.Names()
}

// StackAt returns the indexed contents of a slot.
func (h *Handle) StackAt(slot int) (items.ItemStack, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index.Stack(slot)
}

// SlotsHolding returns the slots currently holding an item, ascending.
// Unlike ItemCount this reflects raw contents regardless of role.
func (h *Handle) SlotsHolding(name string) []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index.SlotsFor(name)
}

// OccupiedSlots returns every non-empty slot, ascending.
func (h *Handle) OccupiedSlots() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index.Occupied()
}

// AvailableSlots returns the destination slots a push of the named item
// would fill, in fill order: partial stacks of the item first, then empty
// slots by ascending index. A fresh call recomputes from current state.
func (h *Handle) AvailableSlots(name string) []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index.AvailableSlots(name, h.maxStack)
}

// Receive folds count units of an item into a slot after an external push
// landed there. Returns errors.FailedPrecondition if the slot already
// holds a different item; that is a caller bug, not a recoverable state.
func (h *Handle) Receive(name string, slot, count int) error {
	if slot < 1 || slot > h.size {
		return errors.InvalidArgumentf("slot %d out of range 1..%d", slot, h.size)
	}
	if count <= 0 {
		return errors.InvalidArgumentf("count must be positive, got %d", count)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if st, ok := h.index.Stack(slot); ok && st.Name != name {
		return errors.FailedPreconditionf(
			"slot %d of %s holds %s, cannot receive %s", slot, h.name, st.Name, name)
	}
	h.index.Add(name, slot, count)
	return nil
}

// roomAt reports how many more units of an item the slot can take. Zero
// when the slot holds a different item.
func (h *Handle) roomAt(name string, slot int) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	st, ok := h.index.Stack(slot)
	if !ok {
		return h.maxStack
	}
	if st.Name != name {
		return 0
	}
	return h.maxStack - st.Count
}

// deduct removes count units from a slot, dropping the entry at zero.
func (h *Handle) deduct(name string, slot, count int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.index.Deduct(name, slot, count)
}

// Push moves up to limit units out of fromSlot into dst, filling dst's
// available slots in contract order. limit <= 0 means the slot's full
// count. Returns the amount moved; a partial result means dst ran out of
// room and is a normal outcome the caller must check, not an error.
//
// Bookkeeping on both sides uses the locally computed amount after each
// successful boundary call. A host that reports a different amount has
// desynchronized the index; that is not detected here, only repaired by
// Resync.
func (h *Handle) Push(ctx context.Context, dst *Handle, fromSlot, limit int) (int, error) {
	if h.role == items.RoleInput {
		return 0, errors.FailedPreconditionf("cannot push from input inventory %s", h.name)
	}
	if dst == nil {
		return 0, errors.InvalidArgument("destination handle cannot be nil")
	}

	st, ok := h.StackAt(fromSlot)
	if !ok {
		return 0, nil
	}
	remaining := st.Count
	if limit > 0 && limit < remaining {
		remaining = limit
	}

	total := 0
	for _, slot := range dst.AvailableSlots(st.Name) {
		if remaining == 0 {
			break
		}
		room := dst.roomAt(st.Name, slot)
		if room <= 0 {
			continue
		}
		amount := remaining
		if room < amount {
			amount = room
		}

		moved, err := h.inv.PushItems(ctx, dst.name, fromSlot, amount, slot)
		if err != nil {
			// The increment's bookkeeping is skipped: the boundary call did
			// not complete and the index must not get ahead of the world.
			return total, errors.Wrapf(err, "push %s from %s slot %d to %s slot %d failed",
				st.Name, h.name, fromSlot, dst.name, slot)
		}
		if moved != amount && h.logger != nil {
			h.logger.Warn("push amount mismatch, indexes need resync",
				"item", st.Name,
				"from", h.name, "from_slot", fromSlot,
				"to", dst.name, "to_slot", slot,
				"expected", amount, "reported", moved)
		}

		h.deduct(st.Name, fromSlot, amount)
		if err := dst.Receive(st.Name, slot, amount); err != nil {
			return total, err
		}
		total += amount
		remaining -= amount
	}
	return total, nil
}

// Pull moves up to limit units out of src's fromSlot into this handle.
func (h *Handle) Pull(ctx context.Context, src *Handle, fromSlot, limit int) (int, error) {
	return src.Push(ctx, h, fromSlot, limit)
}
