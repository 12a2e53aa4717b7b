// Package peripheral defines the boundary to the host game's inventory
// peripherals. The storage layer is written against these interfaces; the
// gateway implementation speaks to a real host over a websocket, while the
// fake implementation backs tests and demos with an in-memory world.
package peripheral

//go:generate mockgen -destination=mock/mock_peripheral.go -package=peripheralmock -source=interface.go

import (
	"context"

	"github.com/voxforge/storage-api/internal/entities/items"
)

// Inventory is one addressable container on the host. Slots are 1-based.
// These five operations are the only primitives the storage layer assumes;
// PushItems is atomic and reliable up to the reported amount.
type Inventory interface {
	// Name returns the handle used to address this inventory at the host
	// boundary (also the destination name accepted by PushItems on peers).
	Name() string

	// Size returns the fixed slot count.
	Size(ctx context.Context) (int, error)

	// List returns the current contents keyed by slot index. The mapping is
	// sparse: an absent slot is empty.
	List(ctx context.Context) (map[int]items.ItemStack, error)

	// ItemDetail returns extended metadata for an occupied slot, or nil when
	// the slot is empty.
	ItemDetail(ctx context.Context, slot int) (*items.ItemDetail, error)

	// ItemLimit returns the maximum stack size of a slot.
	ItemLimit(ctx context.Context, slot int) (int, error)

	// PushItems moves up to limit items from fromSlot into toSlot of the
	// named destination inventory and returns the amount actually moved.
	PushItems(ctx context.Context, toName string, fromSlot, limit, toSlot int) (int, error)
}

// Registry discovers and resolves inventories by name.
type Registry interface {
	// Names lists every inventory peripheral currently attached.
	Names(ctx context.Context) ([]string, error)

	// Inventory resolves one inventory by name.
	// Returns errors.NotFound if no such peripheral is attached.
	Inventory(ctx context.Context, name string) (Inventory, error)
}
