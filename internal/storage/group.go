package storage

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/errors"
	"github.com/voxforge/storage-api/internal/peripheral"
)

// GroupConfig holds the dependencies for a storage group.
type GroupConfig struct {
	Registry peripheral.Registry

	// InputNames and OutputNames partition the discovered inventories:
	// names listed here get the input or output role, everything else is
	// general storage.
	InputNames  []string
	OutputNames []string

	// MaxStackOverride is forwarded to every handle. Zero means derive.
	MaxStackOverride int

	// Logger is optional; nil disables group and handle logging.
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided.
func (cfg *GroupConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Registry == nil {
		vb.RequiredField("Registry")
	}
	if cfg.MaxStackOverride < 0 {
		vb.Field("MaxStackOverride", "cannot be negative")
	}

	return vb.Build()
}

// Group owns the handles for every discovered inventory, keyed by name.
// The handle map is replaced only by discovery; all other state lives in
// the handles themselves.
type Group struct {
	registry peripheral.Registry
	roles    map[string]items.StorageRole
	override int
	logger   *slog.Logger

	mu      sync.RWMutex
	handles map[string]*Handle
}

// NewGroup discovers every attached inventory, wraps each in a handle
// with its configured role, and waits for all of them before returning.
func NewGroup(ctx context.Context, cfg *GroupConfig) (*Group, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid group config")
	}

	roles := make(map[string]items.StorageRole)
	for _, name := range cfg.InputNames {
		roles[name] = items.RoleInput
	}
	for _, name := range cfg.OutputNames {
		roles[name] = items.RoleOutput
	}

	g := &Group{
		registry: cfg.Registry,
		roles:    roles,
		override: cfg.MaxStackOverride,
		logger:   cfg.Logger,
	}
	if err := g.discover(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// discover re-runs peripheral discovery and rebuilds the handle map.
// Handle construction fans out concurrently; each handle is independent
// and lands in a distinct map entry. The join is a barrier: the new map
// is not installed until every construction finished.
func (g *Group) discover(ctx context.Context) error {
	names, err := g.registry.Names(ctx)
	if err != nil {
		return errors.Wrap(err, "peripheral discovery failed")
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		handles  = make(map[string]*Handle, len(names))
		firstErr error
	)
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			inv, err := g.registry.Inventory(ctx, name)
			if err == nil {
				var h *Handle
				h, err = NewHandle(ctx, &HandleConfig{
					Peripheral:       inv,
					Role:             g.roleOf(name),
					MaxStackOverride: g.override,
					Logger:           g.logger,
				})
				if err == nil {
					mu.Lock()
					handles[name] = h
					mu.Unlock()
					return
				}
			}
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	g.mu.Lock()
	g.handles = handles
	g.mu.Unlock()

	if g.logger != nil {
		g.logger.Info("storage group discovered", "inventories", len(handles))
	}
	return nil
}

func (g *Group) roleOf(name string) items.StorageRole {
	if role, ok := g.roles[name]; ok {
		return role
	}
	return items.RoleStorage
}

func (g *Group) lookup(name string) *Handle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.handles[name]
}

// Inventory returns the handle for a named inventory. A miss triggers one
// full rediscovery and a single retry; a peripheral attached after the
// group was built is picked up that way.
func (g *Group) Inventory(ctx context.Context, name string) (*Handle, error) {
	if h := g.lookup(name); h != nil {
		return h, nil
	}
	if err := g.discover(ctx); err != nil {
		return nil, err
	}
	if h := g.lookup(name); h != nil {
		return h, nil
	}
	return nil, errors.NotFoundf("no inventory named %s", name)
}

// Handles returns the handles with any of the given roles, sorted by
// name. No roles means every handle.
func (g *Group) Handles(roles ...items.StorageRole) []*Handle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Handle
	for _, h := range g.handles {
		if len(roles) == 0 {
			out = append(out, h)
			continue
		}
		for _, role := range roles {
			if h.Role() == role {
				out = append(out, h)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// TotalCount sums an item's stock across every non-input handle. The
// input-role exclusion here is redundant with the handle's own zero
// return, kept as defense in depth.
func (g *Group) TotalCount(_ context.Context, name string) int {
	total := 0
	for _, h := range g.Handles(items.NotInput()...) {
		total += h.ItemCount(name)
	}
	return total
}

// ItemNames returns the union of item names across every handle plus the
// caller's seed names (so craftable items appear even at zero stock).
// Order is not part of the contract; the result is sorted for stable
// presentation only.
func (g *Group) ItemNames(seed ...string) []string {
	set := make(map[string]struct{})
	for _, name := range seed {
		set[name] = struct{}{}
	}
	for _, h := range g.Handles() {
		for _, name := range h.ItemNames() {
			set[name] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// InventoryNames returns every handle name, sorted.
func (g *Group) InventoryNames() []string {
	handles := g.Handles()
	names := make([]string, 0, len(handles))
	for _, h := range handles {
		names = append(names, h.Name())
	}
	return names
}

// MoveItemFromOne drains the named item from one handle across a set of
// destinations until limit units have moved. Returns whether the limit
// was fully satisfied; false when the source holds none at all or the
// destinations filled up short of the limit.
func (g *Group) MoveItemFromOne(ctx context.Context, from *Handle, toSet []*Handle, name string, limit int) (bool, error) {
	if from == nil {
		return false, errors.InvalidArgument("source handle cannot be nil")
	}
	slots := from.SlotsHolding(name)
	if len(slots) == 0 {
		return false, nil
	}

	remaining := limit
	for _, slot := range slots {
		for _, dst := range toSet {
			if remaining == 0 {
				return true, nil
			}
			moved, err := from.Push(ctx, dst, slot, remaining)
			if err != nil {
				return false, err
			}
			remaining -= moved
			if _, ok := from.StackAt(slot); !ok {
				break
			}
		}
	}
	return remaining == 0, nil
}

// MoveItemFromMany pulls the named item from a set of sources into one
// destination, stopping as soon as limit units have moved. Returns the
// amount actually moved, at most limit. Source order affects cost only,
// never the total.
func (g *Group) MoveItemFromMany(ctx context.Context, fromSet []*Handle, to *Handle, name string, limit int) (int, error) {
	if to == nil {
		return 0, errors.InvalidArgument("destination handle cannot be nil")
	}

	total := 0
	for _, src := range fromSet {
		for _, slot := range src.SlotsHolding(name) {
			if total == limit {
				return total, nil
			}
			moved, err := src.Push(ctx, to, slot, limit-total)
			if err != nil {
				return total, err
			}
			total += moved
		}
	}
	return total, nil
}

// MoveOneToMany drains every occupied slot of one handle into whichever
// destinations have room. Best effort: whatever no destination can take
// stays where it is.
func (g *Group) MoveOneToMany(ctx context.Context, from *Handle, toSet []*Handle) error {
	if from == nil {
		return errors.InvalidArgument("source handle cannot be nil")
	}

	for _, slot := range from.OccupiedSlots() {
		for _, dst := range toSet {
			if _, err := from.Push(ctx, dst, slot, 0); err != nil {
				return err
			}
			if _, ok := from.StackAt(slot); !ok {
				break
			}
		}
	}
	return nil
}
