// Package items holds the core value types shared by the storage and
// crafting layers: item stacks, item detail metadata, and storage roles.
package items

// ItemStack is the contents of one inventory slot: an item name and how
// many of it are stacked there.
type ItemStack struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ItemDetail is the extended metadata the peripheral boundary exposes for
// an occupied slot.
type ItemDetail struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Count       int    `json:"count"`
	MaxCount    int    `json:"max_count"`
}

// StorageRole classifies an inventory within the storage group.
type StorageRole string

// Storage roles
const (
	// RoleInput inventories feed crafting machines: the controller only
	// ever pushes into them. Their contents are earmarked, never counted
	// as available stock, and they are never push sources.
	RoleInput StorageRole = "input"
	// RoleOutput inventories receive crafted items; both directions allowed.
	RoleOutput StorageRole = "output"
	// RoleStorage inventories are general purpose; both directions allowed.
	RoleStorage StorageRole = "storage"
)

// String returns the string representation of the role
func (r StorageRole) String() string {
	return string(r)
}

// IsValid checks if the role is one of the closed set
func (r StorageRole) IsValid() bool {
	switch r {
	case RoleInput, RoleOutput, RoleStorage:
		return true
	default:
		return false
	}
}

// NotInput returns the derived set of roles items can be taken from or
// counted in: Storage and Output. It is computed on demand, never stored.
func NotInput() []StorageRole {
	return []StorageRole{RoleStorage, RoleOutput}
}

// AllRoles returns every valid storage role
func AllRoles() []StorageRole {
	return []StorageRole{RoleInput, RoleOutput, RoleStorage}
}
