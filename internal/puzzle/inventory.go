package puzzle

import (
	"strings"

	"spherepuzzle/internal/engine"

	"github.com/zyedidia/generic/mapset"
)

// ItemKey is the only item the rooms hand out.
const ItemKey = "Key"

// Inventory is an insertion-ordered set of item names.
type Inventory struct {
	items []string
	held  mapset.Set[string]

	// OnChange fires with a snapshot of the items after every mutation.
	OnChange engine.EventWithArg[[]string]
}

func NewInventory() *Inventory {
	return &Inventory{held: mapset.New[string]()}
}

// Add inserts item and reports whether it was new.
func (inv *Inventory) Add(item string) bool {
	if inv.held.Has(item) {
		return false
	}
	inv.held.Put(item)
	inv.items = append(inv.items, item)
	inv.OnChange.Invoke(inv.Items())
	return true
}

// Remove drops item and reports whether it was held.
func (inv *Inventory) Remove(item string) bool {
	if !inv.held.Has(item) {
		return false
	}
	inv.held.Remove(item)
	for i, it := range inv.items {
		if it == item {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			break
		}
	}
	inv.OnChange.Invoke(inv.Items())
	return true
}

func (inv *Inventory) Has(item string) bool {
	return inv.held.Has(item)
}

func (inv *Inventory) Len() int {
	return inv.held.Size()
}

// Items returns a copy in insertion order.
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) String() string {
	return FormatInventory(inv.items)
}

// FormatInventory renders the inventory label text.
func FormatInventory(items []string) string {
	if len(items) == 0 {
		return "Inventory: (empty)"
	}
	return "Inventory: " + strings.Join(items, ", ")
}
