package hero

import (
	"sort"

	"github.com/cory-johannsen/delve/internal/game/item"
)

// AddItem puts one item into the inventory.
func (h *Hero) AddItem(it item.Item) {
	if h.inventory == nil {
		h.inventory = make(map[item.Key][]item.Item)
	}
	h.inventory[it.Key()] = append(h.inventory[it.Key()], it)
}

// TakeItem removes and returns one item with the given key, false when
// none is held.
func (h *Hero) TakeItem(key item.Key) (item.Item, bool) {
	held := h.inventory[key]
	if len(held) == 0 {
		return nil, false
	}
	it := held[0]
	if len(held) == 1 {
		delete(h.inventory, key)
	} else {
		h.inventory[key] = held[1:]
	}
	return it, true
}

// InventoryCounts tallies held items by key.
func (h *Hero) InventoryCounts() map[item.Key]int {
	counts := make(map[item.Key]int, len(h.inventory))
	for key, held := range h.inventory {
		counts[key] = len(held)
	}
	return counts
}

// InventoryItems returns a copy of every held item, ordered by key.
func (h *Hero) InventoryItems() []item.Item {
	return h.sortedItems(false)
}

// DrainInventory empties the inventory and returns everything that was
// in it, ordered by key.
func (h *Hero) DrainInventory() []item.Item {
	return h.sortedItems(true)
}

func (h *Hero) sortedItems(drain bool) []item.Item {
	keys := make([]string, 0, len(h.inventory))
	for key := range h.inventory {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	var items []item.Item
	for _, key := range keys {
		items = append(items, h.inventory[item.Key(key)]...)
	}
	if drain {
		h.inventory = make(map[item.Key][]item.Item)
	}
	return items
}
