// Package render builds read-only projections of a resolved inventory and
// writes them as text or YAML.
package render

import (
	"github.com/cory-johannsen/invreader/internal/inventory"
)

// SlotRow is one equipment slot as displayed.
type SlotRow struct {
	Slot   string `yaml:"slot"`
	Label  string `yaml:"label"`
	Empty  bool   `yaml:"empty"`
	Name   string `yaml:"name,omitempty"`
	Short  string `yaml:"short"`
	ID     int    `yaml:"id,omitempty"`
	Count  int    `yaml:"count,omitempty"`
	Rarity string `yaml:"rarity"`
	Color  string `yaml:"color"`
}

// ItemRow is one entry of the flat item list.
type ItemRow struct {
	Location string `yaml:"location"`
	Name     string `yaml:"name"`
	ID       int    `yaml:"id"`
	Count    int    `yaml:"count"`
	Slots    int    `yaml:"slots,omitempty"`
	Rarity   string `yaml:"rarity"`
	Color    string `yaml:"color"`
}

// View is everything a display needs from one inventory.
type View struct {
	Slots      []SlotRow               `yaml:"slots"`
	Items      []ItemRow               `yaml:"items"`
	Stats      inventory.Stats         `yaml:"stats"`
	Currencies []inventory.AltCurrency `yaml:"currencies,omitempty"`
	Findings   []inventory.Finding     `yaml:"findings,omitempty"`
}

// Project copies inv into a View. Later changes to inv do not affect the view.
//
// Precondition: inv is non-nil.
// Postcondition: Slots has one row per inventory.AllSlots entry, in order.
func Project(inv *inventory.PlayerInventory, findings []inventory.Finding) View {
	v := View{
		Slots: make([]SlotRow, 0, len(inventory.AllSlots)),
		Items: make([]ItemRow, 0, len(inv.Items)),
		Stats: inv.Stats,
	}
	for _, s := range inventory.AllSlots {
		r := inv.Slot(s)
		row := SlotRow{
			Slot:   string(s),
			Label:  s.DisplayName(),
			Empty:  r.IsEmpty(),
			Short:  r.ShortName(),
			Rarity: r.Rarity().String(),
			Color:  string(r.DisplayColor()),
		}
		if !row.Empty {
			row.Name = r.Name
			row.ID = r.ID
			row.Count = r.Count
		}
		v.Slots = append(v.Slots, row)
	}
	for _, r := range inv.Items {
		v.Items = append(v.Items, ItemRow{
			Location: r.Location,
			Name:     r.Name,
			ID:       r.ID,
			Count:    r.Count,
			Slots:    r.SlotsGranted,
			Rarity:   r.Rarity().String(),
			Color:    string(r.DisplayColor()),
		})
	}
	v.Currencies = append(v.Currencies, inv.Currencies...)
	v.Findings = append(v.Findings, findings...)
	return v
}
