package inventory

import (
	"strings"
	"unicode/utf8"
)

const (
	// MarkerLegendary is the name suffix the client appends to legendary items.
	MarkerLegendary = "(Legendary)"
	// MarkerEnchanted is the name suffix the client appends to enchanted items.
	MarkerEnchanted = "(Enchanted)"

	// bagSlotMarker appears in locations describing container contents
	// (e.g. "General1-Slot3").
	bagSlotMarker = "-Slot"

	shortNameMax    = 15
	shortNameKeep   = 12
	shortNameSuffix = "..."
	emptyShortName  = "Empty"
)

// Marks is a bitset of the quality markers found in an item name.
type Marks uint8

const (
	// MarkEnchanted is set when the name contains MarkerEnchanted.
	MarkEnchanted Marks = 1 << iota
	// MarkLegendary is set when the name contains MarkerLegendary.
	MarkLegendary
)

// MarksOf scans name once for quality markers.
func MarksOf(name string) Marks {
	var m Marks
	if strings.Contains(name, MarkerEnchanted) {
		m |= MarkEnchanted
	}
	if strings.Contains(name, MarkerLegendary) {
		m |= MarkLegendary
	}
	return m
}

// Rarity is the display rarity of an item.
type Rarity int

const (
	// RarityCommon is an item without quality markers.
	RarityCommon Rarity = iota
	// RarityEnchanted is an item marked (Enchanted).
	RarityEnchanted
	// RarityLegendary is an item marked (Legendary). It outranks enchanted.
	RarityLegendary
)

// String returns the lowercase rarity name.
func (r Rarity) String() string {
	switch r {
	case RarityEnchanted:
		return "enchanted"
	case RarityLegendary:
		return "legendary"
	default:
		return "common"
	}
}

// Color is a "#RRGGBB" display color.
type Color string

const (
	ColorWhite  Color = "#FFFFFF"
	ColorGold   Color = "#FFD700"
	ColorPurple Color = "#9370DB"
)

// Record is one item line from an inventory export.
type Record struct {
	// Location is the export's location column, e.g. "Head" or "General1-Slot2".
	Location string `yaml:"location"`
	// Name is the item name as exported, quality markers included.
	Name string `yaml:"name"`
	// ID is the item's numeric identifier; 0 when absent.
	ID int `yaml:"id"`
	// Count is the stack size; 0 when absent.
	Count int `yaml:"count"`
	// SlotsGranted is the number of container slots the item provides.
	SlotsGranted int `yaml:"slots"`
	// Line is the 1-based export line the record came from, 0 if built by hand.
	Line int `yaml:"line,omitempty"`
	// Marks holds the quality markers found in Name.
	Marks Marks `yaml:"-"`
}

// NewRecord builds a Record and derives its quality marks from name.
//
// Postcondition: r.Marks == MarksOf(name).
func NewRecord(location, name string, id, count, slots int) Record {
	return Record{
		Location:     location,
		Name:         name,
		ID:           id,
		Count:        count,
		SlotsGranted: slots,
		Marks:        MarksOf(name),
	}
}

// emptyRecord is the sentinel held by an unoccupied slot.
func emptyRecord(location string) Record {
	return Record{Location: location}
}

// IsEmpty reports whether the record holds no item.
func (r Record) IsEmpty() bool {
	return r.ID == 0 && r.Count == 0
}

// IsMainSlot reports whether the record describes an equipped slot rather
// than a container slot.
func (r Record) IsMainSlot() bool {
	return !IsBagSlot(r.Location)
}

// IsLegendary reports whether the name carries the legendary marker.
func (r Record) IsLegendary() bool { return r.Marks&MarkLegendary != 0 }

// IsEnchanted reports whether the name carries the enchanted marker.
func (r Record) IsEnchanted() bool { return r.Marks&MarkEnchanted != 0 }

// Rarity returns the highest rarity the record is marked with.
func (r Record) Rarity() Rarity {
	switch {
	case r.IsLegendary():
		return RarityLegendary
	case r.IsEnchanted():
		return RarityEnchanted
	default:
		return RarityCommon
	}
}

// DisplayColor returns the color used to draw the item's name.
//
// Postcondition: empty records are always ColorWhite.
func (r Record) DisplayColor() Color {
	if r.IsEmpty() {
		return ColorWhite
	}
	switch r.Rarity() {
	case RarityLegendary:
		return ColorGold
	case RarityEnchanted:
		return ColorPurple
	default:
		return ColorWhite
	}
}

// ShortName returns the label drawn inside an equipment slot.
//
// Postcondition: the result is at most 15 runes long.
func (r Record) ShortName() string {
	if r.IsEmpty() {
		return emptyShortName
	}
	name := StripQuality(r.Name)
	if utf8.RuneCountInString(name) > shortNameMax {
		runes := []rune(name)
		return string(runes[:shortNameKeep]) + shortNameSuffix
	}
	return name
}

// StripQuality removes every quality marker from name and trims the result.
// Removal repeats until no marker remains, so StripQuality(StripQuality(s))
// equals StripQuality(s).
func StripQuality(name string) string {
	for {
		next := strings.ReplaceAll(name, MarkerLegendary, "")
		next = strings.ReplaceAll(next, MarkerEnchanted, "")
		if next == name {
			break
		}
		name = next
	}
	return strings.TrimSpace(name)
}
