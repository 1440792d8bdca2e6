package inventory

// Resource is a current/max pair such as hit points.
type Resource struct {
	Current int `yaml:"current"`
	Max     int `yaml:"max"`
}

// Stats holds the character's attributes and resource pools.
type Stats struct {
	Strength     int `yaml:"strength"`
	Stamina      int `yaml:"stamina"`
	Agility      int `yaml:"agility"`
	Dexterity    int `yaml:"dexterity"`
	Wisdom       int `yaml:"wisdom"`
	Intelligence int `yaml:"intelligence"`
	Charisma     int `yaml:"charisma"`

	HP        Resource `yaml:"hp"`
	Mana      Resource `yaml:"mana"`
	Endurance Resource `yaml:"endurance"`
}

// AltCurrency is a named alternate-currency balance.
type AltCurrency struct {
	Name   string `yaml:"name"`
	Amount int    `yaml:"amount"`
}

// PlayerInventory is the resolved equipment layout of one character.
//
// A PlayerInventory is built by a Resolver and read by callers; it is never
// updated incrementally.
type PlayerInventory struct {
	slots map[Slot]Record
	// byLocation holds the first record assigned for each location string.
	byLocation map[string]Record

	// Items lists every non-empty assigned record in export order.
	Items []Record
	// Stats holds the character's attributes and resource pools.
	Stats Stats
	// Currencies lists alternate-currency balances in display order.
	Currencies []AltCurrency
}

// NewPlayerInventory returns an inventory with every slot empty.
//
// Postcondition: Slot(s).IsEmpty() for every s in AllSlots; Items is empty.
func NewPlayerInventory() *PlayerInventory {
	p := &PlayerInventory{}
	p.Clear()
	return p
}

// Clear resets every slot, collection, and stat to its empty value.
func (p *PlayerInventory) Clear() {
	p.slots = make(map[Slot]Record, len(AllSlots))
	for _, s := range AllSlots {
		p.slots[s] = emptyRecord(string(s.Category()))
	}
	p.byLocation = make(map[string]Record)
	p.Items = nil
	p.Stats = Stats{}
	p.Currencies = nil
}

// Slot returns the record occupying s. Unknown slots yield an empty record.
func (p *PlayerInventory) Slot(s Slot) Record {
	if r, ok := p.slots[s]; ok {
		return r
	}
	return emptyRecord(string(s.Category()))
}

// ByLocation returns the first record assigned for the export location,
// or an empty record carrying that location.
func (p *PlayerInventory) ByLocation(location string) Record {
	if r, ok := p.byLocation[location]; ok {
		return r
	}
	return emptyRecord(location)
}

// Equipped returns the number of slots holding a non-empty record.
func (p *PlayerInventory) Equipped() int {
	n := 0
	for _, r := range p.slots {
		if !r.IsEmpty() {
			n++
		}
	}
	return n
}

func (p *PlayerInventory) set(s Slot, r Record) {
	p.slots[s] = r
	if _, ok := p.byLocation[r.Location]; !ok {
		p.byLocation[r.Location] = r
	}
}
