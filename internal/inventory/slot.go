package inventory

// Category identifies an equipment location as the export names it.
type Category string

const (
	CategoryCharm     Category = "Charm"
	CategoryHead      Category = "Head"
	CategoryFace      Category = "Face"
	CategoryNeck      Category = "Neck"
	CategoryEar       Category = "Ear"
	CategoryShoulders Category = "Shoulders"
	CategoryArms      Category = "Arms"
	CategoryWrist     Category = "Wrist"
	CategoryHands     Category = "Hands"
	CategoryChest     Category = "Chest"
	CategoryBack      Category = "Back"
	CategoryWaist     Category = "Waist"
	CategoryLegs      Category = "Legs"
	CategoryFeet      Category = "Feet"
	CategoryRing      Category = "Ring"
	CategoryPrimary   Category = "Primary"
	CategorySecondary Category = "Secondary"
	CategoryRange     Category = "Range"
	CategoryAmmo      Category = "Ammo"
)

// Slot identifies one physical equipment slot.
type Slot string

const (
	SlotCharm      Slot = "charm"
	SlotHead       Slot = "head"
	SlotFace       Slot = "face"
	SlotNeck       Slot = "neck"
	SlotLeftEar    Slot = "left_ear"
	SlotRightEar   Slot = "right_ear"
	SlotShoulders  Slot = "shoulders"
	SlotArms       Slot = "arms"
	SlotLeftWrist  Slot = "left_wrist"
	SlotRightWrist Slot = "right_wrist"
	SlotHands      Slot = "hands"
	SlotChest      Slot = "chest"
	SlotBack       Slot = "back"
	SlotWaist      Slot = "waist"
	SlotLegs       Slot = "legs"
	SlotFeet       Slot = "feet"
	SlotLeftRing   Slot = "left_ring"
	SlotRightRing  Slot = "right_ring"
	SlotPrimary    Slot = "primary"
	SlotSecondary  Slot = "secondary"
	SlotRange      Slot = "range"
	SlotAmmo       Slot = "ammo"
)

// AllSlots lists every slot in paper-doll order.
var AllSlots = []Slot{
	SlotCharm, SlotHead, SlotFace, SlotNeck,
	SlotLeftEar, SlotRightEar,
	SlotShoulders, SlotArms,
	SlotLeftWrist, SlotRightWrist,
	SlotHands, SlotChest, SlotBack, SlotWaist, SlotLegs, SlotFeet,
	SlotLeftRing, SlotRightRing,
	SlotPrimary, SlotSecondary, SlotRange, SlotAmmo,
}

// categorySlots maps each category to its slots in fill order.
var categorySlots = map[Category][]Slot{
	CategoryCharm:     {SlotCharm},
	CategoryHead:      {SlotHead},
	CategoryFace:      {SlotFace},
	CategoryNeck:      {SlotNeck},
	CategoryEar:       {SlotLeftEar, SlotRightEar},
	CategoryShoulders: {SlotShoulders},
	CategoryArms:      {SlotArms},
	CategoryWrist:     {SlotLeftWrist, SlotRightWrist},
	CategoryHands:     {SlotHands},
	CategoryChest:     {SlotChest},
	CategoryBack:      {SlotBack},
	CategoryWaist:     {SlotWaist},
	CategoryLegs:      {SlotLegs},
	CategoryFeet:      {SlotFeet},
	CategoryRing:      {SlotLeftRing, SlotRightRing},
	CategoryPrimary:   {SlotPrimary},
	CategorySecondary: {SlotSecondary},
	CategoryRange:     {SlotRange},
	CategoryAmmo:      {SlotAmmo},
}

var slotCategory = func() map[Slot]Category {
	m := make(map[Slot]Category, len(AllSlots))
	for c, slots := range categorySlots {
		for _, s := range slots {
			m[s] = c
		}
	}
	return m
}()

// slotDisplayNames maps every slot to its human-readable label.
var slotDisplayNames = map[Slot]string{
	SlotCharm:      "Charm",
	SlotHead:       "Head",
	SlotFace:       "Face",
	SlotNeck:       "Neck",
	SlotLeftEar:    "Left Ear",
	SlotRightEar:   "Right Ear",
	SlotShoulders:  "Shoulders",
	SlotArms:       "Arms",
	SlotLeftWrist:  "Left Wrist",
	SlotRightWrist: "Right Wrist",
	SlotHands:      "Hands",
	SlotChest:      "Chest",
	SlotBack:       "Back",
	SlotWaist:      "Waist",
	SlotLegs:       "Legs",
	SlotFeet:       "Feet",
	SlotLeftRing:   "Left Ring",
	SlotRightRing:  "Right Ring",
	SlotPrimary:    "Primary",
	SlotSecondary:  "Secondary",
	SlotRange:      "Range",
	SlotAmmo:       "Ammo",
}

// DisplayName returns the human-readable label for s, or s itself if unknown.
func (s Slot) DisplayName() string {
	if label, ok := slotDisplayNames[s]; ok {
		return label
	}
	return string(s)
}

// Category returns the category s belongs to, or "" if s is unknown.
func (s Slot) Category() Category {
	return slotCategory[s]
}

// Slots returns the slots of c in fill order, or nil if c is unknown.
func (c Category) Slots() []Slot {
	return categorySlots[c]
}

// Multi reports whether c holds more than one item.
func (c Category) Multi() bool {
	return len(categorySlots[c]) > 1
}
