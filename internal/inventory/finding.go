package inventory

import "fmt"

// Reason names a non-fatal outcome of reading an export.
type Reason string

const (
	// ReasonTooFewColumns marks a line with fewer than two tab-separated columns.
	ReasonTooFewColumns Reason = "too_few_columns"
	// ReasonMissingField marks a line whose location or name column is empty.
	ReasonMissingField Reason = "missing_field"
	// ReasonBagSlot marks a container-slot line; it is not equippable.
	ReasonBagSlot Reason = "bag_slot"
	// ReasonNumberDefaulted marks a numeric column that did not parse and was
	// read as 0. The record itself is kept.
	ReasonNumberDefaulted Reason = "number_defaulted"
	// ReasonAfterAmmo marks the lines left unread after the Ammo line.
	ReasonAfterAmmo Reason = "after_ammo"
	// ReasonUnknownLocation marks a record whose location is not an equipment slot.
	ReasonUnknownLocation Reason = "unknown_location"
	// ReasonSlotOverflow marks a third or later record for a two-slot category.
	ReasonSlotOverflow Reason = "slot_overflow"
)

// Dropped reports whether findings with this reason discard their record.
func (r Reason) Dropped() bool {
	return r != ReasonNumberDefaulted
}

// Finding records one non-fatal outcome of parsing or resolving.
type Finding struct {
	Reason Reason `yaml:"reason"`
	// Line is the 1-based export line, or 0 when unknown.
	Line int `yaml:"line,omitempty"`
	// Location and Name identify the affected record, when there is one.
	Location string `yaml:"location,omitempty"`
	Name     string `yaml:"name,omitempty"`
	// Detail carries reason-specific context such as a field name or a count.
	Detail string `yaml:"detail,omitempty"`
}

// String renders the finding for log and terminal output.
func (f Finding) String() string {
	s := string(f.Reason)
	if f.Line > 0 {
		s = fmt.Sprintf("line %d: %s", f.Line, s)
	}
	if f.Location != "" || f.Name != "" {
		s += fmt.Sprintf(" (%s %q)", f.Location, f.Name)
	}
	if f.Detail != "" {
		s += ": " + f.Detail
	}
	return s
}

// CountByReason tallies findings per reason.
func CountByReason(findings []Finding) map[Reason]int {
	out := make(map[Reason]int)
	for _, f := range findings {
		out[f.Reason]++
	}
	return out
}
