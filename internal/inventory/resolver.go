package inventory

import (
	"strings"

	"go.uber.org/zap"
)

// LocationFingers is the location newer clients export for ring slots.
const LocationFingers = "Fingers"

// Resolver assigns export records to equipment slots.
// A Resolver is immutable after construction.
type Resolver struct {
	aliases map[string]Category
	logger  *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithAlias maps an extra export location onto category c.
func WithAlias(location string, c Category) ResolverOption {
	return func(r *Resolver) { r.aliases[location] = c }
}

// WithLogger logs every finding at debug level to logger.
func WithLogger(logger *zap.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver returns a Resolver that knows every Category by name and
// treats "Fingers" as "Ring".
//
// Postcondition: returns a non-nil Resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		aliases: map[string]Category{LocationFingers: CategoryRing},
		logger:  zap.NewNop(),
	}
	for c := range categorySlots {
		r.aliases[string(c)] = c
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve lays records out on a fresh inventory with the default resolver.
func Resolve(records []Record) *PlayerInventory {
	return defaultResolver.Resolve(records)
}

// Resolve lays records out on a fresh inventory and discards the findings.
func (r *Resolver) Resolve(records []Record) *PlayerInventory {
	inv, _ := r.ResolveReport(records)
	return inv
}

// ResolveReport lays records out on a fresh inventory, in order.
//
// Single-slot categories keep the last record seen. Two-slot categories take
// the first two records left then right; later ones are reported as
// ReasonSlotOverflow. Records for unknown locations are reported as
// ReasonUnknownLocation.
//
// Postcondition: every record is either assigned to a slot or named by
// exactly one finding; Items holds the assigned non-empty records in order.
func (r *Resolver) ResolveReport(records []Record) (*PlayerInventory, []Finding) {
	inv := NewPlayerInventory()
	var findings []Finding
	seen := make(map[Category]int)

	drop := func(rec Record, reason Reason, detail string) {
		f := Finding{Reason: reason, Line: rec.Line, Location: rec.Location, Name: rec.Name, Detail: detail}
		r.logger.Debug("record dropped",
			zap.String("reason", string(reason)),
			zap.Int("line", rec.Line),
			zap.String("location", rec.Location),
			zap.String("name", rec.Name),
		)
		findings = append(findings, f)
	}

	for _, rec := range records {
		if !rec.IsMainSlot() {
			drop(rec, ReasonBagSlot, "")
			continue
		}
		c, ok := r.aliases[rec.Location]
		if !ok {
			drop(rec, ReasonUnknownLocation, "")
			continue
		}
		slots := c.Slots()
		n := seen[c]
		seen[c] = n + 1

		var slot Slot
		switch {
		case len(slots) == 1:
			slot = slots[0]
		case n < len(slots):
			slot = slots[n]
		default:
			drop(rec, ReasonSlotOverflow, string(c))
			continue
		}

		inv.set(slot, rec)
		if !rec.IsEmpty() {
			inv.Items = append(inv.Items, rec)
		}
	}
	return inv, findings
}

// IsBagSlot reports whether location describes a container slot.
func IsBagSlot(location string) bool {
	return strings.Contains(location, bagSlotMarker)
}
