// Package tsv parses the tab-separated inventory export written by the game
// client into item records.
package tsv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/invreader/internal/inventory"
)

const (
	ammoPrefix  = string(inventory.CategoryAmmo) + "\t"
	fullColumns = 5
	minColumns  = 2
)

// headerFields must all appear in a line for it to be read as the header.
var headerFields = []string{"Location", "Name", "ID"}

// Result is the outcome of scanning one export.
type Result struct {
	// Records holds the emitted item records in export order.
	Records []inventory.Record
	// Findings names every line that was dropped or had a field defaulted.
	Findings []inventory.Finding
	// Header reports whether a header line was found and skipped.
	Header bool
}

type options struct {
	partialCount int
	ammoStop     bool
}

// Option configures Scan.
type Option func(*options)

// WithPartialCount sets the Count given to two-column lines. The default is 1.
func WithPartialCount(n int) Option {
	return func(o *options) { o.partialCount = n }
}

// WithAmmoStop controls whether an "Ammo" line ends the parse. The default
// is true.
func WithAmmoStop(stop bool) Option {
	return func(o *options) { o.ammoStop = stop }
}

// Parse returns the item records in raw using the default options.
//
// Postcondition: every returned record has a non-empty Location and Name and
// is not a bag slot.
func Parse(raw string) []inventory.Record {
	return Scan(raw).Records
}

// Scan parses raw and reports every line it dropped or defaulted.
// Scan never fails; malformed content only yields fewer records.
func Scan(raw string, opts ...Option) Result {
	o := options{partialCount: 1, ammoStop: true}
	for _, opt := range opts {
		opt(&o)
	}

	var res Result
	lines := strings.Split(raw, "\n")
	first := true
	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first {
			first = false
			if isHeader(line) {
				res.Header = true
				continue
			}
		}

		rec, findings, ok := parseLine(line, lineNo, o)
		res.Findings = append(res.Findings, findings...)
		if ok {
			res.Records = append(res.Records, rec)
		}

		if o.ammoStop && strings.HasPrefix(line, ammoPrefix) {
			if rest := countNonBlank(lines[i+1:]); rest > 0 {
				res.Findings = append(res.Findings, inventory.Finding{
					Reason: inventory.ReasonAfterAmmo,
					Line:   lineNo,
					Detail: fmt.Sprintf("%d line(s) not read", rest),
				})
			}
			break
		}
	}
	return res
}

func isHeader(line string) bool {
	for _, f := range headerFields {
		if !strings.Contains(line, f) {
			return false
		}
	}
	return true
}

// parseLine turns one trimmed line into a record. ok is false when the line
// yields no record; findings then names the reason.
func parseLine(line string, lineNo int, o options) (inventory.Record, []inventory.Finding, bool) {
	cols := strings.Split(line, "\t")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}

	drop := func(reason inventory.Reason, detail string) (inventory.Record, []inventory.Finding, bool) {
		f := inventory.Finding{Reason: reason, Line: lineNo, Location: cols[0], Detail: detail}
		if len(cols) > 1 {
			f.Name = cols[1]
		}
		return inventory.Record{}, []inventory.Finding{f}, false
	}

	if len(cols) < minColumns {
		return drop(inventory.ReasonTooFewColumns, fmt.Sprintf("%d column(s)", len(cols)))
	}
	location, name := cols[0], cols[1]
	if location == "" {
		return drop(inventory.ReasonMissingField, "location")
	}
	if name == "" {
		return drop(inventory.ReasonMissingField, "name")
	}
	if inventory.IsBagSlot(location) {
		return drop(inventory.ReasonBagSlot, "")
	}

	var findings []inventory.Finding
	num := func(field, s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			findings = append(findings, inventory.Finding{
				Reason:   inventory.ReasonNumberDefaulted,
				Line:     lineNo,
				Location: location,
				Name:     name,
				Detail:   fmt.Sprintf("%s %q", field, s),
			})
			return 0
		}
		return n
	}

	var rec inventory.Record
	if len(cols) >= fullColumns {
		rec = inventory.NewRecord(location, name,
			num("id", cols[2]), num("count", cols[3]), num("slots", cols[4]))
	} else {
		rec = inventory.NewRecord(location, name, 0, o.partialCount, 0)
	}
	rec.Line = lineNo
	return rec, findings, true
}

func countNonBlank(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
