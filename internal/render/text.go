package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const labelWidth = 12

// TextOptions controls Text output.
type TextOptions struct {
	// Color wraps item names in 24-bit ANSI color escapes.
	Color bool
	// NameWidth is the cell width of the item-name column.
	NameWidth int
	// ShowItems appends the flat item list.
	ShowItems bool
	// ShowFindings appends every finding.
	ShowFindings bool
}

// Text writes v as an aligned equipment sheet.
func Text(w io.Writer, v View, opts TextOptions) error {
	if opts.NameWidth <= 0 {
		opts.NameWidth = 15
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "EQUIPMENT")
	for _, row := range v.Slots {
		name := paint(pad(row.Short, opts.NameWidth), row.Color, opts.Color && !row.Empty)
		line := "  " + pad(row.Label, labelWidth) + " " + name
		if !row.Empty {
			line += fmt.Sprintf(" %7d x%d", row.ID, row.Count)
		}
		fmt.Fprintln(bw, strings.TrimRight(line, " "))
	}

	if opts.ShowItems {
		fmt.Fprintf(bw, "\nITEMS (%d)\n", len(v.Items))
		for _, it := range v.Items {
			name := paint(it.Name, it.Color, opts.Color)
			fmt.Fprintf(bw, "  %s %s  #%d x%d\n", pad(it.Location, labelWidth), name, it.ID, it.Count)
		}
	}

	s := v.Stats
	fmt.Fprintln(bw, "\nSTATS")
	fmt.Fprintf(bw, "  STR %d  STA %d  AGI %d  DEX %d  WIS %d  INT %d  CHA %d\n",
		s.Strength, s.Stamina, s.Agility, s.Dexterity, s.Wisdom, s.Intelligence, s.Charisma)
	fmt.Fprintf(bw, "  HP %d/%d  Mana %d/%d  Endurance %d/%d\n",
		s.HP.Current, s.HP.Max, s.Mana.Current, s.Mana.Max, s.Endurance.Current, s.Endurance.Max)

	if len(v.Currencies) > 0 {
		fmt.Fprintln(bw, "\nCURRENCIES")
		for _, c := range v.Currencies {
			fmt.Fprintf(bw, "  %s %d\n", pad(c.Name, opts.NameWidth), c.Amount)
		}
	}

	if opts.ShowFindings && len(v.Findings) > 0 {
		fmt.Fprintf(bw, "\nFINDINGS (%d)\n", len(v.Findings))
		for _, f := range v.Findings {
			fmt.Fprintf(bw, "  %s\n", f)
		}
	}
	return bw.Flush()
}

// pad truncates or right-fills s to exactly width terminal cells.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// paint wraps s in a 24-bit foreground escape for a "#RRGGBB" color.
func paint(s, hex string, enabled bool) string {
	if !enabled {
		return s
	}
	r, g, b, ok := parseHex(hex)
	if !ok {
		return s
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(n >> 16), uint8(n >> 8), uint8(n), true
}
