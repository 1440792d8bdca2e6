package tsv_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/invreader/internal/importer/tsv"
	"github.com/cory-johannsen/invreader/internal/inventory"
)

const header = "Location\tName\tID\tCount\tSlots"

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, tsv.Parse(""))
	assert.Empty(t, tsv.Parse("\n  \n\t\n"))
}

func TestParse_HeaderAndFullRecord(t *testing.T) {
	res := tsv.Scan(header + "\nHead\tCrown of the Froglok King\t12034\t1\t8")
	assert.True(t, res.Header)
	require.Len(t, res.Records, 1)
	r := res.Records[0]
	assert.Equal(t, "Head", r.Location)
	assert.Equal(t, "Crown of the Froglok King", r.Name)
	assert.Equal(t, 12034, r.ID)
	assert.Equal(t, 1, r.Count)
	assert.Equal(t, 8, r.SlotsGranted)
	assert.Equal(t, 2, r.Line)
	assert.Empty(t, res.Findings)
}

func TestParse_NoHeaderFirstLineIsData(t *testing.T) {
	res := tsv.Scan("Head\tMask\t1\t1\t0\nChest\tPlate\t2\t1\t0")
	assert.False(t, res.Header)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Mask", res.Records[0].Name)
}

func TestParse_HeaderOnlyOnFirstLine(t *testing.T) {
	records := tsv.Parse("Head\tMask\nLocation\tName ID\t0\t0\t0")
	require.Len(t, records, 2)
	assert.Equal(t, "Location", records[1].Location)
}

func TestParse_PartialRecord(t *testing.T) {
	records := tsv.Parse("Head\tMask")
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].ID)
	assert.Equal(t, 1, records[0].Count)
	assert.Equal(t, 0, records[0].SlotsGranted)
	assert.False(t, records[0].IsEmpty())
}

func TestParse_PartialCountOption(t *testing.T) {
	res := tsv.Scan("Head\tMask", tsv.WithPartialCount(0))
	require.Len(t, res.Records, 1)
	assert.True(t, res.Records[0].IsEmpty())
}

func TestParse_ThreeAndFourColumnsArePartial(t *testing.T) {
	records := tsv.Parse("Head\tMask\t55\nChest\tPlate\t66\t2")
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].ID)
	assert.Equal(t, 1, records[1].Count)
}

func TestParse_TooFewColumns(t *testing.T) {
	res := tsv.Scan("JustOneColumn\nHead\tMask")
	require.Len(t, res.Records, 1)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, inventory.ReasonTooFewColumns, res.Findings[0].Reason)
	assert.Equal(t, 1, res.Findings[0].Line)
}

func TestParse_NumbersDefaultToZero(t *testing.T) {
	res := tsv.Scan("Head\tMask\tabc\t2\tx")
	require.Len(t, res.Records, 1)
	r := res.Records[0]
	assert.Equal(t, 0, r.ID)
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, 0, r.SlotsGranted)
	require.Len(t, res.Findings, 2)
	for _, f := range res.Findings {
		assert.Equal(t, inventory.ReasonNumberDefaulted, f.Reason)
	}
	assert.Contains(t, res.Findings[0].Detail, "id")
	assert.Contains(t, res.Findings[1].Detail, "slots")
}

func TestParse_BagSlotsExcluded(t *testing.T) {
	res := tsv.Scan("General1\tBackpack\t10\t1\t10\nGeneral1-Slot1\tBread\t11\t5\t0\nHead\tMask\t1\t1\t0")
	assert.Equal(t, []string{"Backpack", "Mask"}, names(res.Records))
	require.Len(t, res.Findings, 1)
	assert.Equal(t, inventory.ReasonBagSlot, res.Findings[0].Reason)
}

func TestParse_MissingName(t *testing.T) {
	res := tsv.Scan("Head\t \t1\t1\t0")
	assert.Empty(t, res.Records)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, inventory.ReasonMissingField, res.Findings[0].Reason)
	assert.Equal(t, "name", res.Findings[0].Detail)
}

func TestParse_AmmoStopsParsing(t *testing.T) {
	res := tsv.Scan("Head\tMask\nAmmo\tArrow\nChest\tPlate")
	assert.Equal(t, []string{"Mask", "Arrow"}, names(res.Records))
	require.Len(t, res.Findings, 1)
	assert.Equal(t, inventory.ReasonAfterAmmo, res.Findings[0].Reason)
	assert.Equal(t, 2, res.Findings[0].Line)

	inv := inventory.Resolve(res.Records)
	assert.Equal(t, "Mask", inv.Slot(inventory.SlotHead).Name)
	assert.Equal(t, "Arrow", inv.Slot(inventory.SlotAmmo).Name)
	assert.True(t, inv.Slot(inventory.SlotChest).IsEmpty())
}

func TestParse_AmmoFullLine(t *testing.T) {
	records := tsv.Parse(header + "\nAmmo\tBone Arrow\t8005\t40\t0\nChest\tPlate\t2\t1\t0")
	require.Len(t, records, 1)
	assert.Equal(t, 8005, records[0].ID)
	assert.Equal(t, 40, records[0].Count)
}

func TestParse_AmmoStopDisabled(t *testing.T) {
	res := tsv.Scan("Ammo\tArrow\nChest\tPlate", tsv.WithAmmoStop(false))
	assert.Equal(t, []string{"Arrow", "Plate"}, names(res.Records))
	assert.Empty(t, res.Findings)
}

func TestParse_AmmoPrefixIsExact(t *testing.T) {
	records := tsv.Parse("AmmoPouch\tQuiver\nChest\tPlate")
	assert.Equal(t, []string{"Quiver", "Plate"}, names(records))
}

func TestParse_CRLF(t *testing.T) {
	records := tsv.Parse(header + "\r\nHead\tMask\t1\t1\t0\r\n\r\n")
	require.Len(t, records, 1)
	assert.Equal(t, "Mask", records[0].Name)
	assert.Equal(t, 0, records[0].SlotsGranted)
}

func TestParse_QualityMarksDerived(t *testing.T) {
	records := tsv.Parse("Primary\tBlade (Legendary)\t1\t1\t0")
	require.Len(t, records, 1)
	assert.Equal(t, inventory.RarityLegendary, records[0].Rarity())
}

var locations = []string{"Head", "Chest", "Ear", "Ring", "Fingers", "General1-Slot2", "Cursor", "Primary"}

func genLine(t *rapid.T, i int) string {
	loc := rapid.SampledFrom(locations).Draw(t, "location")
	if rapid.Bool().Draw(t, "full") {
		return fmt.Sprintf("%s\tItem %d\t%d\t1\t0", loc, i, i+1)
	}
	return fmt.Sprintf("%s\tItem %d", loc, i)
}

func TestProperty_HeaderSkippedExactlyOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		lines := make([]string, n)
		for i := range lines {
			lines[i] = genLine(t, i)
		}
		body := strings.Join(lines, "\n")
		withHeader := tsv.Scan(header + "\n" + body)
		without := tsv.Scan(body)
		if !withHeader.Header || without.Header {
			t.Fatalf("header detection wrong: with=%v without=%v", withHeader.Header, without.Header)
		}
		if got, want := names(withHeader.Records), names(without.Records); !equal(got, want) {
			t.Fatalf("header changed records: %v vs %v", got, want)
		}
	})
}

func TestProperty_NothingAfterAmmo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := rapid.IntRange(0, 10).Draw(t, "before")
		after := rapid.IntRange(0, 10).Draw(t, "after")
		var lines []string
		for i := 0; i < before; i++ {
			lines = append(lines, strings.Replace(genLine(t, i), "Ammo", "Head", 1))
		}
		lines = append(lines, "Ammo\tArrow")
		for i := 0; i < after; i++ {
			lines = append(lines, genLine(t, before+1+i))
		}
		records := tsv.Parse(strings.Join(lines, "\n"))
		if len(records) == 0 || records[len(records)-1].Name != "Arrow" {
			t.Fatalf("Ammo must be the last record, got %v", names(records))
		}
		for _, r := range records {
			if r.Line > before+1 {
				t.Fatalf("record from line %d emitted after Ammo on line %d", r.Line, before+1)
			}
		}
	})
}

func TestProperty_NoBagSlotsEmitted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		lines := make([]string, n)
		for i := range lines {
			lines[i] = genLine(t, i)
		}
		for _, r := range tsv.Parse(strings.Join(lines, "\n")) {
			if !r.IsMainSlot() {
				t.Fatalf("bag slot emitted: %+v", r)
			}
			if r.Location == "" || r.Name == "" {
				t.Fatalf("incomplete record emitted: %+v", r)
			}
		}
	})
}

func names(records []inventory.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
