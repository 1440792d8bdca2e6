package importer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/invreader/internal/importer"
	"github.com/cory-johannsen/invreader/internal/importer/tsv"
	"github.com/cory-johannsen/invreader/internal/inventory"
)

const export = "Location\tName\tID\tCount\tSlots\n" +
	"Head\tCrown of the Froglok King\t12034\t1\t8\n" +
	"Ear\tSilver Stud\t100\t1\t0\n" +
	"Ear\tGold Stud (Enchanted)\t101\t1\t0\n" +
	"Ear\tThird Stud\t102\t1\t0\n" +
	"General1-Slot1\tBread\t13\t20\t0\n" +
	"Cursor\tSomething Held\t5\t1\t0\n" +
	"Ammo\tBone Arrow\t8005\t40\t0\n" +
	"Chest\tPlate\t2\t1\t0\n"

func writeExport(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Inventory.txt")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestImporter_ReadFile(t *testing.T) {
	imp := importer.New(importer.FileSource{})
	res, err := imp.ReadFile(writeExport(t, []byte(export)))
	require.NoError(t, err)

	inv := res.Inventory
	head := inv.Slot(inventory.SlotHead)
	assert.Equal(t, "Crown of the Froglok King", head.Name)
	assert.Equal(t, 12034, head.ID)
	assert.Equal(t, 1, head.Count)
	assert.False(t, head.IsEmpty())
	assert.Equal(t, inventory.ColorWhite, head.DisplayColor())
	assert.Equal(t, "Crown of the...", head.ShortName())

	assert.Equal(t, "Silver Stud", inv.Slot(inventory.SlotLeftEar).Name)
	assert.Equal(t, inventory.ColorPurple, inv.Slot(inventory.SlotRightEar).DisplayColor())
	assert.Equal(t, "Bone Arrow", inv.Slot(inventory.SlotAmmo).Name)
	assert.True(t, inv.Slot(inventory.SlotChest).IsEmpty())
	assert.Len(t, inv.Items, 4)

	counts := inventory.CountByReason(res.Findings)
	assert.Equal(t, 1, counts[inventory.ReasonBagSlot])
	assert.Equal(t, 1, counts[inventory.ReasonSlotOverflow])
	assert.Equal(t, 1, counts[inventory.ReasonUnknownLocation])
	assert.Equal(t, 1, counts[inventory.ReasonAfterAmmo])
	assert.True(t, res.Header)
	assert.NotEmpty(t, res.LoadID)
}

func TestImporter_ReadFile_Missing(t *testing.T) {
	imp := importer.New(importer.FileSource{})
	_, err := imp.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, importer.ErrInputUnavailable))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestImporter_ReadFile_UTF16(t *testing.T) {
	text := "Head\tMask\t1\t1\t0"
	data := []byte{0xFF, 0xFE}
	for _, r := range text {
		data = append(data, byte(r), 0)
	}
	res, err := importer.New(importer.FileSource{}).ReadFile(writeExport(t, data))
	require.NoError(t, err)
	assert.Equal(t, "Mask", res.Inventory.Slot(inventory.SlotHead).Name)
}

func TestImporter_ReadString_Empty(t *testing.T) {
	res := importer.New(importer.FileSource{}).ReadString("")
	require.NotNil(t, res.Inventory)
	assert.Equal(t, 0, res.Inventory.Equipped())
	assert.Empty(t, res.Inventory.Items)
	assert.Empty(t, res.Findings)
}

func TestImporter_Options(t *testing.T) {
	imp := importer.New(importer.FileSource{},
		importer.WithParseOptions(tsv.WithAmmoStop(false), tsv.WithPartialCount(0)),
		importer.WithResolver(inventory.NewResolver(inventory.WithAlias("Cursor", inventory.CategoryCharm))),
	)
	res := imp.ReadString("Ammo\tArrow\nCursor\tTrinket\t7\t1\t0\nHead\tMask")
	inv := res.Inventory
	assert.Equal(t, "Trinket", inv.Slot(inventory.SlotCharm).Name)
	assert.Equal(t, "Mask", inv.Slot(inventory.SlotHead).Name)
	assert.True(t, inv.Slot(inventory.SlotHead).IsEmpty())
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Trinket", inv.Items[0].Name)
}

func TestImporter_LogsLoad(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	imp := importer.New(importer.FileSource{}, importer.WithLogger(zap.New(core)))
	res := imp.ReadString("Head\tMask")

	entries := logs.FilterMessage("export loaded").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, res.LoadID, fields["load_id"])
	assert.Equal(t, int64(1), fields["items"])
}

type failingSource struct{}

func (failingSource) Load(string) ([]byte, error) {
	return nil, importer.ErrInputUnavailable
}

func TestImporter_CustomSourceFailure(t *testing.T) {
	_, err := importer.New(failingSource{}).ReadFile("anything")
	assert.ErrorIs(t, err, importer.ErrInputUnavailable)
}
