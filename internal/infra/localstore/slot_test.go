package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestSlot_MissingFileReadsEmpty(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "missing.json"))

	var items []entry
	require.NoError(t, slot.Read(&items))
	assert.Empty(t, items)
}

func TestSlot_WriteThenRead(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "nested", "dir", "slot.json"))

	want := []entry{
		{ID: "a", Title: "Skyline Residence"},
		{ID: "b", Title: "Innovation Center"},
	}
	require.NoError(t, slot.Write(want))

	var got []entry
	require.NoError(t, slot.Read(&got))
	assert.Equal(t, want, got)
}

func TestSlot_WriteReplacesWhole(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "slot.json"))

	require.NoError(t, slot.Write([]entry{{ID: "a"}, {ID: "b"}, {ID: "c"}}))
	require.NoError(t, slot.Write([]entry{{ID: "z"}}))

	var got []entry
	require.NoError(t, slot.Read(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "z", got[0].ID)
}
