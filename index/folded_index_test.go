package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower", "system", "system"},
		{"upper", "SYSTEM", "system"},
		{"sharp s", "Straße", "strasse"},
		{"decomposed accent", "Cafe\u0301", "caf\u00e9"},
		{"precomposed accent", "CAF\u00c9", "caf\u00e9"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldKey(tt.in))
		})
	}
}

func TestFoldedIndex_CaseInsensitive(t *testing.T) {
	idx := NewFoldedIndex[element](Options{})

	idx.AddOrUpdate("Straße", e1)
	idx.AddOrUpdate("STRASSE", e2)
	idx.AddOrUpdate("strasse", e1)

	assert.Equal(t, 1, idx.CountOfKeys())
	assert.Equal(t, 2, idx.CountOfValues())
	assert.Equal(t, []string{"strasse"}, idx.GetKeys())

	elems, ok := idx.GetValue("StRaSsE")
	require.True(t, ok)
	assert.ElementsMatch(t, []element{e1, e2}, elems)

	assert.True(t, idx.Contains("STRAßE", e2))
	assert.True(t, idx.TryRemoveKey("Strasse"))
	assert.Equal(t, 0, idx.CountOfKeys())
}

func TestFoldedIndex_Lifecycle(t *testing.T) {
	idx := NewFoldedIndex[element](Options{})
	idx.AddOrUpdate("Berlin", e1)
	idx.AddOrUpdate("Paris", e1)
	idx.AddOrUpdate("Paris", e2)

	idx.RemoveValue(e1)
	_, ok := idx.GetValue("BERLIN")
	assert.False(t, ok)

	for key, elems := range idx.GetKeyValues() {
		assert.Equal(t, "paris", key)
		assert.Equal(t, []element{e2}, elems)
	}

	stats := idx.Stats()
	assert.Equal(t, "FoldedIndex", stats.Impl)
	assert.Equal(t, 1, stats.Keys)

	idx.Wipe()
	assert.Equal(t, 0, idx.CountOfValues())

	idx.AddOrUpdate("x", e3)
	idx.Initialize(Options{})
	assert.Equal(t, 0, idx.CountOfKeys())

	assert.Equal(t, "FoldedIndex", idx.Description().Name)
	assert.Equal(t, CapabilityIndex, idx.Description().Capability)
}
