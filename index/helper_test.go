package index

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupAny(t *testing.T) {
	idx := newTestIndex(t, "red", e1, "red", e2, "green", e2, "green", e3)

	tests := []struct {
		name string
		keys []string
		want []element
	}{
		{"single key", []string{"red"}, []element{e1, e2}},
		{"union without duplicates", []string{"red", "green"}, []element{e1, e2, e3}},
		{"absent keys ignored", []string{"blue", "green"}, []element{e2, e3}},
		{"no keys", nil, nil},
		{"all absent", []string{"blue"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, LookupAny[string, element](idx, tt.keys...))
		})
	}
}

func TestLookupAll(t *testing.T) {
	idx := newTestIndex(t, "red", e1, "red", e2, "green", e2, "green", e3, "blue", e3)

	tests := []struct {
		name string
		keys []string
		want []element
	}{
		{"single key", []string{"red"}, []element{e1, e2}},
		{"intersection", []string{"red", "green"}, []element{e2}},
		{"disjoint", []string{"red", "blue"}, nil},
		{"absent key", []string{"red", "purple"}, nil},
		{"no keys", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, LookupAll[string, element](idx, tt.keys...))
		})
	}
}

func TestRebuild(t *testing.T) {
	idx := newTestIndex(t, "stale", e1)

	source := map[string]element{"a": e1, "b": e2, "c": e3}
	Rebuild[string, element](idx, maps.All(source))

	_, ok := idx.GetValue("stale")
	assert.False(t, ok)
	assert.Equal(t, 3, idx.CountOfKeys())
	assert.True(t, idx.Contains("b", e2))
}
