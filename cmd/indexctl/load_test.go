package main

import (
	"strings"
	"testing"

	"github.com/joshuapare/graphindex/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAssociations(t *testing.T) {
	idx := index.NewDictionaryIndex[string, string](index.Options{})

	n, err := readAssociations(strings.NewReader(sampleAssociations), idx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 4, idx.CountOfKeys())
	assert.Equal(t, 7, idx.CountOfValues())
	assert.True(t, idx.Contains("Berlin", "v3"))
}

func TestReadAssociations_CRLF(t *testing.T) {
	idx := index.NewDictionaryIndex[string, string](index.Options{})

	_, err := readAssociations(strings.NewReader("a\tv1\r\nb\tv2\r\n"), idx)
	require.NoError(t, err)
	assert.True(t, idx.Contains("a", "v1"))
	assert.True(t, idx.Contains("b", "v2"))
}

func TestReadAssociations_LongLines(t *testing.T) {
	t.Run("beyond default scanner buffer", func(t *testing.T) {
		idx := index.NewDictionaryIndex[string, string](index.Options{})
		key := strings.Repeat("k", 100<<10)

		n, err := readAssociations(strings.NewReader("a\tv1\n"+key+"\tv2\n"), idx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.True(t, idx.Contains(key, "v2"))
	})

	t.Run("beyond limit", func(t *testing.T) {
		idx := index.NewDictionaryIndex[string, string](index.Options{})
		key := strings.Repeat("k", maxLineLen+1)

		_, err := readAssociations(strings.NewReader("a\tv1\n"+key+"\tv2\n"), idx)
		require.ErrorIs(t, err, errMalformedLine)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestReadAssociations_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"missing tab", "a\tv1\nno separator\n", "line 2"},
		{"empty element", "a\t\n", "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := index.NewDictionaryIndex[string, string](index.Options{})
			_, err := readAssociations(strings.NewReader(tt.input), idx)
			require.ErrorIs(t, err, errMalformedLine)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadIndex(t *testing.T) {
	t.Cleanup(resetFlags)

	t.Run("dictionary", func(t *testing.T) {
		resetFlags()
		idx, err := loadIndex(writeFixture(t, sampleAssociations))
		require.NoError(t, err)
		assert.Equal(t, "DictionaryIndex", idx.Stats().Impl)
		assert.Equal(t, 4, idx.CountOfKeys())
	})

	t.Run("folded", func(t *testing.T) {
		resetFlags()
		foldKeys = true
		idx, err := loadIndex(writeFixture(t, sampleAssociations))
		require.NoError(t, err)
		assert.Equal(t, "FoldedIndex", idx.Stats().Impl)
		assert.Equal(t, 3, idx.CountOfKeys())
		assert.True(t, idx.Contains("BERLIN", "v3"))
	})

	t.Run("missing file", func(t *testing.T) {
		resetFlags()
		_, err := loadIndex("/nonexistent/assoc.tsv")
		assert.Error(t, err)
	})
}
