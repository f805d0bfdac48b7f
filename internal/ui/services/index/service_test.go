package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(s string) string { return s }

func TestStaticFilterPreservesOrder(t *testing.T) {
	items := []string{"Strawberry", "Blueberry", "Banana", "Bilberry"}
	idx := NewStatic(items, ident)

	got := idx.SetQuery("bry")
	assert.Equal(t, []string{"Strawberry", "Blueberry", "Bilberry"}, got,
		"filter must be stable, not re-sorted by match quality")
}

func TestStaticEmptyQueryReturnsAllItems(t *testing.T) {
	items := []string{"b", "a", "c"}
	idx := NewStatic(items, ident)

	assert.Equal(t, items, idx.Results(), "fresh index exposes the full list")

	idx.SetQuery("a")
	got := idx.SetQuery("")
	assert.Equal(t, items, got, "clearing the query restores the unfiltered list")
}

func TestStaticMonotonicNarrowing(t *testing.T) {
	items := []string{"Window: Left Half", "Window: Right Half", "Preferences", "firefox"}
	idx := NewStatic(items, ident)

	broad := idx.SetQuery("wi")
	narrow := idx.SetQuery("wil")

	for _, item := range narrow {
		assert.Contains(t, broad, item, "every item matching the longer query matches its prefix")
	}
	assert.Less(t, len(narrow), len(broad)+1)
}

func TestStaticRefilterIsIdempotent(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "alabama"}
	idx := NewStatic(items, ident)

	first := idx.SetQuery("aa")
	second := idx.SetQuery("aa")
	assert.Equal(t, first, second)
}

func TestExternalStaleResponseDiscarded(t *testing.T) {
	idx := NewExternal(func(q string) []string { return []string{q} }, ident)

	oldSeq := idx.Begin("slow")
	newSeq := idx.Begin("fast")

	// The newer response lands first
	assert.True(t, idx.Apply(newSeq, []string{"fast result"}))
	assert.Equal(t, []string{"fast result"}, idx.Results())

	// The older, slower response must not overwrite it
	assert.False(t, idx.Apply(oldSeq, []string{"slow result"}))
	assert.Equal(t, []string{"fast result"}, idx.Results())
}

func TestExternalNilResponseStaysDefined(t *testing.T) {
	idx := NewExternal(func(q string) []string { return nil }, ident)

	seq := idx.Begin("q")
	assert.True(t, idx.Apply(seq, idx.Search("q")))
	assert.NotNil(t, idx.Results())
	assert.Empty(t, idx.Results())
}

func TestExternalMountPopulation(t *testing.T) {
	var calls []string
	idx := NewExternal(func(q string) []string {
		calls = append(calls, q)
		return []string{"initial"}
	}, ident)

	// Mount: one performSearch("") round trip
	seq := idx.Begin("")
	idx.Apply(seq, idx.Search(""))

	assert.Equal(t, []string{""}, calls)
	assert.Equal(t, []string{"initial"}, idx.Results())
}
