package clusterization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegionMap(t *testing.T) {
	m := NewRegionMap(
		RegionValue[int]{Region: "West US", Value: 1},
		RegionValue[int]{Region: "eastus", Value: 2},
		RegionValue[int]{Region: "WESTUS", Value: 3},
	)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"westus", "eastus"}, m.Keys())

	v, ok := m.Get("west us")
	assert.True(t, ok)
	assert.Equal(t, 3, v, "last value wins")

	assert.True(t, m.Has("East US"))
	assert.False(t, m.Has("northeurope"))
}

func TestRegionMap_ZeroValue(t *testing.T) {
	var m RegionMap[float64]

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
	_, ok := m.Get("eastus")
	assert.False(t, ok)

	for range m.All() {
		t.Fatal("zero map must not yield")
	}
}

func TestRegionMap_AllOrder(t *testing.T) {
	regions := []string{"c", "a", "b", "d"}
	pairs := make([]RegionValue[string], 0, len(regions))
	for _, r := range regions {
		pairs = append(pairs, RegionValue[string]{Region: r, Value: r})
	}
	m := NewRegionMap(pairs...)

	var got []string
	for k, v := range m.All() {
		assert.Equal(t, k, v)
		got = append(got, k)
	}
	assert.Equal(t, regions, got)

	// early break
	n := 0
	for range m.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestRegionMap_BuildIsDetached(t *testing.T) {
	b := newRegionMapBuilder[int]()
	b.set("eastus", 1)
	m := b.build()

	b.set("eastus", 5)
	b.set("westus", 2)

	v, _ := m.Get("eastus")
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, m.Len())

	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"eastus"}, m.Keys())
}

func TestRegionMapBuilder_Set(t *testing.T) {
	b := newRegionMapBuilder[int]()
	assert.False(t, b.set("East US", 1))
	assert.True(t, b.set("eastus", 2))

	v, ok := b.get("EASTUS")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
