// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package clusterization

import (
	"iter"
	"slices"
)

// RegionMap is a read-only, insertion-ordered mapping keyed by normalized region.
// Values are produced by the component that owns the map and never change after
// it is returned. The zero value is an empty map.
type RegionMap[V any] struct {
	keys   []string
	values map[string]V
}

// Get returns the value for region and whether it is present.
// The lookup key is normalized first.
func (m RegionMap[V]) Get(region string) (V, bool) {
	v, ok := m.values[NormalizeRegion(region)]
	return v, ok
}

// Has reports whether region is present.
func (m RegionMap[V]) Has(region string) bool {
	_, ok := m.Get(region)
	return ok
}

// Len returns the number of regions.
func (m RegionMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns the regions in insertion order.
func (m RegionMap[V]) Keys() []string {
	return slices.Clone(m.keys)
}

// All iterates regions and values in insertion order.
func (m RegionMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// NewRegionMap builds a RegionMap from region/value pairs given in order.
// Later duplicates of a normalized region replace the value in place.
func NewRegionMap[V any](pairs ...RegionValue[V]) RegionMap[V] {
	b := newRegionMapBuilder[V]()
	for _, p := range pairs {
		b.set(p.Region, p.Value)
	}
	return b.build()
}

// RegionValue is a region/value pair used to construct a RegionMap.
type RegionValue[V any] struct {
	Region string
	Value  V
}

// regionMapBuilder accumulates a RegionMap. It is owned by a single component
// and discarded after build.
type regionMapBuilder[V any] struct {
	keys   []string
	values map[string]V
}

func newRegionMapBuilder[V any]() *regionMapBuilder[V] {
	return &regionMapBuilder[V]{values: make(map[string]V)}
}

// set stores v under the normalized region and reports whether a previous
// value was replaced. A replaced key keeps its original position.
func (b *regionMapBuilder[V]) set(region string, v V) bool {
	key := NormalizeRegion(region)
	_, replaced := b.values[key]
	if !replaced {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
	return replaced
}

func (b *regionMapBuilder[V]) get(region string) (V, bool) {
	v, ok := b.values[NormalizeRegion(region)]
	return v, ok
}

func (b *regionMapBuilder[V]) build() RegionMap[V] {
	m := RegionMap[V]{
		keys:   slices.Clone(b.keys),
		values: make(map[string]V, len(b.values)),
	}
	for k, v := range b.values {
		m.values[k] = v
	}
	return m
}
