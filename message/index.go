package message

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Index is an inverted index over the metadata of a message collection.
//
// For each tracked key it records the distinct values in first-observation
// order, plus a posting list (Roaring Bitmap of message ordinals) per value
// for constraint-based selection. Absent and null values contribute nothing:
// a key never observed with a concrete value has an empty Values slice.
//
// An Index is built once and read-only afterwards.
type Index struct {
	keys    []string
	msgs    []*Message
	values  map[string][]Value
	posting map[string]map[string]*roaring.Bitmap
}

// NewIndex scans msgs once and builds an index over the given keys.
// The key order is preserved and reported by Keys.
func NewIndex(msgs []*Message, keys []string) *Index {
	ix := &Index{
		keys:    append([]string(nil), keys...),
		msgs:    msgs,
		values:  make(map[string][]Value, len(keys)),
		posting: make(map[string]map[string]*roaring.Bitmap, len(keys)),
	}
	for _, key := range ix.keys {
		ix.posting[key] = make(map[string]*roaring.Bitmap)
	}
	for ord, m := range msgs {
		for _, key := range ix.keys {
			v, ok := m.Get(key)
			if !ok || v.IsNull() {
				continue
			}
			vk := v.Key()
			bm, ok := ix.posting[key][vk]
			if !ok {
				bm = roaring.New()
				ix.posting[key][vk] = bm
				ix.values[key] = append(ix.values[key], v)
			}
			bm.Add(uint32(ord))
		}
	}
	return ix
}

// Keys returns the tracked keys in the order given to NewIndex.
func (ix *Index) Keys() []string {
	return ix.keys
}

// Len returns the number of indexed messages.
func (ix *Index) Len() int {
	return len(ix.msgs)
}

// Has reports whether key is tracked and was observed with at least one
// concrete value.
func (ix *Index) Has(key string) bool {
	return len(ix.values[key]) > 0
}

// Values returns the distinct values observed for key, in first-observation
// order. It returns nil for untracked or never-observed keys.
// The returned slice is shared; callers must not modify it.
func (ix *Index) Values(key string) []Value {
	return ix.values[key]
}

// Select returns the messages matching every key=value constraint, in
// message order. Constraints on untracked keys or unseen values match
// nothing. With no constraints it returns all indexed messages.
func (ix *Index) Select(constraints map[string]Value) []*Message {
	var acc *roaring.Bitmap
	for key, want := range constraints {
		bm := ix.posting[key][want.Key()]
		if bm == nil {
			return nil
		}
		if acc == nil {
			acc = bm.Clone()
		} else {
			acc.And(bm)
		}
	}
	if acc == nil {
		return append([]*Message(nil), ix.msgs...)
	}
	out := make([]*Message, 0, acc.GetCardinality())
	it := acc.Iterator()
	for it.HasNext() {
		out = append(out, ix.msgs[it.Next()])
	}
	return out
}
