package ecs

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// maxComponentKinds caps the number of distinct component keys a world can
// intern. It matches the bit capacity of mask.Mask as built here.
const maxComponentKinds = 64

// componentRegistry interns component keys to bit positions. Archetype
// membership and query matching then reduce to mask operations instead of
// string-set comparisons.
type componentRegistry struct {
	bits map[string]uint32
	keys []string
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{bits: make(map[string]uint32)}
}

// bitFor returns the bit assigned to key, interning it on first use.
func (r *componentRegistry) bitFor(key string) uint32 {
	if bit, ok := r.bits[key]; ok {
		return bit
	}
	bit := uint32(len(r.keys))
	if bit >= maxComponentKinds {
		panic(bark.AddTrace(fmt.Errorf("%w: %q would be component kind %d", ErrComponentLimit, key, bit+1)))
	}
	r.bits[key] = bit
	r.keys = append(r.keys, key)
	return bit
}

// lookup returns the bit for key without interning. The second result is
// false for keys no entity has ever carried.
func (r *componentRegistry) lookup(key string) (uint32, bool) {
	bit, ok := r.bits[key]
	return bit, ok
}

// maskFor builds a membership mask for keys, interning any new ones.
func (r *componentRegistry) maskFor(keys []string) mask.Mask {
	var m mask.Mask
	for _, key := range keys {
		m.Mark(r.bitFor(key))
	}
	return m
}

// maskLookup builds a mask over the known keys without interning, skipping
// keys no entity has ever carried. The second result is false if any key was
// unknown; a required set containing one can match nothing.
func (r *componentRegistry) maskLookup(keys []string) (mask.Mask, bool) {
	var m mask.Mask
	allKnown := true
	for _, key := range keys {
		bit, ok := r.bits[key]
		if !ok {
			allKnown = false
			continue
		}
		m.Mark(bit)
	}
	return m, allKnown
}
