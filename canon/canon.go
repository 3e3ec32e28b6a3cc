// Package canon provides the deterministic text encoding and
// content-addressing layer. Associative-map and set-valued fields encode
// through a discriminator tag into sorted array form, so structurally
// equal values always produce identical bytes and therefore identical
// fingerprints, regardless of key insertion order.
//
// The fingerprint is FNV-1a over the canonical bytes: an identifier for
// deduplication and cache keys, with no cryptographic guarantees.
package canon

import (
	"cmp"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"slices"
)

// Set is a set-valued field. It encodes as {"_t":"set","v":[...]} with the
// members sorted.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet builds a Set from its members.
func NewSet[T cmp.Ordered](members ...T) Set[T] {
	s := make(Set[T], len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Add inserts a member.
func (s Set[T]) Add(member T) { s[member] = struct{}{} }

// Has reports membership.
func (s Set[T]) Has(member T) bool {
	_, ok := s[member]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

type taggedSet[T cmp.Ordered] struct {
	T string `json:"_t"`
	V []T    `json:"v"`
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedSet[T]{T: "set", V: s.Sorted()})
}

func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var tagged taggedSet[T]
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if tagged.T != "set" {
		return fmt.Errorf("expected set discriminator, got %q", tagged.T)
	}
	*s = NewSet(tagged.V...)
	return nil
}

// Dict is a label-keyed associative map, the shape of board-content
// fields. It encodes as {"_t":"map","e":[[key,value],...]} with entries
// sorted by key.
type Dict[V any] map[string]V

type taggedDict struct {
	T string            `json:"_t"`
	E []json.RawMessage `json:"e"`
}

func (d Dict[V]) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	entries := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		entry, err := json.Marshal([2]any{k, d[k]})
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return json.Marshal(taggedDict{T: "map", E: entries})
}

func (d *Dict[V]) UnmarshalJSON(data []byte) error {
	var tagged taggedDict
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if tagged.T != "map" {
		return fmt.Errorf("expected map discriminator, got %q", tagged.T)
	}
	out := make(Dict[V], len(tagged.E))
	for _, raw := range tagged.E {
		var pair [2]json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return err
		}
		var k string
		if err := json.Unmarshal(pair[0], &k); err != nil {
			return err
		}
		var v V
		if err := json.Unmarshal(pair[1], &v); err != nil {
			return err
		}
		out[k] = v
	}
	*d = out
	return nil
}

// Marshal encodes a value canonically. Plain scalars, slices and structs
// pass through unchanged; map keys are emitted in sorted order.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes canonical bytes back into a value.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Fingerprint returns the FNV-1a 64-bit hash of a value's canonical
// encoding as a fixed-width hex string.
func Fingerprint(v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
