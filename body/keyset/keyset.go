// Package keyset implements the checked-key set shared by the table body and
// its siblings. A Set is a value: every transition returns a new Set and
// leaves the receiver untouched, so a render pass can hold one without
// locking.
package keyset

import (
	"slices"
	"strings"

	"github.com/hnimtadd/datatable/body/node"
)

type Set struct {
	keys map[node.Key]struct{}
}

// New returns a set holding keys.
func New(keys ...node.Key) Set {
	s := Set{keys: make(map[node.Key]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// Has reports membership. The zero Set is empty.
func (s Set) Has(key node.Key) bool {
	_, ok := s.keys[key]
	return ok
}

func (s Set) Len() int {
	return len(s.keys)
}

// With returns a copy of s that also holds keys.
func (s Set) With(keys ...node.Key) Set {
	out := s.clone(len(keys))
	for _, k := range keys {
		out.keys[k] = struct{}{}
	}
	return out
}

// Without returns a copy of s with keys removed.
func (s Set) Without(keys ...node.Key) Set {
	out := s.clone(0)
	for _, k := range keys {
		delete(out.keys, k)
	}
	return out
}

// Filter returns the subset of s for which keep holds.
func (s Set) Filter(keep func(node.Key) bool) Set {
	out := Set{keys: make(map[node.Key]struct{}, len(s.keys))}
	for k := range s.keys {
		if keep(k) {
			out.keys[k] = struct{}{}
		}
	}
	return out
}

// Keys returns the members in ascending order.
func (s Set) Keys() []node.Key {
	keys := make([]node.Key, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s Set) Equal(other Set) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for k := range s.keys {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	keys := s.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s Set) clone(extra int) Set {
	out := Set{keys: make(map[node.Key]struct{}, len(s.keys)+extra)}
	for k := range s.keys {
		out.keys[k] = struct{}{}
	}
	return out
}
