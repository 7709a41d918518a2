/*
Copyright 2025 The JPText Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package codepoints implements sets of Unicode code points and membership
// validation of strings against them, with pre-built sets for the character
// repertoires of the Japanese text-encoding standards (ASCII, JIS X 0201,
// JIS X 0208 and the JIS X 0208/0213 kanji planes).
package codepoints

import (
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// CodePoints is an immutable set of Unicode code points. Membership is
// exact identity: no range folding, no case folding. The zero value is not
// usable; construct instances with New or FromString.
//
// Set operations always allocate a new CodePoints and never mutate their
// operands, so instances are safe to share between goroutines.
type CodePoints struct {
	points map[rune]struct{}
}

// New builds a CodePoints from a slice of code points. Duplicates are
// collapsed and input order is irrelevant.
func New(points []rune) *CodePoints {
	set := make(map[rune]struct{}, len(points))
	for _, r := range points {
		set[r] = struct{}{}
	}
	return &CodePoints{points: set}
}

// FromString builds a CodePoints from every distinct code point in s.
// Characters outside the Basic Multilingual Plane contribute a single
// code point, never their UTF-16 surrogate halves.
func FromString(s string) *CodePoints {
	set := make(map[rune]struct{})
	for _, r := range s {
		set[r] = struct{}{}
	}
	return &CodePoints{points: set}
}

// ContainsRune reports whether the single code point r is a member.
func (cp *CodePoints) ContainsRune(r rune) bool {
	_, ok := cp.points[r]
	return ok
}

// Contains reports whether every code point in s is a member. The empty
// string is vacuously contained in any set, including the empty set.
func (cp *CodePoints) Contains(s string) bool {
	for _, r := range s {
		if !cp.ContainsRune(r) {
			return false
		}
	}
	return true
}

// FirstExcludedWithPosition scans s left to right and returns the first
// code point that is not a member together with its zero-based character
// index (counting characters, not bytes). The boolean result is false if
// every code point is a member.
func (cp *CodePoints) FirstExcludedWithPosition(s string) (rune, int, bool) {
	var idx int
	for _, r := range s {
		if !cp.ContainsRune(r) {
			return r, idx, true
		}
		idx++
	}
	return 0, 0, false
}

// FirstExcluded is FirstExcludedWithPosition with the position discarded.
func (cp *CodePoints) FirstExcluded(s string) (rune, bool) {
	r, _, ok := cp.FirstExcludedWithPosition(s)
	return r, ok
}

// AllExcluded returns every distinct code point of s that is not a member,
// in first-occurrence order. Repeat occurrences contribute a single entry.
// The result is empty when s is empty or fully contained.
func (cp *CodePoints) AllExcluded(s string) []rune {
	var excluded []rune
	seen := make(map[rune]struct{})
	for _, r := range s {
		if cp.ContainsRune(r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		excluded = append(excluded, r)
	}
	return excluded
}

// Union returns a new set with every code point of cp and other.
func (cp *CodePoints) Union(other *CodePoints) *CodePoints {
	set := make(map[rune]struct{}, len(cp.points)+len(other.points))
	maps.Copy(set, cp.points)
	maps.Copy(set, other.points)
	return &CodePoints{points: set}
}

// Intersection returns a new set with the code points present in both cp
// and other.
func (cp *CodePoints) Intersection(other *CodePoints) *CodePoints {
	small, large := cp.points, other.points
	if len(large) < len(small) {
		small, large = large, small
	}
	set := make(map[rune]struct{})
	for r := range small {
		if _, ok := large[r]; ok {
			set[r] = struct{}{}
		}
	}
	return &CodePoints{points: set}
}

// Difference returns a new set with the code points of cp that are not in
// other.
func (cp *CodePoints) Difference(other *CodePoints) *CodePoints {
	set := make(map[rune]struct{})
	for r := range cp.points {
		if _, ok := other.points[r]; !ok {
			set[r] = struct{}{}
		}
	}
	return &CodePoints{points: set}
}

// SymmetricDifference returns a new set with the code points present in
// exactly one of cp and other.
func (cp *CodePoints) SymmetricDifference(other *CodePoints) *CodePoints {
	set := make(map[rune]struct{})
	for r := range cp.points {
		if _, ok := other.points[r]; !ok {
			set[r] = struct{}{}
		}
	}
	for r := range other.points {
		if _, ok := cp.points[r]; !ok {
			set[r] = struct{}{}
		}
	}
	return &CodePoints{points: set}
}

// IsSubsetOf reports whether every code point of cp is in other. A set is
// a subset of itself.
func (cp *CodePoints) IsSubsetOf(other *CodePoints) bool {
	if len(cp.points) > len(other.points) {
		return false
	}
	for r := range cp.points {
		if _, ok := other.points[r]; !ok {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every code point of other is in cp.
func (cp *CodePoints) IsSupersetOf(other *CodePoints) bool {
	return other.IsSubsetOf(cp)
}

// Len returns the number of code points in the set.
func (cp *CodePoints) Len() int {
	return len(cp.points)
}

// IsEmpty reports whether the set has no code points.
func (cp *CodePoints) IsEmpty() bool {
	return len(cp.points) == 0
}

// All iterates over the code points in no particular order.
func (cp *CodePoints) All() iter.Seq[rune] {
	return maps.Keys(cp.points)
}

// Runes returns the code points as a slice in no particular order.
func (cp *CodePoints) Runes() []rune {
	return slices.Collect(maps.Keys(cp.points))
}

// Sorted returns the code points in ascending order. This is the canonical
// view used for hashing.
func (cp *CodePoints) Sorted() []rune {
	runes := cp.Runes()
	slices.Sort(runes)
	return runes
}

// Equal reports whether cp and other contain exactly the same code points.
func (cp *CodePoints) Equal(other *CodePoints) bool {
	if len(cp.points) != len(other.points) {
		return false
	}
	for r := range cp.points {
		if _, ok := other.points[r]; !ok {
			return false
		}
	}
	return true
}

// Hash returns an order-independent hash of the set: equal sets hash
// equally regardless of how the backing storage iterates. The sorted code
// points are folded through xxhash as big-endian 32-bit values.
func (cp *CodePoints) Hash() uint64 {
	h := xxhash.New()
	var buf [4]byte
	for _, r := range cp.Sorted() {
		binary.BigEndian.PutUint32(buf[:], uint32(r))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (cp *CodePoints) String() string {
	return fmt.Sprintf("CodePoints(%d items)", len(cp.points))
}
