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

package codepoints

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cp := New([]rune{0x3042, 0x3044})
	assert.Equal(t, 2, cp.Len())
	assert.False(t, cp.IsEmpty())

	// Duplicates collapse.
	dup := New([]rune{0x3042, 0x3044, 0x3042, 0x3044, 0x3042})
	assert.Equal(t, 2, dup.Len())

	empty := New(nil)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
}

func TestFromString(t *testing.T) {
	cp := FromString("あい")
	assert.Equal(t, 2, cp.Len())
	assert.True(t, cp.Contains("あ"))
	assert.True(t, cp.Contains("い"))

	dup := FromString("あいあい")
	assert.Equal(t, 2, dup.Len())

	// A supplementary-plane character contributes one code point, never
	// its surrogate halves.
	supp := FromString("𠀋")
	assert.Equal(t, 1, supp.Len())
	assert.True(t, supp.ContainsRune(0x2000B))
}

func TestContains(t *testing.T) {
	testCases := []struct {
		name  string
		set   []rune
		input string
		want  bool
	}{
		{"single member", []rune{0x3042, 0x3044}, "あ", true},
		{"all members", []rune{0x3042, 0x3044}, "あい", true},
		{"one excluded", []rune{0x3042, 0x3044}, "あいう", false},
		{"empty string", []rune{0x3042, 0x3044}, "", true},
		{"space not in set", []rune{0x3042, 0x3044}, " ", false},
		{"empty set empty string", nil, "", true},
		{"empty set nonempty string", nil, "a", false},
		{"supplementary member", []rune{0x2000B, 0x3042, 0x3044}, "𠀋あい", true},
		{"supplementary with excluded", []rune{0x2000B, 0x3042, 0x3044}, "𠀋あいか", false},
		{"supplementary not member", []rune{0x3042, 0x3044, 0x3046}, "𠀋あいうあ𠀋", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(tc.set).Contains(tc.input))
		})
	}
}

func TestContainsRune(t *testing.T) {
	cp := New([]rune{0x3042, 0x2000B})
	assert.True(t, cp.ContainsRune(0x3042))
	assert.True(t, cp.ContainsRune(0x2000B))
	assert.False(t, cp.ContainsRune(0x3044))
}

func TestFirstExcluded(t *testing.T) {
	cp := New([]rune{0x3042, 0x3044})

	_, ok := cp.FirstExcluded("あい")
	assert.False(t, ok)

	r, ok := cp.FirstExcluded("あいう")
	require.True(t, ok)
	assert.Equal(t, rune(0x3046), r)

	_, ok = cp.FirstExcluded("")
	assert.False(t, ok)
}

func TestFirstExcludedWithPosition(t *testing.T) {
	cp := New([]rune{0x3042, 0x3044})

	_, _, ok := cp.FirstExcludedWithPosition("あい")
	assert.False(t, ok)

	r, pos, ok := cp.FirstExcludedWithPosition("あいう")
	require.True(t, ok)
	assert.Equal(t, rune(0x3046), r)
	assert.Equal(t, 2, pos)
}

func TestFirstExcludedWithPositionCountsCharacters(t *testing.T) {
	// Positions count characters, not bytes or UTF-16 units: the leading
	// supplementary-plane character occupies a single position.
	cp := New([]rune{0x2000B, 0x3042, 0x3044})

	_, ok := cp.FirstExcluded("𠀋あい")
	assert.False(t, ok)

	r, pos, ok := cp.FirstExcludedWithPosition("𠀋あいう")
	require.True(t, ok)
	assert.Equal(t, rune(0x3046), r)
	assert.Equal(t, 3, pos)

	// And a non-member supplementary character reports itself.
	bmp := New([]rune{0x3042, 0x3044, 0x3046})
	r, pos, ok = bmp.FirstExcludedWithPosition("𠀋あいうかき")
	require.True(t, ok)
	assert.Equal(t, rune(0x2000B), r)
	assert.Equal(t, 0, pos)
}

func TestAllExcluded(t *testing.T) {
	testCases := []struct {
		name  string
		set   []rune
		input string
		want  []rune
	}{
		{"two excluded in order", []rune{0x3042, 0x3044}, "あいうえ", []rune{0x3046, 0x3048}},
		{"no exclusions", []rune{0x3042, 0x3044}, "あい", nil},
		{"empty input", []rune{0x3042, 0x3044}, "", nil},
		{
			"repeats collapse, first-occurrence order",
			[]rune{0x3042, 0x3044, 0x2000B},
			"𠀋あいうきかくか𠂟",
			[]rune{0x3046, 0x304D, 0x304B, 0x304F, 0x2009F},
		},
		{
			"supplementary excluded",
			[]rune{0x3042, 0x3044, 0x3046},
			"𠀋あいうきかくか𠂟",
			[]rune{0x2000B, 0x304D, 0x304B, 0x304F, 0x2009F},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(tc.set).AllExcluded(tc.input))
		})
	}
}

func TestUnion(t *testing.T) {
	a := New([]rune{0x3042, 0x3044})
	b := New([]rune{0x3044, 0x3046})

	u := a.Union(b)
	assert.Equal(t, 3, u.Len())
	assert.True(t, u.Contains("あいう"))

	// Operands untouched.
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())

	empty := New(nil)
	assert.True(t, a.Union(empty).Equal(a))
	assert.True(t, empty.Union(a).Equal(a))
}

func TestIntersection(t *testing.T) {
	a := New([]rune{0x3042, 0x3044})
	b := New([]rune{0x3044, 0x3046})

	i := a.Intersection(b)
	assert.Equal(t, 1, i.Len())
	assert.True(t, i.Contains("い"))
	assert.False(t, i.Contains("あ"))
	assert.False(t, i.Contains("う"))

	empty := New(nil)
	assert.True(t, a.Intersection(empty).IsEmpty())
	assert.True(t, empty.Intersection(a).IsEmpty())
}

func TestDifference(t *testing.T) {
	a := New([]rune{0x3042, 0x3044})
	b := New([]rune{0x3044, 0x3046})

	d := a.Difference(b)
	assert.Equal(t, 1, d.Len())
	assert.True(t, d.Contains("あ"))
	assert.False(t, d.Contains("い"))

	empty := New(nil)
	assert.True(t, a.Difference(empty).Equal(a))
	assert.True(t, empty.Difference(a).IsEmpty())
}

func TestSymmetricDifference(t *testing.T) {
	a := New([]rune{0x3042, 0x3044})
	b := New([]rune{0x3044, 0x3046})

	sd := a.SymmetricDifference(b)
	assert.Equal(t, 2, sd.Len())
	assert.True(t, sd.Contains("あ"))
	assert.True(t, sd.Contains("う"))
	assert.False(t, sd.Contains("い"))
}

func TestSetAlgebraLaws(t *testing.T) {
	sets := []*CodePoints{
		New(nil),
		New([]rune{0x3042}),
		New([]rune{0x3042, 0x3044, 0x3046}),
		New([]rune{0x3044, 0x3046, 0x30A2}),
		NewASCIIPrintable(),
	}
	for _, s := range sets {
		for _, u := range sets {
			assert.True(t, s.Union(u).IsSupersetOf(s))
			assert.True(t, s.Union(u).IsSupersetOf(u))
			assert.True(t, s.Intersection(u).IsSubsetOf(s))
			assert.True(t, s.Intersection(u).IsSubsetOf(u))
			assert.True(t, s.Difference(u).Intersection(u).IsEmpty())
			assert.True(t, s.SymmetricDifference(u).Equal(s.Union(u).Difference(s.Intersection(u))))
		}
		// Idempotence.
		assert.True(t, s.Union(s).Equal(s))
		assert.True(t, s.Intersection(s).Equal(s))
		// Inclusive subset/superset.
		assert.True(t, s.IsSubsetOf(s))
		assert.True(t, s.IsSupersetOf(s))
	}
}

func TestIsSubsetOf(t *testing.T) {
	small := New([]rune{0x3042, 0x3044})
	large := New([]rune{0x3042, 0x3044, 0x3046})

	assert.True(t, small.IsSubsetOf(large))
	assert.False(t, large.IsSubsetOf(small))
	assert.True(t, large.IsSupersetOf(small))
	assert.False(t, small.IsSupersetOf(large))

	disjoint := New([]rune{0x30A2})
	assert.False(t, disjoint.IsSubsetOf(large))
	assert.True(t, New(nil).IsSubsetOf(small))
}

func TestEqualAndHash(t *testing.T) {
	a := New([]rune{0x3042, 0x3044})
	b := New([]rune{0x3044, 0x3042, 0x3044}) // different order, duplicate
	c := New([]rune{0x3042, 0x3044, 0x3046})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())

	// Same values built through a different constructor hash equal too.
	assert.Equal(t, a.Hash(), FromString("いあ").Hash())
}

func TestSortedAndRunes(t *testing.T) {
	cp := New([]rune{0x3046, 0x3042, 0x3044})

	assert.Equal(t, []rune{0x3042, 0x3044, 0x3046}, cp.Sorted())

	runes := cp.Runes()
	slices.Sort(runes)
	assert.Equal(t, []rune{0x3042, 0x3044, 0x3046}, runes)

	var collected []rune
	for r := range cp.All() {
		collected = append(collected, r)
	}
	slices.Sort(collected)
	assert.Equal(t, []rune{0x3042, 0x3044, 0x3046}, collected)
}

func TestString(t *testing.T) {
	assert.Equal(t, "CodePoints(2 items)", New([]rune{0x3042, 0x3044}).String())
	assert.Equal(t, "CodePoints(0 items)", New(nil).String())
}

func TestASCIIControl(t *testing.T) {
	cp := NewASCIIControl()
	assert.Equal(t, 33, cp.Len())
	assert.True(t, cp.Contains("\n"))
	assert.True(t, cp.Contains("\r"))
	assert.True(t, cp.Contains("\t"))
	assert.True(t, cp.ContainsRune(0x7F))
	assert.False(t, cp.Contains("a"))
	assert.False(t, cp.Contains("あ"))
}

func TestASCIIPrintable(t *testing.T) {
	cp := NewASCIIPrintable()
	assert.Equal(t, 95, cp.Len())
	assert.True(t, cp.Contains("Hello"))
	assert.True(t, cp.Contains("123"))
	assert.True(t, cp.Contains("!@#$%"))
	assert.True(t, cp.Contains("Hello~"))
	assert.True(t, cp.Contains(`\100`))
	assert.False(t, cp.Contains("\n"))
	assert.False(t, cp.Contains("あ"))
	assert.False(t, cp.Contains("Hello‾")) // overline, JIS X 0201 only
	assert.False(t, cp.Contains("¥100"))   // yen sign, JIS X 0201 only
}

func TestCRLF(t *testing.T) {
	cp := NewCRLF()
	assert.Equal(t, 2, cp.Len())
	assert.True(t, cp.Contains("\r\n"))
	assert.False(t, cp.Contains("a"))
	assert.False(t, cp.Contains("\t"))
}

func TestASCIIAll(t *testing.T) {
	cp := NewASCIIAll()
	assert.Equal(t, 128, cp.Len())
	assert.True(t, cp.Contains("Hello"))
	assert.True(t, cp.Contains("\r\n"))
	assert.True(t, cp.Contains("123"))
	assert.False(t, cp.Contains("あ"))

	assert.True(t, cp.Equal(NewASCIIControl().Union(NewASCIIPrintable())))
}

func TestCachedAccessors(t *testing.T) {
	// Cached accessors keep a stable identity and agree with the
	// allocating constructors on value.
	assert.Same(t, ASCIIControl(), ASCIIControl())
	assert.Same(t, ASCIIPrintable(), ASCIIPrintable())
	assert.Same(t, CRLF(), CRLF())
	assert.Same(t, ASCIIAll(), ASCIIAll())

	assert.True(t, ASCIIControl().Equal(NewASCIIControl()))
	assert.True(t, ASCIIPrintable().Equal(NewASCIIPrintable()))
	assert.True(t, CRLF().Equal(NewCRLF()))
	assert.True(t, ASCIIAll().Equal(NewASCIIAll()))
}

func TestCachedAccessorsConcurrent(t *testing.T) {
	const goroutines = 16
	results := make([]*CodePoints, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = ASCIIPrintable()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Same(t, results[0], got)
	}
}
