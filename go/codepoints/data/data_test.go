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

package data

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func runeRange(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

func distinct(table []rune) int {
	seen := make(map[rune]struct{}, len(table))
	for _, r := range table {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func TestASCIITables(t *testing.T) {
	assert.Len(t, ASCIIControl, 33)
	assert.Len(t, ASCIIPrintable, 95)
	assert.Len(t, CRLF, 2)

	want := append(runeRange(0x00, 0x1F), 0x7F)
	assert.Empty(t, cmp.Diff(want, ASCIIControl))
	assert.Empty(t, cmp.Diff(runeRange(0x20, 0x7E), ASCIIPrintable))
	assert.Equal(t, []rune{0x0A, 0x0D}, CRLF)

	// The merged table repeats CR and LF but covers exactly the 128
	// ASCII characters.
	assert.Len(t, AllASCII, 130)
	assert.Equal(t, 128, distinct(AllASCII))
}

func TestJISX0201Tables(t *testing.T) {
	// The Latin table substitutes the yen sign for backslash and the
	// overline for tilde, so backslash and tilde are not members.
	assert.Len(t, JISX0201LatinLetters, 95)
	wantLatin := runeRange(0x20, 0x7E)
	wantLatin[0x5C-0x20] = 0x00A5
	wantLatin[0x7E-0x20] = 0x203E
	assert.Empty(t, cmp.Diff(wantLatin, JISX0201LatinLetters))
	assert.NotContains(t, JISX0201LatinLetters, rune(0x005C))
	assert.NotContains(t, JISX0201LatinLetters, rune(0x007E))

	assert.Len(t, JISX0201Katakana, 63)
	assert.Empty(t, cmp.Diff(runeRange(0xFF61, 0xFF9F), JISX0201Katakana))

	assert.Len(t, AllJISX0201, 95+63)
	assert.Equal(t, 95+63, distinct(AllJISX0201))
}

func TestJISX0208Tables(t *testing.T) {
	assert.Len(t, JISX0208SpecialChars, 147)
	assert.Len(t, JISX0208LatinLetters, 62)
	assert.Len(t, JISX0208GreekLetters, 48)
	assert.Len(t, JISX0208CyrillicLetters, 66)
	assert.Len(t, JISX0208BoxDrawingChars, 32)

	assert.Empty(t, cmp.Diff(runeRange(0x3041, 0x3093), JISX0208Hiragana))
	assert.Empty(t, cmp.Diff(runeRange(0x30A1, 0x30F6), JISX0208Katakana))

	// Row 1 starts with the ideographic space; row 8 is the box drawing
	// block subset.
	assert.Equal(t, rune(0x3000), JISX0208SpecialChars[0])
	assert.True(t, slices.Contains(JISX0208BoxDrawingChars, rune(0x2500)))

	assert.Len(t, AllJISX0208, 524)
	assert.Equal(t, 524, distinct(AllJISX0208))
}

func TestKanjiTables(t *testing.T) {
	assert.Len(t, JISX0208Kanji, 6355)
	assert.Equal(t, 6355, distinct(JISX0208Kanji))

	assert.Len(t, JISX0213Kanji, 10050)
	assert.Equal(t, 10050, distinct(JISX0213Kanji))

	// Row 16 of JIS X 0208 starts at 亜.
	assert.Equal(t, rune(0x4E9C), JISX0208Kanji[0])
	assert.True(t, slices.Contains(JISX0208Kanji, rune(0x9EC4))) // 黄

	// JIS X 0213 Level 4 reaches outside the BMP.
	var supplementary int
	for _, r := range JISX0213Kanji {
		if r > 0xFFFF {
			supplementary++
		}
	}
	assert.Equal(t, 277, supplementary)
	assert.True(t, slices.Contains(JISX0213Kanji, rune(0x2000B))) // 𠀋
}
