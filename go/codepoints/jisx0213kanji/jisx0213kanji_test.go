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

package jisx0213kanji

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptext/jiscodepoints/go/codepoints"
	"github.com/jptext/jiscodepoints/go/codepoints/jisx0208kanji"
)

func TestNew(t *testing.T) {
	kanji := New()
	assert.Equal(t, 10050, kanji.Len())
}

func TestSupersetOfJISX0208(t *testing.T) {
	// Levels 1 and 2 of JIS X 0213 are the JIS X 0208 kanji.
	assert.True(t, Cached().IsSupersetOf(jisx0208kanji.Cached()))
}

func TestContainsSupplementaryPlane(t *testing.T) {
	kanji := Cached()

	// 𠀋 (U+2000B) is a Level 3 kanji outside the BMP; it counts as a
	// single character for membership and positions.
	assert.True(t, kanji.ContainsRune(0x2000B))
	assert.True(t, kanji.Contains("𠀋"))
	assert.True(t, kanji.Contains("𠀋一"))

	excluded := kanji.AllExcluded("𠀋あ一")
	assert.Equal(t, []rune{0x3042}, excluded)
}

func TestContains(t *testing.T) {
	kanji := Cached()
	assert.True(t, kanji.Contains("亜愛安以伊位一乙王黄"))
	assert.False(t, kanji.Contains("ABC"))
	assert.False(t, kanji.Contains("あいうえお"))
}

func TestCachedIdentity(t *testing.T) {
	assert.Same(t, Cached(), Cached())
	assert.True(t, Cached().Equal(New()))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("𠀋一"))

	var verr *codepoints.ValidationError
	err := Validate("𠀋あ")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune(0x3042), verr.CodePoint)
	assert.Equal(t, 1, verr.Position)
}
