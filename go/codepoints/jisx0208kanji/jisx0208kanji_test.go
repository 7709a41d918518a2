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

package jisx0208kanji

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptext/jiscodepoints/go/codepoints"
)

func TestNew(t *testing.T) {
	kanji := New()
	assert.Equal(t, 6355, kanji.Len())
}

func TestContainsCommonKanji(t *testing.T) {
	kanji := Cached()
	for _, r := range "亜愛安以伊位一乙王黄" {
		assert.True(t, kanji.ContainsRune(r), "U+%04X", r)
	}
}

func TestContainsLevel2Kanji(t *testing.T) {
	// The tail of row 84.
	kanji := Cached()
	for _, r := range []rune{0x582F, 0x69C7, 0x9059, 0x7464, 0x51DC, 0x7199} {
		assert.True(t, kanji.ContainsRune(r), "U+%04X", r)
	}
}

func TestContains(t *testing.T) {
	kanji := Cached()
	assert.True(t, kanji.Contains("亜愛安以伊位一乙王黄"))
	assert.False(t, kanji.Contains("ABC123"))
	assert.False(t, kanji.Contains("亜ABC愛"))
	assert.False(t, kanji.Contains("あいうえお"))
}

func TestCachedIdentity(t *testing.T) {
	assert.Same(t, Cached(), Cached())
	assert.True(t, Cached().Equal(New()))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("亜愛安"))

	var verr *codepoints.ValidationError
	err := Validate("亜ABC愛")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune('A'), verr.CodePoint)
	assert.Equal(t, 1, verr.Position)
}
