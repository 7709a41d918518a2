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

package jisx0201

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptext/jiscodepoints/go/codepoints"
)

func TestKatakana(t *testing.T) {
	kata := NewKatakana()
	assert.Equal(t, 63, kata.Len())
	assert.True(t, kata.Contains("ｱｲｳｴｵ"))
	assert.True(t, kata.Contains("｡｢｣､･"))
	assert.False(t, kata.Contains("あいうえお")) // fullwidth hiragana
	assert.False(t, kata.Contains("アイウエオ")) // fullwidth katakana
	assert.False(t, kata.Contains("Hello"))
}

func TestLatinLetters(t *testing.T) {
	latin := NewLatinLetters()
	assert.Equal(t, 95, latin.Len())
	assert.True(t, latin.Contains("Hello"))
	assert.True(t, latin.Contains("¥100"))
	assert.True(t, latin.Contains("‾"))
	assert.False(t, latin.Contains("ｱｲｳｴｵ"))
	assert.False(t, latin.Contains("あいうえお"))
}

// The Latin letter set carries the yen sign in place of backslash and the
// overline in place of tilde, so the two ASCII characters they displace
// are not members.
func TestLatinLettersSubstitutions(t *testing.T) {
	latin := LatinLetters()
	assert.False(t, latin.ContainsRune(0x005C))
	assert.False(t, latin.ContainsRune(0x007E))
	assert.False(t, latin.Contains(`Hello\World`))
	assert.False(t, latin.Contains("~"))

	cp, ok := latin.FirstExcluded(`abc\`)
	assert.True(t, ok)
	assert.Equal(t, rune(0x005C), cp)

	assert.Error(t, ValidateLatinLetters(`\`))
	assert.Error(t, ValidateLatinLetters("~"))
}

func TestAll(t *testing.T) {
	all := NewAll()
	assert.True(t, all.Contains("Hello World"))
	assert.True(t, all.Contains("ｱｲｳｴｵ"))
	assert.True(t, all.Contains("¥｡｢｣､･"))
	assert.False(t, all.Contains("あ"))

	assert.True(t, all.Equal(NewLatinLetters().Union(NewKatakana())))
}

func TestCachedIdentity(t *testing.T) {
	assert.Same(t, Katakana(), Katakana())
	assert.Same(t, LatinLetters(), LatinLetters())
	assert.Same(t, All(), All())

	assert.True(t, Katakana().Equal(NewKatakana()))
	assert.True(t, LatinLetters().Equal(NewLatinLetters()))
	assert.True(t, All().Equal(NewAll()))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidateKatakana("ｱｲｳｴｵ"))
	assert.Error(t, ValidateKatakana("アイウエオ"))

	assert.NoError(t, ValidateLatinLetters("Hello¥"))

	var verr *codepoints.ValidationError
	err := ValidateLatinLetters("こんにちは")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune('こ'), verr.CodePoint)
	assert.Equal(t, 0, verr.Position)
}
