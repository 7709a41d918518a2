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

package jisx0208

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptext/jiscodepoints/go/codepoints"
)

func TestHiragana(t *testing.T) {
	hira := NewHiragana()
	assert.Equal(t, 83, hira.Len())
	assert.True(t, hira.Contains("あいうえお"))
	assert.True(t, hira.Contains("かきくけこ"))
	assert.True(t, hira.Contains("んゃゅょっ"))
	assert.False(t, hira.Contains("アイウエオ"))
	assert.False(t, hira.Contains("Hello"))
}

func TestKatakana(t *testing.T) {
	kata := NewKatakana()
	assert.Equal(t, 86, kata.Len())
	assert.True(t, kata.Contains("アイウエオ"))
	assert.True(t, kata.Contains("カキクケコ"))
	assert.True(t, kata.Contains("ヵヶ"))
	assert.False(t, kata.Contains("あいうえお"))
	assert.False(t, kata.Contains("ｱｲｳｴｵ")) // halfwidth
}

func TestLatinLetters(t *testing.T) {
	latin := NewLatinLetters()
	assert.Equal(t, 62, latin.Len())
	assert.True(t, latin.Contains("ＡＢＣ"))
	assert.True(t, latin.Contains("ａｂｃ"))
	assert.True(t, latin.Contains("０１２"))
	assert.False(t, latin.Contains("ABC")) // halfwidth
}

func TestGreekLetters(t *testing.T) {
	greek := NewGreekLetters()
	assert.Equal(t, 48, greek.Len())
	assert.True(t, greek.Contains("ΑΒΓ"))
	assert.True(t, greek.Contains("αβγ"))
	assert.False(t, greek.Contains("ABC"))
}

func TestCyrillicLetters(t *testing.T) {
	cyr := NewCyrillicLetters()
	assert.Equal(t, 66, cyr.Len())
	assert.True(t, cyr.Contains("АБВ"))
	assert.True(t, cyr.Contains("абв"))
	assert.True(t, cyr.Contains("Ёё"))
	assert.False(t, cyr.Contains("ABC"))
}

func TestSpecialChars(t *testing.T) {
	special := NewSpecialChars()
	assert.Equal(t, 147, special.Len())
	assert.True(t, special.Contains("、。・「」"))
	assert.True(t, special.Contains("　")) // ideographic space
	assert.False(t, special.Contains("あ"))
}

func TestBoxDrawingChars(t *testing.T) {
	box := NewBoxDrawingChars()
	assert.Equal(t, 32, box.Len())
	assert.True(t, box.Contains("─│┌┐"))
	assert.False(t, box.Contains("-|"))
}

func TestAll(t *testing.T) {
	all := NewAll()
	assert.Equal(t, 524, all.Len())
	assert.True(t, all.Contains("あア１ΓД─、"))
	assert.False(t, all.Contains("漢")) // kanji live in jisx0208kanji
	assert.False(t, all.Contains("ｱ"))  // halfwidth is JIS X 0201

	for _, sub := range []*codepoints.CodePoints{
		Hiragana(), Katakana(), LatinLetters(), GreekLetters(),
		CyrillicLetters(), SpecialChars(), BoxDrawingChars(),
	} {
		assert.True(t, sub.IsSubsetOf(all))
	}
}

func TestCachedIdentity(t *testing.T) {
	assert.Same(t, Hiragana(), Hiragana())
	assert.Same(t, Katakana(), Katakana())
	assert.Same(t, LatinLetters(), LatinLetters())
	assert.Same(t, GreekLetters(), GreekLetters())
	assert.Same(t, CyrillicLetters(), CyrillicLetters())
	assert.Same(t, SpecialChars(), SpecialChars())
	assert.Same(t, BoxDrawingChars(), BoxDrawingChars())
	assert.Same(t, All(), All())

	assert.True(t, Hiragana().Equal(NewHiragana()))
	assert.True(t, All().Equal(NewAll()))
}

func TestValidateHiragana(t *testing.T) {
	assert.NoError(t, ValidateHiragana("あいうえお"))

	var verr *codepoints.ValidationError
	err := ValidateHiragana("Hello")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune('H'), verr.CodePoint)
	assert.Equal(t, 0, verr.Position)
}

func TestValidateKatakana(t *testing.T) {
	assert.NoError(t, ValidateKatakana("アイウエオ"))
	assert.Error(t, ValidateKatakana("あいうえお"))
}

func TestValidateKana(t *testing.T) {
	assert.NoError(t, ValidateKana("あいアイ"))
	assert.NoError(t, ValidateKana("あいうえお"))
	assert.NoError(t, ValidateKana(""))

	var verr *codepoints.ValidationError
	err := ValidateKana("あいHello")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune('H'), verr.CodePoint)
	assert.Equal(t, 2, verr.Position)
}

func TestValidateMixed(t *testing.T) {
	assert.NoError(t, ValidateMixed("こんにちはHello"))
	assert.NoError(t, ValidateMixed("カタカナとhiragana"))

	// Kanji belong to neither kana nor ASCII printable.
	var verr *codepoints.ValidationError
	err := ValidateMixed("漢字")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune('漢'), verr.CodePoint)
	assert.Equal(t, 0, verr.Position)
}
