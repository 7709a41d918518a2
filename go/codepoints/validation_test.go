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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(0x3046, 2)
	assert.Equal(t, rune(0x3046), err.CodePoint)
	assert.Equal(t, 2, err.Position)
	assert.Equal(t, "invalid character 'う' (U+3046) at position 2", err.Error())

	// Hex is zero-padded to at least four digits.
	assert.Equal(t, "invalid character 'A' (U+0041) at position 0", NewValidationError(0x41, 0).Error())

	// Supplementary-plane code points print all their digits.
	assert.Contains(t, NewValidationError(0x2000B, 1).Error(), "U+2000B")
}

func TestValidationErrorInvalidScalar(t *testing.T) {
	// A surrogate code point is not a valid scalar value; the message
	// renders the replacement character but keeps the real code point.
	err := NewValidationError(0xD800, 3)
	assert.Equal(t, rune(0xD800), err.CodePoint)
	assert.Equal(t, "invalid character '�' (U+D800) at position 3", err.Error())
}

func TestValidationErrorCustomMessage(t *testing.T) {
	err := NewValidationErrorMessage(0x41, 0, "only kana allowed")
	assert.Equal(t, "only kana allowed", err.Error())
	assert.Equal(t, rune(0x41), err.CodePoint)
	assert.Equal(t, 0, err.Position)
}

func TestValidate(t *testing.T) {
	printable := ASCIIPrintable()

	assert.NoError(t, printable.Validate("Hello World!"))
	assert.NoError(t, printable.Validate(""))
	assert.Error(t, printable.Validate("Hello\n"))

	err := printable.Validate("Hello\x00World")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune(0), verr.CodePoint)
	assert.Equal(t, 5, verr.Position)
	assert.Contains(t, verr.Error(), "U+0000")
	assert.Contains(t, verr.Error(), "position 5")
}

func TestValidatePositionIsCharacterIndex(t *testing.T) {
	cp := New([]rune{0x2000B, 0x3042})

	var verr *ValidationError
	err := cp.Validate("𠀋あい")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune(0x3044), verr.CodePoint)
	assert.Equal(t, 2, verr.Position)
}

func TestContainsAllInAny(t *testing.T) {
	hiragana := New([]rune{0x3042, 0x3044, 0x3046})
	katakana := New([]rune{0x30A2, 0x30A4, 0x30A6})
	ascii := NewASCIIPrintable()

	// Empty set list is always false, including for empty text.
	assert.False(t, ContainsAllInAny("test", nil))
	assert.False(t, ContainsAllInAny("any", []*CodePoints{}))
	assert.False(t, ContainsAllInAny("", nil))

	// Single set.
	assert.True(t, ContainsAllInAny("あい", []*CodePoints{hiragana}))
	assert.True(t, ContainsAllInAny("アイ", []*CodePoints{katakana}))

	// Characters spread across sets.
	kana := []*CodePoints{hiragana, katakana}
	assert.True(t, ContainsAllInAny("あア", kana))
	assert.True(t, ContainsAllInAny("いイ", kana))
	assert.False(t, ContainsAllInAny("xyz", kana))
	assert.False(t, ContainsAllInAny("あアx", kana))

	// Three sets.
	three := []*CodePoints{hiragana, katakana, ascii}
	assert.True(t, ContainsAllInAny("あアA", three))
	assert.True(t, ContainsAllInAny("Hello", three))
	assert.False(t, ContainsAllInAny("あアAπ", three))

	// Empty text against a non-empty set list.
	assert.True(t, ContainsAllInAny("", three))
}

func TestContainsAllInAnyOverlappingSets(t *testing.T) {
	a := New([]rune{0x3042})
	b := New([]rune{0x3044})
	c := New([]rune{0x3042, 0x3046})
	sets := []*CodePoints{a, b, c}

	assert.True(t, ContainsAllInAny("あ", sets))
	assert.True(t, ContainsAllInAny("い", sets))
	assert.True(t, ContainsAllInAny("う", sets))
	assert.False(t, ContainsAllInAny("え", sets))
}

func TestValidateAllInAny(t *testing.T) {
	hiragana := New([]rune{0x3042, 0x3044})
	katakana := New([]rune{0x30A2, 0x30A4})

	assert.NoError(t, ValidateAllInAny("あア", []*CodePoints{hiragana, katakana}))
	assert.NoError(t, ValidateAllInAny("あい", []*CodePoints{hiragana}))
	assert.NoError(t, ValidateAllInAny("", []*CodePoints{hiragana}))

	var verr *ValidationError
	err := ValidateAllInAny("あx", []*CodePoints{hiragana, katakana})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune('x'), verr.CodePoint)
	assert.Equal(t, 1, verr.Position)
}

func TestValidateAllInAnyEmptySets(t *testing.T) {
	// Empty text validates even against an empty set list; non-empty
	// text fails on its first character. (The boolean ContainsAllInAny
	// rejects an empty set list outright instead.)
	assert.NoError(t, ValidateAllInAny("", nil))

	var verr *ValidationError
	err := ValidateAllInAny("a", nil)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune('a'), verr.CodePoint)
	assert.Equal(t, 0, verr.Position)
}

func TestValidateAllInAnyThreeSets(t *testing.T) {
	hiragana := New([]rune{0x3042})
	katakana := New([]rune{0x30A2})
	ascii := ASCIIPrintable()
	sets := []*CodePoints{hiragana, katakana, ascii}

	assert.NoError(t, ValidateAllInAny("あアA", sets))

	var verr *ValidationError
	err := ValidateAllInAny("あアAπ", sets)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, rune(0x03C0), verr.CodePoint)
	assert.Equal(t, 3, verr.Position)
}
