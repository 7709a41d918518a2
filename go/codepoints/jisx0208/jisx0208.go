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

// Package jisx0208 exposes the non-kanji JIS X 0208 character sets:
// hiragana, katakana, fullwidth Latin, Greek and Cyrillic letters, special
// characters and box drawing characters. Kanji live in the jisx0208kanji
// package.
package jisx0208

import (
	"sync"

	"github.com/jptext/jiscodepoints/go/codepoints"
	"github.com/jptext/jiscodepoints/go/codepoints/data"
)

// NewHiragana allocates the hiragana set (0x3041-0x3093).
func NewHiragana() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208Hiragana)
}

// Hiragana returns the cached hiragana set.
func Hiragana() *codepoints.CodePoints {
	return hiragana()
}

// NewKatakana allocates the fullwidth katakana set (0x30A1-0x30F6).
func NewKatakana() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208Katakana)
}

// Katakana returns the cached fullwidth katakana set.
func Katakana() *codepoints.CodePoints {
	return katakana()
}

// NewLatinLetters allocates the fullwidth digit and Latin letter set.
func NewLatinLetters() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208LatinLetters)
}

// LatinLetters returns the cached fullwidth Latin letter set.
func LatinLetters() *codepoints.CodePoints {
	return latinLetters()
}

// NewGreekLetters allocates the Greek letter set.
func NewGreekLetters() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208GreekLetters)
}

// GreekLetters returns the cached Greek letter set.
func GreekLetters() *codepoints.CodePoints {
	return greekLetters()
}

// NewCyrillicLetters allocates the Cyrillic letter set.
func NewCyrillicLetters() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208CyrillicLetters)
}

// CyrillicLetters returns the cached Cyrillic letter set.
func CyrillicLetters() *codepoints.CodePoints {
	return cyrillicLetters()
}

// NewSpecialChars allocates the special character set (rows 1-2).
func NewSpecialChars() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208SpecialChars)
}

// SpecialChars returns the cached special character set.
func SpecialChars() *codepoints.CodePoints {
	return specialChars()
}

// NewBoxDrawingChars allocates the box drawing character set (row 8).
func NewBoxDrawingChars() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208BoxDrawingChars)
}

// BoxDrawingChars returns the cached box drawing character set.
func BoxDrawingChars() *codepoints.CodePoints {
	return boxDrawingChars()
}

// NewAll allocates the complete non-kanji JIS X 0208 set, all of the
// category sets merged.
func NewAll() *codepoints.CodePoints {
	return codepoints.New(data.AllJISX0208)
}

// All returns the cached complete non-kanji JIS X 0208 set.
func All() *codepoints.CodePoints {
	return all()
}

// ValidateHiragana checks that s consists only of hiragana.
func ValidateHiragana(s string) error {
	return Hiragana().Validate(s)
}

// ValidateKatakana checks that s consists only of fullwidth katakana.
func ValidateKatakana(s string) error {
	return Katakana().Validate(s)
}

// ValidateKana checks that every character of s is hiragana or katakana.
// Mixing the two scripts is allowed.
func ValidateKana(s string) error {
	return codepoints.ValidateAllInAny(s, kanaSets())
}

// ValidateMixed checks that every character of s is hiragana, katakana or
// ASCII printable.
func ValidateMixed(s string) error {
	return codepoints.ValidateAllInAny(s, mixedSets())
}

var (
	hiragana        = sync.OnceValue(NewHiragana)
	katakana        = sync.OnceValue(NewKatakana)
	latinLetters    = sync.OnceValue(NewLatinLetters)
	greekLetters    = sync.OnceValue(NewGreekLetters)
	cyrillicLetters = sync.OnceValue(NewCyrillicLetters)
	specialChars    = sync.OnceValue(NewSpecialChars)
	boxDrawingChars = sync.OnceValue(NewBoxDrawingChars)
	all             = sync.OnceValue(NewAll)

	kanaSets = sync.OnceValue(func() []*codepoints.CodePoints {
		return []*codepoints.CodePoints{Hiragana(), Katakana()}
	})
	mixedSets = sync.OnceValue(func() []*codepoints.CodePoints {
		return []*codepoints.CodePoints{Hiragana(), Katakana(), codepoints.ASCIIPrintable()}
	})
)
