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

// Package jisx0201 exposes the JIS X 0201 character sets: Latin letters
// (ASCII printable with the yen sign for backslash and the overline for
// tilde) and halfwidth katakana.
package jisx0201

import (
	"sync"

	"github.com/jptext/jiscodepoints/go/codepoints"
	"github.com/jptext/jiscodepoints/go/codepoints/data"
)

// NewLatinLetters allocates the JIS X 0201 Latin letter set.
func NewLatinLetters() *codepoints.CodePoints {
	return codepoints.New(data.JISX0201LatinLetters)
}

// LatinLetters returns the cached JIS X 0201 Latin letter set.
func LatinLetters() *codepoints.CodePoints {
	return latinLetters()
}

// NewKatakana allocates the halfwidth katakana set (0xFF61-0xFF9F).
func NewKatakana() *codepoints.CodePoints {
	return codepoints.New(data.JISX0201Katakana)
}

// Katakana returns the cached halfwidth katakana set.
func Katakana() *codepoints.CodePoints {
	return katakana()
}

// NewAll allocates the complete JIS X 0201 set, Latin letters and
// katakana combined.
func NewAll() *codepoints.CodePoints {
	return codepoints.New(data.AllJISX0201)
}

// All returns the cached complete JIS X 0201 set.
func All() *codepoints.CodePoints {
	return all()
}

// ValidateLatinLetters checks that s consists only of JIS X 0201 Latin
// letters.
func ValidateLatinLetters(s string) error {
	return LatinLetters().Validate(s)
}

// ValidateKatakana checks that s consists only of halfwidth katakana.
func ValidateKatakana(s string) error {
	return Katakana().Validate(s)
}

var (
	latinLetters = sync.OnceValue(NewLatinLetters)
	katakana     = sync.OnceValue(NewKatakana)
	all          = sync.OnceValue(NewAll)
)
