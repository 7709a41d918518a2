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
	"fmt"
	"unicode/utf8"
)

// ValidationError describes a single code-point validation failure: the
// offending code point, its zero-based character index in the input (not a
// byte offset), and a human-readable message.
type ValidationError struct {
	CodePoint rune
	Position  int
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the default message,
// "invalid character '<c>' (U+XXXX) at position <n>". Code points that are
// not valid Unicode scalar values render as the replacement character.
func NewValidationError(cp rune, pos int) *ValidationError {
	ch := cp
	if !utf8.ValidRune(ch) {
		ch = utf8.RuneError
	}
	return &ValidationError{
		CodePoint: cp,
		Position:  pos,
		Message:   fmt.Sprintf("invalid character '%c' (U+%04X) at position %d", ch, cp, pos),
	}
}

// NewValidationErrorMessage builds a ValidationError with an explicit
// message, overriding the default formatting.
func NewValidationErrorMessage(cp rune, pos int, message string) *ValidationError {
	return &ValidationError{CodePoint: cp, Position: pos, Message: message}
}

// Validate returns nil if every code point of s is a member, and a
// *ValidationError identifying the first excluded character otherwise.
func (cp *CodePoints) Validate(s string) error {
	if r, pos, ok := cp.FirstExcludedWithPosition(s); ok {
		return NewValidationError(r, pos)
	}
	return nil
}

// ContainsAllInAny reports whether every code point of s is a member of at
// least one set in sets. An empty sets slice is always false, regardless
// of s: a membership claim against no sets is unsatisfiable. (Note that
// ValidateAllInAny treats empty text differently; see there.)
func ContainsAllInAny(s string, sets []*CodePoints) bool {
	if len(sets) == 0 {
		return false
	}
	for _, r := range s {
		if !anyContains(sets, r) {
			return false
		}
	}
	return true
}

// ValidateAllInAny returns nil if every code point of s is a member of at
// least one set in sets, and a *ValidationError for the first character
// covered by none of them otherwise. Empty text always validates, even
// against an empty sets slice: validating zero characters is vacuously
// successful. Non-empty text against an empty sets slice fails at
// position 0.
func ValidateAllInAny(s string, sets []*CodePoints) error {
	var idx int
	for _, r := range s {
		if !anyContains(sets, r) {
			return NewValidationError(r, idx)
		}
		idx++
	}
	return nil
}

func anyContains(sets []*CodePoints, r rune) bool {
	for _, set := range sets {
		if set.ContainsRune(r) {
			return true
		}
	}
	return false
}
