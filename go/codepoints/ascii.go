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
	"sync"

	"github.com/jptext/jiscodepoints/go/codepoints/data"
)

// Well-known ASCII sets. Each comes in two flavors: a NewXxx constructor
// that allocates a fresh set, and an Xxx accessor that returns a cached
// singleton. The singleton is built exactly once, even under concurrent
// first access, and keeps a stable identity across calls.

// NewASCIIControl allocates the set of the 33 ASCII control characters
// (0x00-0x1F and DEL).
func NewASCIIControl() *CodePoints {
	return New(data.ASCIIControl)
}

// ASCIIControl returns the cached ASCII control set.
func ASCIIControl() *CodePoints {
	return asciiControl()
}

// NewASCIIPrintable allocates the set of the 95 ASCII printable
// characters (0x20-0x7E).
func NewASCIIPrintable() *CodePoints {
	return New(data.ASCIIPrintable)
}

// ASCIIPrintable returns the cached ASCII printable set.
func ASCIIPrintable() *CodePoints {
	return asciiPrintable()
}

// NewCRLF allocates the two-element set {LF, CR}.
func NewCRLF() *CodePoints {
	return New(data.CRLF)
}

// CRLF returns the cached CRLF set.
func CRLF() *CodePoints {
	return crlf()
}

// NewASCIIAll allocates the set of all 128 ASCII characters, control and
// printable combined.
func NewASCIIAll() *CodePoints {
	return New(data.AllASCII)
}

// ASCIIAll returns the cached full ASCII set.
func ASCIIAll() *CodePoints {
	return asciiAll()
}

var (
	asciiControl   = sync.OnceValue(NewASCIIControl)
	asciiPrintable = sync.OnceValue(NewASCIIPrintable)
	crlf           = sync.OnceValue(NewCRLF)
	asciiAll       = sync.OnceValue(NewASCIIAll)
)
