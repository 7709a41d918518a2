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

// Package jisx0208kanji exposes the 6355 kanji of JIS X 0208: Level 1
// (rows 16-47) and Level 2 (rows 48-84).
package jisx0208kanji

import (
	"sync"

	"github.com/jptext/jiscodepoints/go/codepoints"
	"github.com/jptext/jiscodepoints/go/codepoints/data"
)

// New allocates the JIS X 0208 kanji set.
func New() *codepoints.CodePoints {
	return codepoints.New(data.JISX0208Kanji)
}

// Cached returns the cached JIS X 0208 kanji set.
func Cached() *codepoints.CodePoints {
	return cached()
}

// Validate checks that s consists only of JIS X 0208 kanji.
func Validate(s string) error {
	return Cached().Validate(s)
}

var cached = sync.OnceValue(New)
