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

// Package jisx0213kanji exposes the 10050 kanji of JIS X 0213:2004,
// Levels 1 through 4. Level 4 includes characters outside the Basic
// Multilingual Plane.
package jisx0213kanji

import (
	"sync"

	"github.com/jptext/jiscodepoints/go/codepoints"
	"github.com/jptext/jiscodepoints/go/codepoints/data"
)

// New allocates the JIS X 0213 kanji set.
func New() *codepoints.CodePoints {
	return codepoints.New(data.JISX0213Kanji)
}

// Cached returns the cached JIS X 0213 kanji set.
func Cached() *codepoints.CodePoints {
	return cached()
}

// Validate checks that s consists only of JIS X 0213 kanji.
func Validate(s string) error {
	return Cached().Validate(s)
}

var cached = sync.OnceValue(New)
