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
	"strings"
	"testing"

	"github.com/jptext/jiscodepoints/go/codepoints/data"
)

var benchText = strings.Repeat("こんにちは、せかい。", 100)

func BenchmarkContains(b *testing.B) {
	cp := New(data.AllJISX0208)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp.Contains(benchText)
	}
}

func BenchmarkAllExcluded(b *testing.B) {
	cp := New(data.JISX0208Hiragana)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp.AllExcluded(benchText)
	}
}

func BenchmarkValidate(b *testing.B) {
	cp := New(data.AllJISX0208)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cp.Validate(benchText); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewKanji(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(data.JISX0213Kanji)
	}
}

func BenchmarkHash(b *testing.B) {
	cp := New(data.JISX0208Kanji)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp.Hash()
	}
}
