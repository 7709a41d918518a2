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

package codepoints_test

import (
	"fmt"

	"github.com/jptext/jiscodepoints/go/codepoints"
)

func ExampleCodePoints_Contains() {
	allowed := codepoints.New([]rune{0x3042, 0x3044}) // あ, い

	fmt.Println(allowed.Contains("あい"))
	fmt.Println(allowed.Contains("あいう"))
	// Output:
	// true
	// false
}

func ExampleCodePoints_FirstExcludedWithPosition() {
	allowed := codepoints.New([]rune{0x3042, 0x3044}) // あ, い

	r, pos, ok := allowed.FirstExcludedWithPosition("あいう")
	fmt.Printf("%v U+%04X at %d\n", ok, r, pos)
	// Output:
	// true U+3046 at 2
}

func ExampleCodePoints_Validate() {
	printable := codepoints.ASCIIPrintable()

	err := printable.Validate("Helloあ")
	fmt.Println(err)
	// Output:
	// invalid character 'あ' (U+3042) at position 5
}

func ExampleCodePoints_Union() {
	a := codepoints.New([]rune{0x3042, 0x3044}) // あ, い
	b := codepoints.New([]rune{0x3044, 0x3046}) // い, う

	fmt.Println(a.Union(b).Contains("あいう"))
	// Output:
	// true
}

func ExampleCodePoints_Intersection() {
	a := codepoints.New([]rune{0x3042, 0x3044}) // あ, い
	b := codepoints.New([]rune{0x3044, 0x3046}) // い, う

	both := a.Intersection(b)
	fmt.Println(both.Contains("い"))
	fmt.Println(both.Contains("あ"))
	// Output:
	// true
	// false
}

func ExampleCodePoints_Difference() {
	a := codepoints.New([]rune{0x3042, 0x3044}) // あ, い
	b := codepoints.New([]rune{0x3044, 0x3046}) // い, う

	onlyA := a.Difference(b)
	fmt.Println(onlyA.Contains("あ"))
	fmt.Println(onlyA.Contains("い"))
	// Output:
	// true
	// false
}

func ExampleContainsAllInAny() {
	hiragana := codepoints.New([]rune{0x3042, 0x3044}) // あ, い
	katakana := codepoints.New([]rune{0x30A2, 0x30A4}) // ア, イ
	sets := []*codepoints.CodePoints{hiragana, katakana}

	fmt.Println(codepoints.ContainsAllInAny("あア", sets))
	fmt.Println(codepoints.ContainsAllInAny("あx", sets))
	// Output:
	// true
	// false
}

func ExampleValidateAllInAny() {
	hiragana := codepoints.New([]rune{0x3042, 0x3044}) // あ, い
	katakana := codepoints.New([]rune{0x30A2, 0x30A4}) // ア, イ

	err := codepoints.ValidateAllInAny("あx", []*codepoints.CodePoints{hiragana, katakana})
	fmt.Println(err)
	// Output:
	// invalid character 'x' (U+0078) at position 1
}
