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

// makejisdata regenerates the kanji and merged code-point tables of the
// data package.
//
// The JIS X 0208 kanji table is derived by sweeping every ku/ten cell of
// rows 16-84 through the EUC-JP decoder. The JIS X 0213 kanji table is
// parsed from the euc-jis-2004-std.txt mapping file published at
// x0213.org, since no Go decoder covers the 2004 extension planes. The
// merged per-standard tables are concatenated from the hand-authored leaf
// tables.
package main

import (
	"fmt"
	"log"
	"path"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/japanese"

	"github.com/jptext/jiscodepoints/go/codepoints/data"
)

var (
	output   = pflag.String("out", "go/codepoints/data", "output directory for the generated tables")
	jisx0213 = pflag.String("jisx0213", "testdata/euc-jis-2004-std.txt", "path to the euc-jis-2004-std.txt mapping file")
)

const (
	kanjiLow   = 16
	kanjiHigh  = 84
	planeWidth = 94
)

// jisx0208Cell decodes a single ku/ten cell through EUC-JP. Unassigned
// cells come back as the replacement character.
func jisx0208Cell(ku, ten int) (rune, bool) {
	raw := []byte{byte(0xA0 + ku), byte(0xA0 + ten)}
	decoded, err := japanese.EUCJP.NewDecoder().Bytes(raw)
	if err != nil {
		return 0, false
	}
	r, size := utf8.DecodeRune(decoded)
	if r == utf8.RuneError || size != len(decoded) {
		return 0, false
	}
	return r, true
}

func makeJISX0208Kanji() []rune {
	var kanji []rune
	for ku := kanjiLow; ku <= kanjiHigh; ku++ {
		for ten := 1; ten <= planeWidth; ten++ {
			if r, ok := jisx0208Cell(ku, ten); ok {
				kanji = append(kanji, r)
			}
		}
	}
	if len(kanji) != 6355 {
		log.Fatalf("expected 6355 JIS X 0208 kanji, got %d", len(kanji))
	}
	return kanji
}

func main() {
	pflag.Parse()

	kanji0208 := makeJISX0208Kanji()
	g := newGenerator()
	g.table("JISX0208Kanji", kanji0208, []string{
		"JISX0208Kanji is every kanji assigned in JIS X 0208 rows 16-84:",
		fmt.Sprintf("Level 1 (rows 16-47) and Level 2 (rows 48-84), %d characters.", len(kanji0208)),
	})
	g.writeToFile(path.Join(*output, "jisx0208kanji.go"))

	kanji0213 := makeJISX0213Kanji(*jisx0213)
	var supplementary int
	for _, r := range kanji0213 {
		if r > 0xFFFF {
			supplementary++
		}
	}
	g = newGenerator()
	g.table("JISX0213Kanji", kanji0213, []string{
		"JISX0213Kanji is every kanji assigned in JIS X 0213:2004: plane 1",
		"rows 14-94 (Levels 1-3) and the plane 2 kanji rows (Level 4),",
		fmt.Sprintf("%d characters. %d of them are outside the", len(kanji0213), supplementary),
		"Basic Multilingual Plane.",
	})
	g.writeToFile(path.Join(*output, "jisx0213kanji.go"))

	writeMerged(*output)
}

func writeMerged(out string) {
	allASCII := concat(data.ASCIIControl, data.ASCIIPrintable, data.CRLF)
	allJISX0201 := concat(data.JISX0201LatinLetters, data.JISX0201Katakana)
	allJISX0208 := concat(
		data.JISX0208Hiragana, data.JISX0208Katakana, data.JISX0208LatinLetters,
		data.JISX0208GreekLetters, data.JISX0208CyrillicLetters,
		data.JISX0208SpecialChars, data.JISX0208BoxDrawingChars,
	)

	g := newGenerator()
	g.comment([]string{
		"Merged per-standard tables, concatenated from the leaf tables above.",
		"Concatenation may repeat values (CR and LF appear in both ASCIIControl",
		"and CRLF); CodePoints construction deduplicates.",
	})
	g.table("AllASCII", allASCII, []string{
		fmt.Sprintf("AllASCII is ASCIIControl + ASCIIPrintable + CRLF (%d entries,", len(allASCII)),
		"128 distinct).",
	})
	g.table("AllJISX0201", allJISX0201, []string{
		"AllJISX0201 is JISX0201LatinLetters + JISX0201Katakana.",
	})
	g.table("AllJISX0208", allJISX0208, []string{
		"AllJISX0208 is the JIS X 0208 non-kanji rows merged: hiragana, katakana,",
		"Latin, Greek, Cyrillic, special and box drawing characters.",
	})
	g.writeToFile(path.Join(out, "merged.go"))
}

func concat(tables ...[]rune) []rune {
	var merged []rune
	for _, t := range tables {
		merged = append(merged, t...)
	}
	return merged
}
