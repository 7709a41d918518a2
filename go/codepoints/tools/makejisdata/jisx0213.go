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

package main

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
)

// Plane 2 of JIS X 0213 assigns Level 4 kanji to these rows only; the
// remaining SS3 rows belong to JIS X 0212 and must not be picked up.
var plane2KanjiRows = map[int]bool{
	1: true, 3: true, 4: true, 5: true, 8: true,
	12: true, 13: true, 14: true, 15: true,
	78: true, 79: true, 80: true, 81: true, 82: true, 83: true, 84: true,
	85: true, 86: true, 87: true, 88: true, 89: true, 90: true, 91: true,
	92: true, 93: true, 94: true,
}

type cell struct {
	plane, ku, ten int
	r              rune
}

// makeJISX0213Kanji parses the euc-jis-2004-std.txt mapping and keeps the
// kanji cells: plane 1 rows 14-94 and the plane 2 kanji rows. The file
// lists cells in ku/ten order, so no re-sorting is needed.
func makeJISX0213Kanji(path string) []rune {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("cannot read JIS X 0213 mapping (download euc-jis-2004-std.txt from x0213.org): %v", err)
	}
	defer f.Close()

	var kanji []rune
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, ok := parseMappingLine(line)
		if !ok {
			continue
		}
		switch {
		case c.plane == 1 && c.ku >= 14:
			kanji = append(kanji, c.r)
		case c.plane == 2 && plane2KanjiRows[c.ku]:
			kanji = append(kanji, c.r)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
	if len(kanji) != 10050 {
		log.Fatalf("expected 10050 JIS X 0213 kanji, got %d", len(kanji))
	}
	return kanji
}

// parseMappingLine understands lines of the form
//
//	0xA1A1    U+3000    # IDEOGRAPHIC SPACE
//	0x8FA1A1  U+4E02    # <cjk>
//
// Cells mapped to a base+combining sequence (U+XXXX+YYYY) occur only in
// the non-kanji rows and are skipped.
func parseMappingLine(line string) (cell, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return cell{}, false
	}
	euc, ok := strings.CutPrefix(fields[0], "0x")
	if !ok {
		return cell{}, false
	}
	uni, ok := strings.CutPrefix(fields[1], "U+")
	if !ok || strings.Contains(uni, "+") {
		return cell{}, false
	}
	cp, err := strconv.ParseUint(uni, 16, 32)
	if err != nil {
		return cell{}, false
	}

	var c cell
	c.r = rune(cp)
	switch len(euc) {
	case 4:
		hi, lo := hexByte(euc[:2]), hexByte(euc[2:])
		c.plane, c.ku, c.ten = 1, hi-0xA0, lo-0xA0
	case 6:
		if euc[:2] != "8F" {
			return cell{}, false
		}
		hi, lo := hexByte(euc[2:4]), hexByte(euc[4:])
		c.plane, c.ku, c.ten = 2, hi-0xA0, lo-0xA0
	default:
		return cell{}, false
	}
	if c.ku < 1 || c.ku > 94 || c.ten < 1 || c.ten > 94 {
		return cell{}, false
	}
	return c, true
}

func hexByte(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return -1
	}
	return int(v)
}
