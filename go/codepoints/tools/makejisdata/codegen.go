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
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

const licenseHeader = `/*
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

// Code generated by makejisdata. DO NOT EDIT.

package data
`

const runesPerLine = 8

type generator struct {
	buf bytes.Buffer
}

func newGenerator() *generator {
	g := &generator{}
	g.buf.WriteString(licenseHeader)
	return g
}

func (g *generator) comment(lines []string) {
	g.buf.WriteByte('\n')
	for _, l := range lines {
		fmt.Fprintf(&g.buf, "// %s\n", l)
	}
}

// table emits a []rune declaration with the given doc comment, eight
// values per line.
func (g *generator) table(name string, runes []rune, doc []string) {
	g.comment(doc)
	fmt.Fprintf(&g.buf, "var %s = []rune{\n", name)
	for i, r := range runes {
		if i%runesPerLine == 0 {
			g.buf.WriteByte('\t')
		}
		fmt.Fprintf(&g.buf, "0x%04X,", r)
		if i%runesPerLine == runesPerLine-1 || i == len(runes)-1 {
			g.buf.WriteByte('\n')
		} else {
			g.buf.WriteByte(' ')
		}
	}
	g.buf.WriteString("}\n")
}

func (g *generator) writeToFile(path string) {
	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		log.Fatalf("generated code for %s does not parse: %v", path, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("written %s (%d bytes)", path, len(src))
}
