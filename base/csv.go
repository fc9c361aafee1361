// Copyright 2021 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base

import (
	"bufio"
	"io"
	"strings"

	"github.com/juju/errors"
)

const maxLineSize = 16 * 1024 * 1024

// ReadLines parses records of a csv stream. The handler receives the line number where
// the record starts and its fields; returning false stops reading.
func ReadLines(r io.Reader, sep rune, handler func(int, []string) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineCount := 0               // line number of current position
	startLine := 0               // line number where current record starts
	fields := make([]string, 0)  // fields for current record
	builder := strings.Builder{} // string builder for current field
	quoted := false              // whether current position in quote
	for sc.Scan() {
		line := []rune(sc.Text())
		if quoted {
			// quoted field spans lines
			builder.WriteRune('\n')
		} else {
			startLine = lineCount
		}
		for i := 0; i < len(line); i++ {
			switch {
			case line[i] == sep && !quoted:
				fields = append(fields, builder.String())
				builder.Reset()
			case line[i] == '"' && quoted:
				if i+1 < len(line) && line[i+1] == '"' {
					i++
					builder.WriteRune('"')
				} else {
					quoted = false
				}
			case line[i] == '"':
				quoted = true
			default:
				builder.WriteRune(line[i])
			}
		}
		if !quoted {
			fields = append(fields, builder.String())
			builder.Reset()
			if !handler(startLine, fields) {
				return nil
			}
			fields = make([]string, 0, len(fields))
		}
		lineCount++
	}
	if err := sc.Err(); err != nil {
		return errors.Trace(err)
	}
	if quoted {
		return errors.Errorf("line %d: unterminated quoted field", startLine+1)
	}
	return nil
}
