// Copyright 2025 gorse Project Authors
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

package dataset

import (
	"io"
	"strings"

	"github.com/gorse-io/cancerdata/base"
	"github.com/juju/errors"
)

const utf8BOM = "\ufeff"

// Table is an ordered arena of csv rows. Rows keep the order of the source file.
type Table struct {
	header  []string
	columns map[string]int
	rows    [][]string
}

// NewTable creates a table from a header and rows. Rows are not copied.
func NewTable(header []string, rows [][]string) *Table {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	return &Table{
		header:  header,
		columns: columns,
		rows:    rows,
	}
}

// LoadTable reads a comma separated stream. The first record is the header and blank
// lines are skipped and a leading byte order mark is dropped. An empty stream yields an empty table.
func LoadTable(r io.Reader) (*Table, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)
	if readErr := base.ReadLines(r, ',', func(line int, fields []string) bool {
		if len(fields) == 1 && fields[0] == "" {
			return true
		}
		if header == nil {
			fields[0] = strings.TrimPrefix(fields[0], utf8BOM)
			header = fields
			return true
		}
		if len(fields) != len(header) {
			err = errors.Errorf("line %d: expected %d fields, saw %d", line+1, len(header), len(fields))
			return false
		}
		rows = append(rows, fields)
		return true
	}); readErr != nil {
		return nil, errors.Trace(readErr)
	}
	if err != nil {
		return nil, err
	}
	return NewTable(header, rows), nil
}

func (t *Table) Header() []string {
	return t.header
}

func (t *Table) Count() int {
	return len(t.rows)
}

func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// ColumnIndex returns the position of a column. Duplicate names resolve to the last one.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.columns[name]
	return i, ok
}
