// SPDX-License-Identifier: MIT

// Package gridio reads and writes grid documents.
//
// A grid document is YAML (and therefore also accepts JSON):
//
//	rows: [[5, 8, 6, 3], [7, 9, 1, 3]]
//	row_labels: [a, b]
//	column_labels: [w, x, y, z]
//
// A null (or ~) cell is missing. Labels are optional and must be integers
// or strings; plain scalars that YAML 1.1 would read as booleans (y, no,
// on, ...) are kept as their text.
package gridio

import (
	"io"
	"os"

	"github.com/leonickl/pxp-matrix/matrix"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("gridio: empty document")

// Document is the serialized form of a Grid.
type Document struct {
	Rows         [][]interface{} `yaml:"rows,flow"`
	RowLabels    []Label         `yaml:"row_labels,omitempty,flow"`
	ColumnLabels []Label         `yaml:"column_labels,omitempty,flow"`
}

// Label is one row or column label of a document.
type Label struct {
	value interface{}
}

// Value returns the decoded label: an integer, a string, or whatever other
// scalar the document held (which matrix rejects with ErrLabelType).
func (l Label) Value() interface{} { return l.value }

// UnmarshalYAML keeps numbers and strings as yaml.v2 resolves them but
// reads booleans back as the scalar text they were written with.
func (l *Label) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if _, isBool := raw.(bool); !isBool {
		l.value = raw
		return nil
	}
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	l.value = text

	return nil
}

// MarshalYAML writes the label value; yaml.v2 quotes strings that would
// otherwise read back as another type.
func (l Label) MarshalYAML() (interface{}, error) { return l.value, nil }

// Load reads the grid document at path.
func Load(path string, opts ...matrix.Option) (*matrix.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gridio: open %s", path)
	}
	defer f.Close()

	g, err := Decode(f, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "gridio: %s", path)
	}

	return g, nil
}

// Decode reads one grid document from r. Unknown keys are rejected.
// opts are applied after the labels found in the document, so an explicit
// label option overrides them.
func Decode(r io.Reader, opts ...matrix.Option) (*matrix.Grid, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyDocument
		}
		return nil, errors.Wrap(err, "gridio: decode")
	}

	return doc.Grid(opts...)
}

// Grid converts the document into a Grid.
func (d *Document) Grid(opts ...matrix.Option) (*matrix.Grid, error) {
	all := make([]matrix.Option, 0, len(opts)+2)
	if d.RowLabels != nil {
		all = append(all, matrix.WithRowLabels(values(d.RowLabels)...))
	}
	if d.ColumnLabels != nil {
		all = append(all, matrix.WithColumnLabels(values(d.ColumnLabels)...))
	}
	all = append(all, opts...)

	rows := make([][]any, len(d.Rows))
	for i, row := range d.Rows {
		rows[i] = row
	}

	return matrix.New(rows, all...)
}

// FromGrid builds the document for g. Missing cells become null.
func FromGrid(g *matrix.Grid) *Document {
	raw := g.RawRows()
	d := &Document{Rows: make([][]interface{}, len(raw))}
	for i, row := range raw {
		d.Rows[i] = make([]interface{}, len(row))
		for j, cell := range row {
			if v, err := cell.Float(); err == nil {
				d.Rows[i][j] = v
			}
		}
	}
	d.RowLabels = labels(g.RowLabels())
	d.ColumnLabels = labels(g.ColumnLabels())

	return d
}

// Encode writes g as a grid document.
func Encode(w io.Writer, g *matrix.Grid) error {
	out, err := yaml.Marshal(FromGrid(g))
	if err != nil {
		return errors.Wrap(err, "gridio: encode")
	}
	if _, err = w.Write(out); err != nil {
		return errors.Wrap(err, "gridio: write")
	}

	return nil
}

func labels(names []string) []Label {
	if len(names) == 0 {
		return nil
	}
	out := make([]Label, len(names))
	for i, name := range names {
		out[i] = Label{value: name}
	}

	return out
}

func values(ls []Label) []interface{} {
	out := make([]interface{}, len(ls))
	for i, l := range ls {
		out[i] = l.value
	}

	return out
}
