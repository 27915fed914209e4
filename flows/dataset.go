// SPDX-License-Identifier: MIT
// Package flows: Dataset is a minimal column-oriented table used as the
// pipeline's input and output surface. Two column kinds are supported:
// string (identifiers, periods) and float64 (values, derived indicators).
// Constructors copy their inputs; accessors return fresh slices, so no
// caller and no stage ever share backing storage.

package flows

import "fmt"

// ColumnKind discriminates the two supported column payloads.
type ColumnKind int

const (
	// StringKind marks an identifier column (place, activity, period).
	StringKind ColumnKind = iota

	// FloatKind marks a numeric column (flow values, derived indicators).
	FloatKind
)

// Column is a named, homogeneously-typed column. Exactly one of the two
// payload slices is populated, according to kind.
type Column struct {
	name string
	kind ColumnKind
	strs []string
	vals []float64
}

// StringColumn builds a string column from a defensive copy of values.
// Complexity: O(n).
func StringColumn(name string, values []string) Column {
	cp := make([]string, len(values))
	copy(cp, values)

	return Column{name: name, kind: StringKind, strs: cp}
}

// FloatColumn builds a float column from a defensive copy of values.
// Complexity: O(n).
func FloatColumn(name string, values []float64) Column {
	cp := make([]float64, len(values))
	copy(cp, values)

	return Column{name: name, kind: FloatKind, vals: cp}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Kind returns the column kind.
func (c Column) Kind() ColumnKind { return c.kind }

// Len returns the number of cells in the column.
func (c Column) Len() int {
	if c.kind == StringKind {
		return len(c.strs)
	}

	return len(c.vals)
}

// Dataset is an ordered collection of equally-long named columns.
// The zero value is not usable; construct via NewDataset.
type Dataset struct {
	cols  []Column
	index map[string]int // column name → position in cols
	n     int            // row count, shared by every column
}

// NewDataset assembles a dataset from its columns.
// Stage 1 (Validate): at least one column, non-empty unique names.
// Stage 2 (Validate): all columns share one length.
// Stage 3 (Finalize): build the name index and return.
// Returns ErrBadSchema, ErrRagged, or the new dataset.
// Complexity: O(total cells) due to constructor copies made by the callers.
func NewDataset(columns ...Column) (*Dataset, error) {
	// Validate presence of at least one column.
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns: %w", ErrBadSchema)
	}

	index := make(map[string]int, len(columns))
	n := columns[0].Len()
	for i, c := range columns {
		// Validate the name: empty or repeated names make lookups ambiguous.
		if c.name == "" {
			return nil, fmt.Errorf("column %d has empty name: %w", i, ErrBadSchema)
		}
		if _, dup := index[c.name]; dup {
			return nil, fmt.Errorf("column %q repeated: %w", c.name, ErrBadSchema)
		}
		index[c.name] = i

		// Validate the length against the first column.
		if c.Len() != n {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", c.name, c.Len(), n, ErrRagged)
		}
	}

	// Copy the column headers themselves; payloads were copied at construction.
	cols := make([]Column, len(columns))
	copy(cols, columns)

	return &Dataset{cols: cols, index: index, n: n}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.n }

// Columns returns the ordered column names as a fresh slice.
// Complexity: O(#columns).
func (d *Dataset) Columns() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.name
	}

	return names
}

// HasColumn reports whether a column with the given name exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]

	return ok
}

// column resolves a name to its Column or returns ErrUnknownColumn.
func (d *Dataset) column(name string) (Column, error) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}

	return d.cols[i], nil
}

// Strings returns a copy of the named string column.
// Returns ErrUnknownColumn or ErrColumnKind.
// Complexity: O(n).
func (d *Dataset) Strings(name string) ([]string, error) {
	c, err := d.column(name)
	if err != nil {
		return nil, err
	}
	if c.kind != StringKind {
		return nil, fmt.Errorf("column %q is not a string column: %w", name, ErrColumnKind)
	}

	out := make([]string, len(c.strs))
	copy(out, c.strs)

	return out, nil
}

// Floats returns a copy of the named float column.
// Returns ErrUnknownColumn or ErrColumnKind.
// Complexity: O(n).
func (d *Dataset) Floats(name string) ([]float64, error) {
	c, err := d.column(name)
	if err != nil {
		return nil, err
	}
	if c.kind != FloatKind {
		return nil, fmt.Errorf("column %q is not a float column: %w", name, ErrColumnKind)
	}

	out := make([]float64, len(c.vals))
	copy(out, c.vals)

	return out, nil
}

// WithFloats returns a NEW dataset with the named float column appended, or
// replaced if a float column of that name already exists. The receiver is
// never mutated.
// Stage 1 (Validate): length must match the dataset's row count.
// Stage 2 (Execute): copy headers, then append or replace.
// Returns ErrRagged or ErrColumnKind (replacing a string column is refused).
// Complexity: O(#columns + n).
func (d *Dataset) WithFloats(name string, values []float64) (*Dataset, error) {
	// Validate the new column length.
	if len(values) != d.n {
		return nil, fmt.Errorf("column %q has %d rows, want %d: %w", name, len(values), d.n, ErrRagged)
	}

	cols := make([]Column, len(d.cols))
	copy(cols, d.cols)
	index := make(map[string]int, len(d.cols)+1)
	for k, v := range d.index {
		index[k] = v
	}

	fresh := FloatColumn(name, values)
	if i, ok := index[name]; ok {
		// Replacing identifiers with numbers is almost certainly a bug; refuse.
		if cols[i].kind != FloatKind {
			return nil, fmt.Errorf("column %q is not a float column: %w", name, ErrColumnKind)
		}
		cols[i] = fresh
	} else {
		index[name] = len(cols)
		cols = append(cols, fresh)
	}

	return &Dataset{cols: cols, index: index, n: d.n}, nil
}

// Select returns a NEW dataset containing only the given rows, in the given
// order. Used by period-grouped pipeline runs; duplicate indices are allowed.
// Returns ErrOutOfRange for any index outside [0, Len).
// Complexity: O(#columns · len(rows)).
func (d *Dataset) Select(rows []int) (*Dataset, error) {
	// Validate all row indices up front; no partially-built result on failure.
	for _, r := range rows {
		if r < 0 || r >= d.n {
			return nil, fmt.Errorf("row %d of %d: %w", r, d.n, ErrOutOfRange)
		}
	}

	cols := make([]Column, len(d.cols))
	for i, c := range d.cols {
		switch c.kind {
		case StringKind:
			sub := make([]string, len(rows))
			for j, r := range rows {
				sub[j] = c.strs[r]
			}
			cols[i] = Column{name: c.name, kind: StringKind, strs: sub}
		case FloatKind:
			sub := make([]float64, len(rows))
			for j, r := range rows {
				sub[j] = c.vals[r]
			}
			cols[i] = Column{name: c.name, kind: FloatKind, vals: sub}
		}
	}

	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c.name] = i
	}

	return &Dataset{cols: cols, index: index, n: len(rows)}, nil
}
