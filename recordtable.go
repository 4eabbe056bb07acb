package recordtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilArgument     = errors.New("nil argument")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind classifies a scalar field. It decides how a column is aligned.
type Kind int

const (
	KindString Kind = iota
	KindChar
	KindBool
	KindInt
	KindUint
	KindFloat
	KindDecimal
	KindTime
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindChar:    "char",
	KindBool:    "bool",
	KindInt:     "int",
	KindUint:    "uint",
	KindFloat:   "float",
	KindDecimal: "decimal",
	KindTime:    "time",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Alignment returns how cells of this kind are padded. Numeric and temporal
// kinds align right; everything else aligns left.
func (k Kind) Alignment() Alignment {
	switch k {
	case KindInt, KindUint, KindFloat, KindDecimal, KindTime:
		return AlignRight
	default:
		return AlignLeft
	}
}

// Field describes one column: its header text and scalar kind.
type Field struct {
	Name string
	Kind Kind
}

// --- Optional Interfaces ---

// Described lets a record type declare its columns instead of having them
// discovered by reflection. Values returns one value per field, in the
// order of Fields. Missing trailing values render as empty cells.
type Described interface {
	Fields() []Field
	Values() []any
}

// Bordered controls the table border style.
// Default: BorderGrid.
type Bordered interface {
	Border() BorderStyle
}

// --- Value Types ---

// BorderStyle controls how rows are separated.
type BorderStyle int

const (
	BorderGrid BorderStyle = iota // +---+ after the header and every row
	BorderNone                    // header, one dashed line, bare rows
)

// Alignment controls cell padding.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Write renders items as a table and writes it to w.
//
// A nil items slice or nil writer is rejected with [ErrNilArgument]; an
// empty slice with [ErrInvalidArgument]. Nothing is written when an error is
// returned for an argument. A record type without scalar fields renders
// nothing and returns nil.
func Write[T any](w io.Writer, items []T) error {
	if items == nil {
		return fmt.Errorf("%w: collection is required", ErrNilArgument)
	}
	if w == nil {
		return fmt.Errorf("%w: writer is required", ErrNilArgument)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: collection cannot be empty", ErrInvalidArgument)
	}
	return writeTable(w, items)
}

// Marshal renders items as a table and returns the bytes.
func Marshal[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
