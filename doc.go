// Package recordtable renders a collection of records as an aligned,
// bordered text table.
//
// Columns are discovered from the record type: every exported field whose
// type is a scalar becomes a column, named after the field, in declaration
// order. Scalars are booleans, integers, floats, strings,
// [decimal.Decimal] and [time.Time], or a pointer to one of those. Other
// fields (structs, slices, maps, ...) are skipped.
//
//	type person struct {
//		Name string
//		Age  int
//	}
//
//	recordtable.Write(os.Stdout, []person{{"Ann", 30}, {"Bob", 5}})
//
// prints
//
//	+------+-----+
//	| Name | Age |
//	+------+-----+
//	| Ann  |  30 |
//	+------+-----+
//	| Bob  |   5 |
//	+------+-----+
//
// Numeric, decimal and time columns are right-aligned; string, character and
// boolean columns are left-aligned. Headers are always left-aligned. Width is
// measured in characters, not terminal cells.
//
// # Interface Design
//
// Record types can implement optional interfaces to change the defaults:
//
//   - [Described] — declare columns and values instead of reflection. This is
//     also the only way to mark a column as [KindChar], since a rune field is
//     an int32 to reflection.
//   - [Bordered] — choose [BorderGrid] (default) or [BorderNone].
//
// # Streaming
//
// [WriteIter] and [WriteChan] accept a sequence or a channel. Both collect
// every record before writing, because widths depend on all of them.
//
// # Errors
//
//   - [ErrNilArgument] — nil collection or nil writer
//   - [ErrInvalidArgument] — empty collection
//
// A record type without any scalar field is not an error: nothing is
// written.
package recordtable
