package recordtable

import (
	"io"
	"iter"
)

// WriteIter renders the items of seq as a table. Column widths need every
// record, so the sequence is collected into a slice before anything is
// written. A nil seq is treated like a nil collection and a sequence that
// yields nothing like an empty one.
func WriteIter[T any](w io.Writer, seq iter.Seq[T]) error {
	if seq == nil {
		return Write[T](w, nil)
	}
	items := []T{}
	seq(func(item T) bool {
		items = append(items, item)
		return true
	})
	return Write(w, items)
}

// WriteChan renders the items received from ch until it is closed.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, ch <-chan T) error {
	if ch == nil {
		return Write[T](w, nil)
	}
	return WriteIter(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
