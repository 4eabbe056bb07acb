package recordtable

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	borderCross      = "+"
	borderHorizontal = "-"
	borderVertical   = "|"
)

func writeTable[T any](w io.Writer, items []T) error {
	s := schemaOf[T]()
	if len(s.fields) == 0 {
		return nil
	}

	header := make([]string, len(s.fields))
	aligns := make([]Alignment, len(s.fields))
	for i, f := range s.fields {
		header[i] = f.Name
		aligns[i] = f.Kind.Alignment()
	}

	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = s.cells(any(item))
	}

	border := BorderGrid
	if b, ok := probe[T]().(Bordered); ok {
		border = b.Border()
	}

	widths := computeWidths(header, rows)
	if border == BorderNone {
		return renderPlainTable(w, header, rows, widths, aligns)
	}
	return renderGridTable(w, header, rows, widths, aligns)
}

// computeWidths returns the widest character count per column. Headers
// count toward the width.
func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, h := range header {
		if n := utf8.RuneCountInString(h); n > widths[i] {
			widths[i] = n
		}
	}
	return widths
}

// --- Grid table (BorderGrid) ---

func renderGridTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment) error {
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	if err := drawGridRow(w, header, widths, nil); err != nil {
		return err
	}
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawGridRow(w, row, widths, aligns); err != nil {
			return err
		}
		if err := drawHLine(w, widths); err != nil {
			return err
		}
	}
	return nil
}

func drawHLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString(borderCross)
	for _, width := range widths {
		sb.WriteString(strings.Repeat(borderHorizontal, width+2))
		sb.WriteString(borderCross)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// drawGridRow writes one bordered row. A nil aligns left-aligns every cell,
// which is how the header is drawn.
func drawGridRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	var sb strings.Builder
	sb.WriteString(borderVertical)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cells[i], width, alignAt(aligns, i)))
		sb.WriteString(" ")
		sb.WriteString(borderVertical)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// --- Plain table (BorderNone) ---

// renderPlainTable writes a header, a single dashed rule and the rows, with
// every column padded to its width plus two.
func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment) error {
	if err := writePlainRow(w, header, widths, nil); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat(borderHorizontal, width+2)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	var sb strings.Builder
	for i, width := range widths {
		sb.WriteString(alignCell(cells[i], width+2, alignAt(aligns, i)))
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignAt(aligns []Alignment, i int) Alignment {
	if i < len(aligns) {
		return aligns[i]
	}
	return AlignLeft
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
