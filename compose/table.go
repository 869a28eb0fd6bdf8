package compose

import (
	"fmt"

	"github.com/dshills/stylus/format"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
	"github.com/dshills/stylus/textwidth"
)

// ColumnSpec sizes one table column: automatic (widest cell wins) or a
// fixed column count.
type ColumnSpec struct {
	auto  bool
	width int
}

// AutoColumn sizes the column to its widest cell.
func AutoColumn() ColumnSpec {
	return ColumnSpec{auto: true}
}

// FixedColumn sizes the column to exactly width columns. Negative
// widths clamp to zero.
func FixedColumn(width int) ColumnSpec {
	if width < 0 {
		width = 0
	}
	return ColumnSpec{width: width}
}

// TableOptions controls table rendering.
type TableOptions struct {
	// Separator goes between cells. Empty means a single space.
	Separator string

	// CellStyle, when set, styles every cell. A style resolution
	// error aborts the whole table.
	CellStyle *style.Style
}

// Table lays rows out in columns. Missing cols entries default to
// automatic sizing; missing cells render empty. Each cell is rendered
// left-aligned at its resolved width, rows join horizontally and then
// stack vertically.
func Table(rows [][]string, cols []ColumnSpec, opts TableOptions, caps profile.Capabilities) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	columnCount := len(cols)
	for _, row := range rows {
		if len(row) > columnCount {
			columnCount = len(row)
		}
	}
	if columnCount == 0 {
		return "", nil
	}

	widths := make([]int, columnCount)
	for i := 0; i < columnCount; i++ {
		spec := ColumnSpec{auto: true}
		if i < len(cols) {
			spec = cols[i]
		}
		if !spec.auto {
			widths[i] = spec.width
			continue
		}
		for _, row := range rows {
			if i < len(row) {
				if w := textwidth.Width(row[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	separator := opts.Separator
	if separator == "" {
		separator = " "
	}

	rowBlocks := make([]Block, 0, len(rows))
	for r, row := range rows {
		cells := make([]Block, columnCount)
		for i := 0; i < columnCount; i++ {
			content := ""
			if i < len(row) {
				content = row[i]
			}
			cell, err := renderCell(content, widths[i], opts.CellStyle, caps)
			if err != nil {
				return "", fmt.Errorf("table row %d: %w", r, err)
			}
			cells[i] = Block{Content: cell, Width: widths[i]}
		}
		joined, err := JoinHorizontal(cells, HJoinOptions{Separator: separator}, caps)
		if err != nil {
			return "", err
		}
		rowBlocks = append(rowBlocks, Block{Content: joined})
	}

	return JoinVertical(rowBlocks, VJoinOptions{}, caps)
}

func renderCell(content string, width int, st *style.Style, caps profile.Capabilities) (string, error) {
	cellStyle := style.New()
	if st != nil {
		cellStyle = *st
	}
	cellStyle = cellStyle.WithAlign(style.AlignLeft)
	return format.Render(content, cellStyle, format.Options{Width: width}, caps)
}
