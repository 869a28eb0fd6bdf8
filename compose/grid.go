package compose

import (
	"fmt"

	"github.com/dshills/stylus/profile"
)

// Direction selects the axis of a flexible split.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// Grid arranges blocks row-major into the given number of columns and
// joins the rows. The last row may be short; it is not padded with
// filler blocks, the vertical join pads its lines instead.
func Grid(blocks []Block, columns int, caps profile.Capabilities) (string, error) {
	if columns <= 0 {
		return "", fmt.Errorf("%w: grid columns %d", ErrInvalidGeometry, columns)
	}
	if len(blocks) == 0 {
		return "", nil
	}

	var rows []Block
	for start := 0; start < len(blocks); start += columns {
		end := start + columns
		if end > len(blocks) {
			end = len(blocks)
		}
		row, err := JoinHorizontal(blocks[start:end], HJoinOptions{}, caps)
		if err != nil {
			return "", err
		}
		rows = append(rows, Block{Content: row})
	}
	return JoinVertical(rows, VJoinOptions{}, caps)
}

// Allocate computes the flexible share of each block:
// floor(weight/totalWeight * totalSize), default weight 1. The flooring
// remainder is deliberately not redistributed, so the sum may fall
// short of totalSize by up to len(blocks)-1.
func Allocate(blocks []Block, totalSize int) []int {
	totalWeight := 0
	for _, b := range blocks {
		totalWeight += weightOf(b)
	}

	sizes := make([]int, len(blocks))
	if totalWeight == 0 || totalSize <= 0 {
		return sizes
	}
	for i, b := range blocks {
		sizes[i] = weightOf(b) * totalSize / totalWeight
	}
	return sizes
}

// Flexible distributes totalSize across blocks by weight and joins
// them along the direction: width shares for horizontal, height shares
// for vertical. Content wraps to fit its share.
func Flexible(blocks []Block, dir Direction, totalSize int, caps profile.Capabilities) (string, error) {
	if len(blocks) == 0 {
		return "", nil
	}

	sizes := Allocate(blocks, totalSize)
	sized := make([]Block, len(blocks))
	for i, b := range blocks {
		if sizes[i] == 0 {
			// A zero share collapses the block entirely.
			sized[i] = Block{}
			continue
		}
		shaped := b
		if dir == Horizontal {
			shaped.Width = sizes[i]
		} else {
			shaped.Height = sizes[i]
		}
		content, err := shaped.render(caps, true)
		if err != nil {
			return "", fmtErr("flexible", err)
		}
		sized[i] = Block{Content: content, Width: shaped.Width}
	}

	if dir == Horizontal {
		return JoinHorizontal(sized, HJoinOptions{}, caps)
	}
	return JoinVertical(sized, VJoinOptions{}, caps)
}

func weightOf(b Block) int {
	if b.Weight <= 0 {
		return 1
	}
	return b.Weight
}
