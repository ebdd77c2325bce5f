package treeprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/samber/lo"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/list"
	"github.com/benz9527/xdsa/lib/tree"
)

/*
Render lays the tree out on a grid of 2^h-1 slots per line.
The node at depth d and index i of its level sits on slot
(2i+1)*2^(h-1-d)-1, the middle of its span.

	      _4_
	     /   \
	   2       6
	  / \     / \
	 1   3   5   7
*/

const minCellWidth = 2

// MaxHeight bounds the drawing, the line width doubles with every level.
const MaxHeight = 16

var ErrTreeTooTall = errors.New("[treeprint] tree too tall to render")

// Height walks the whole tree instead of reading the cached heights.
func Height[K infra.OrderedKey](root tree.Node[K]) int {
	if root == nil {
		return 0
	}
	return 1 + max(Height[K](root.Left()), Height[K](root.Right()))
}

type layout struct {
	height int
	cell   int
	width  int
}

func newLayout[K infra.OrderedKey](root tree.Node[K], height int) layout {
	widest := 0
	for level := range levels[K](root, height) {
		widest = max(widest, lo.Max(lo.Map(level, func(node tree.Node[K], _ int) int {
			if node == nil {
				return 0
			}
			return len(keyString(node.Key()))
		})))
	}
	cell := max(minCellWidth, widest)
	return layout{
		height: height,
		cell:   cell,
		width:  cell * (1<<height - 1),
	}
}

// column is the last character of the slot, keys are right aligned.
func (l layout) column(depth, idx int) int {
	slot := (2*idx+1)*(1<<(l.height-1-depth)) - 1
	return slot*l.cell + l.cell - 1
}

func keyString[K infra.OrderedKey](key K) string {
	return fmt.Sprint(key)
}

// levels yields every level from the root, absent children are
// kept as nil placeholders so the level d always holds 2^d entries.
func levels[K infra.OrderedKey](root tree.Node[K], height int) iter.Seq[[]tree.Node[K]] {
	return func(yield func([]tree.Node[K]) bool) {
		if root == nil {
			return
		}
		queue := list.NewLinkedList[tree.Node[K]]()
		queue.PushBack(root)
		for depth := 0; depth < height; depth++ {
			count := queue.Len()
			level := make([]tree.Node[K], 0, count)
			for i := int64(0); i < count; i++ {
				node, _ := queue.PopFront()
				level = append(level, node)
				if depth+1 >= height {
					continue
				}
				if node == nil {
					queue.PushBack(nil)
					queue.PushBack(nil)
					continue
				}
				queue.PushBack(node.Left())
				queue.PushBack(node.Right())
			}
			if !yield(level) {
				return
			}
		}
	}
}

func newLine(width int) []byte {
	return bytes.Repeat([]byte{' '}, width)
}

func trimLine(line []byte) string {
	return strings.TrimRight(string(line), " ")
}

// Render returns the lines of the tree drawing. An empty tree has no lines.
// Trees taller than MaxHeight are refused with ErrTreeTooTall.
func Render[K infra.OrderedKey](root tree.Node[K]) ([]string, error) {
	height := Height[K](root)
	if height == 0 {
		return []string{}, nil
	}
	if height > MaxHeight {
		return nil, infra.WrapErrorStackWithMessage(ErrTreeTooTall,
			fmt.Sprintf("height %d, max %d", height, MaxHeight))
	}
	l := newLayout[K](root, height)
	lines := make([]string, 0, 2*height-1)

	depth := 0
	for level := range levels[K](root, height) {
		nodeLine := newLine(l.width)
		var branchLine []byte
		if depth+1 < height {
			branchLine = newLine(l.width)
		}
		for idx, node := range level {
			if node == nil {
				continue
			}
			col := l.column(depth, idx)
			key := keyString(node.Key())
			start := col - len(key) + 1
			copy(nodeLine[start:], key)
			if branchLine == nil {
				continue
			}
			if node.Left() != nil {
				mid := (l.column(depth+1, 2*idx) + col) / 2
				branchLine[mid] = '/'
				for c := mid + 1; c < start; c++ {
					nodeLine[c] = '_'
				}
			}
			if node.Right() != nil {
				mid := (l.column(depth+1, 2*idx+1) + col) / 2
				branchLine[mid] = '\\'
				for c := col + 1; c < mid; c++ {
					nodeLine[c] = '_'
				}
			}
		}
		lines = append(lines, trimLine(nodeLine))
		if branchLine != nil {
			lines = append(lines, trimLine(branchLine))
		}
		depth++
	}
	return lines, nil
}

// Fprint writes the rendered lines to w, one per row.
func Fprint[K infra.OrderedKey](w io.Writer, root tree.Node[K]) error {
	lines, err := Render[K](root)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[treeprint] write line")
		}
	}
	return nil
}

// Snapshot is a detached copy of the node views, used for dumps.
type Snapshot[K infra.OrderedKey] struct {
	Key    K
	Height int
	Left   *Snapshot[K]
	Right  *Snapshot[K]
}

func Snap[K infra.OrderedKey](root tree.Node[K]) *Snapshot[K] {
	if root == nil {
		return nil
	}
	return &Snapshot[K]{
		Key:    root.Key(),
		Height: root.Height(),
		Left:   Snap[K](root.Left()),
		Right:  Snap[K](root.Right()),
	}
}
