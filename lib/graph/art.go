package graph

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

const artRadius = 10

type point struct {
	x, y int
}

// Every vertex sits on a circle of artRadius rows, a row cell is two
// characters wide so the circle keeps its aspect ratio.
func (adj *adjacency[E]) art(label func(e E) string) []string {
	diameter := 2*artRadius + 1
	grid := make([][]byte, diameter)
	for i := range grid {
		grid[i] = bytes.Repeat([]byte{' '}, diameter*2)
	}

	order := len(adj.lists)
	positions := make([]point, order)
	for v := range positions {
		angle := 2.0 * math.Pi * float64(v) / float64(order)
		positions[v] = point{
			x: artRadius + int(artRadius*math.Cos(angle)),
			y: artRadius + int(artRadius*math.Sin(angle)),
		}
	}

	for v, l := range adj.lists {
		for e := range l.Values() {
			from, to := positions[v], positions[adj.endpoint(e)]
			drawArrow(grid, from, to)
			if label == nil {
				continue
			}
			mid := point{x: (from.x + to.x) / 2, y: (from.y + to.y) / 2}
			copy(grid[mid.y][mid.x*2:], label(e))
		}
	}
	// Vertex markers are drawn last so no arrow hides them.
	for v, p := range positions {
		copy(grid[p.y][p.x*2:], "O"+strconv.Itoa(v))
	}

	lines := make([]string, 0, diameter)
	for _, row := range grid {
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	return lines
}

// drawArrow walks the Bresenham line from one vertex to the other.
func drawArrow(grid [][]byte, from, to point) {
	dx, dy := abs(to.x-from.x), abs(to.y-from.y)
	sx, sy := 1, 1
	if from.x >= to.x {
		sx = -1
	}
	if from.y >= to.y {
		sy = -1
	}
	err := dx - dy
	for x, y := from.x, from.y; x != to.x || y != to.y; {
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		if x != to.x || y != to.y {
			grid[y][x*2] = '-'
		}
	}
	grid[to.y][to.x*2] = '>'
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
