package board

import "strconv"

// Mode selects the adjacency rule of a rectangular grid.
type Mode int

const (
	// Orth connects each cell to its 4 orthogonal neighbours.
	Orth Mode = iota
	// Diag additionally connects the 4 diagonal neighbours.
	Diag
)

// RectGrid is a width x height board with algebraic labels: column letters
// plus a 1-based row number, "a1" at the bottom-left.
type RectGrid struct {
	width, height int
	mode          Mode
	arena         *arena
}

var orthOffsets = map[Direction][2]int{
	N: {0, 1}, E: {1, 0}, S: {0, -1}, W: {-1, 0},
}

var diagOffsets = map[Direction][2]int{
	NE: {1, 1}, SE: {1, -1}, SW: {-1, -1}, NW: {-1, 1},
}

// NewRectGrid builds a rectangular topology. The arena and all edges are
// created up front; construction happens once per game instance.
func NewRectGrid(width, height int, mode Mode) (*RectGrid, error) {
	if width < 1 || height < 1 {
		return nil, structuralf("invalid grid size %dx%d", width, height)
	}
	g := &RectGrid{width: width, height: height, mode: mode, arena: newArena()}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.arena.add(columnLabel(col)+strconv.Itoa(row+1), col, row)
		}
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			from, _ := g.Coords2Algebraic(col, row)
			for _, dir := range g.Directions() {
				off := g.offset(dir)
				nc, nr := col+off[0], row+off[1]
				if g.inBounds(nc, nr) {
					to, _ := g.Coords2Algebraic(nc, nr)
					g.arena.link(from, to)
				}
			}
		}
	}
	return g, nil
}

func (g *RectGrid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

func (g *RectGrid) offset(dir Direction) [2]int {
	if off, ok := orthOffsets[dir]; ok {
		return off
	}
	return diagOffsets[dir]
}

// Directions returns the closed direction set: 4 for Orth, 8 for Diag.
func (g *RectGrid) Directions() []Direction {
	dirs := []Direction{N, E, S, W}
	if g.mode == Diag {
		dirs = []Direction{N, NE, E, SE, S, SW, W, NW}
	}
	return dirs
}

func (g *RectGrid) supports(dir Direction) bool {
	for _, d := range g.Directions() {
		if d == dir {
			return true
		}
	}
	return false
}

func (g *RectGrid) Algebraic2Coords(cell string) (int, int, error) {
	col, num, err := parseCell(cell)
	if err != nil {
		return 0, 0, err
	}
	if !g.inBounds(col, num-1) {
		return 0, 0, structuralf("cell %q is outside the %dx%d board", cell, g.width, g.height)
	}
	return col, num - 1, nil
}

func (g *RectGrid) Coords2Algebraic(col, row int) (string, error) {
	if !g.inBounds(col, row) {
		return "", structuralf("coordinates (%d,%d) are outside the %dx%d board", col, row, g.width, g.height)
	}
	return columnLabel(col) + strconv.Itoa(row+1), nil
}

func (g *RectGrid) Neighbours(cell string) ([]string, error) {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return nil, err
	}
	return g.arena.neighbours(cell)
}

func (g *RectGrid) Degree(cell string) (int, error) {
	ns, err := g.Neighbours(cell)
	if err != nil {
		return 0, err
	}
	return len(ns), nil
}

// Ray walks one direction until the edge of the board or a pruned cell.
func (g *RectGrid) Ray(col, row int, dir Direction) ([][2]int, error) {
	start, err := g.Coords2Algebraic(col, row)
	if err != nil {
		return nil, err
	}
	if !g.supports(dir) {
		return nil, structuralf("direction %s is not supported by this grid", dir)
	}
	if !g.arena.has(start) {
		return nil, &NotFoundError{Cell: start}
	}
	off := g.offset(dir)
	ray := [][2]int{}
	prev := start
	c, r := col, row
	for {
		c, r = c+off[0], r+off[1]
		if !g.inBounds(c, r) {
			break
		}
		next, _ := g.Coords2Algebraic(c, r)
		if !g.arena.adjacent(prev, next) {
			break
		}
		ray = append(ray, [2]int{c, r})
		prev = next
	}
	return ray, nil
}

func (g *RectGrid) ListCells() []string {
	return g.arena.list()
}

// ListCellsOrdered returns rows top to bottom, matching the visual layout.
func (g *RectGrid) ListCellsOrdered() [][]string {
	rows := make([][]string, 0, g.height)
	for row := g.height - 1; row >= 0; row-- {
		var cells []string
		for col := 0; col < g.width; col++ {
			cell, _ := g.Coords2Algebraic(col, row)
			if g.arena.has(cell) {
				cells = append(cells, cell)
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

func (g *RectGrid) DropNode(cell string) error {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return err
	}
	return g.arena.drop(cell)
}
