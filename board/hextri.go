package board

import "strconv"

// HexTri is a hexagon-shaped board of triangular-lattice cells. Row widths
// grow from minWidth at the top to maxWidth in the middle and shrink back,
// giving the ragged rows of the usual hex board drawing. Labels are a row
// letter ("a" at the top) plus a 1-based position within the row.
type HexTri struct {
	minWidth, maxWidth int
	arena              *arena
}

var hexDirections = []Direction{NE, E, SE, SW, W, NW}

// NewHexTri builds a hexagonal topology from its top-row and middle-row
// widths.
func NewHexTri(minWidth, maxWidth int) (*HexTri, error) {
	if minWidth < 2 || maxWidth <= minWidth {
		return nil, structuralf("invalid hex widths %d..%d", minWidth, maxWidth)
	}
	g := &HexTri{minWidth: minWidth, maxWidth: maxWidth, arena: newArena()}
	for row := 0; row < g.rows(); row++ {
		for col := 0; col < g.rowWidth(row); col++ {
			cell, _ := g.Coords2Algebraic(col, row)
			g.arena.add(cell, col, row)
		}
	}
	for row := 0; row < g.rows(); row++ {
		for col := 0; col < g.rowWidth(row); col++ {
			from, _ := g.Coords2Algebraic(col, row)
			for _, dir := range hexDirections {
				nc, nr, ok := g.step(col, row, dir)
				if ok {
					to, _ := g.Coords2Algebraic(nc, nr)
					g.arena.link(from, to)
				}
			}
		}
	}
	return g, nil
}

func (g *HexTri) rows() int {
	return 2*(g.maxWidth-g.minWidth) + 1
}

func (g *HexTri) rowWidth(row int) int {
	mid := g.maxWidth - g.minWidth
	d := row - mid
	if d < 0 {
		d = -d
	}
	return g.maxWidth - d
}

func (g *HexTri) inBounds(col, row int) bool {
	return row >= 0 && row < g.rows() && col >= 0 && col < g.rowWidth(row)
}

// step applies one direction, honouring the half-cell shift between rows
// of different widths. Adjacent rows always differ in width.
func (g *HexTri) step(col, row int, dir Direction) (int, int, bool) {
	nc, nr := col, row
	switch dir {
	case E:
		nc = col + 1
	case W:
		nc = col - 1
	case NE, NW:
		nr = row - 1
		if nr < 0 {
			return 0, 0, false
		}
		if g.rowWidth(nr) > g.rowWidth(row) {
			if dir == NE {
				nc = col + 1
			}
		} else {
			if dir == NW {
				nc = col - 1
			}
		}
	case SE, SW:
		nr = row + 1
		if nr >= g.rows() {
			return 0, 0, false
		}
		if g.rowWidth(nr) > g.rowWidth(row) {
			if dir == SE {
				nc = col + 1
			}
		} else {
			if dir == SW {
				nc = col - 1
			}
		}
	default:
		return 0, 0, false
	}
	if !g.inBounds(nc, nr) {
		return 0, 0, false
	}
	return nc, nr, true
}

func (g *HexTri) Directions() []Direction {
	dirs := make([]Direction, len(hexDirections))
	copy(dirs, hexDirections)
	return dirs
}

func (g *HexTri) supports(dir Direction) bool {
	for _, d := range hexDirections {
		if d == dir {
			return true
		}
	}
	return false
}

func (g *HexTri) Algebraic2Coords(cell string) (int, int, error) {
	row, num, err := parseCell(cell)
	if err != nil {
		return 0, 0, err
	}
	if !g.inBounds(num-1, row) {
		return 0, 0, structuralf("cell %q is outside the hex board", cell)
	}
	return num - 1, row, nil
}

func (g *HexTri) Coords2Algebraic(col, row int) (string, error) {
	if !g.inBounds(col, row) {
		return "", structuralf("coordinates (%d,%d) are outside the hex board", col, row)
	}
	return columnLabel(row) + strconv.Itoa(col+1), nil
}

func (g *HexTri) Neighbours(cell string) ([]string, error) {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return nil, err
	}
	return g.arena.neighbours(cell)
}

func (g *HexTri) Degree(cell string) (int, error) {
	ns, err := g.Neighbours(cell)
	if err != nil {
		return 0, err
	}
	return len(ns), nil
}

func (g *HexTri) Ray(col, row int, dir Direction) ([][2]int, error) {
	start, err := g.Coords2Algebraic(col, row)
	if err != nil {
		return nil, err
	}
	if !g.supports(dir) {
		return nil, structuralf("direction %s is not supported by a hex board", dir)
	}
	if !g.arena.has(start) {
		return nil, &NotFoundError{Cell: start}
	}
	ray := [][2]int{}
	prev := start
	c, r := col, row
	for {
		nc, nr, ok := g.step(c, r, dir)
		if !ok {
			break
		}
		next, _ := g.Coords2Algebraic(nc, nr)
		if !g.arena.adjacent(prev, next) {
			break
		}
		ray = append(ray, [2]int{nc, nr})
		prev = next
		c, r = nc, nr
	}
	return ray, nil
}

func (g *HexTri) ListCells() []string {
	return g.arena.list()
}

// ListCellsOrdered returns the ragged visual rows, top to bottom.
func (g *HexTri) ListCellsOrdered() [][]string {
	rows := make([][]string, 0, g.rows())
	for row := 0; row < g.rows(); row++ {
		var cells []string
		for col := 0; col < g.rowWidth(row); col++ {
			cell, _ := g.Coords2Algebraic(col, row)
			if g.arena.has(cell) {
				cells = append(cells, cell)
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

func (g *HexTri) DropNode(cell string) error {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return err
	}
	return g.arena.drop(cell)
}
