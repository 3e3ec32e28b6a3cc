package board

import "strconv"

// SnubSquare is a square lattice overlaid with alternating triangle edges:
// every cell keeps its 4 orthogonal neighbours, and cells with even
// (col+row) parity additionally link along the NE and SW diagonals. Labels
// follow the RectGrid grammar.
type SnubSquare struct {
	width, height int
	arena         *arena
}

var snubDirections = []Direction{N, NE, E, S, SW, W}

// NewSnubSquare builds a snub-square topology of the given size.
func NewSnubSquare(width, height int) (*SnubSquare, error) {
	if width < 2 || height < 2 {
		return nil, structuralf("invalid snub grid size %dx%d", width, height)
	}
	g := &SnubSquare{width: width, height: height, arena: newArena()}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.arena.add(columnLabel(col)+strconv.Itoa(row+1), col, row)
		}
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			from, _ := g.Coords2Algebraic(col, row)
			for _, dir := range snubDirections {
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

func (g *SnubSquare) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// step applies one direction. The diagonals only exist on even-parity
// cells, which keeps the triangle edges symmetric: the NE neighbour of an
// even cell is itself even.
func (g *SnubSquare) step(col, row int, dir Direction) (int, int, bool) {
	nc, nr := col, row
	switch dir {
	case N:
		nr = row + 1
	case S:
		nr = row - 1
	case E:
		nc = col + 1
	case W:
		nc = col - 1
	case NE:
		if (col+row)%2 != 0 {
			return 0, 0, false
		}
		nc, nr = col+1, row+1
	case SW:
		if (col+row)%2 != 0 {
			return 0, 0, false
		}
		nc, nr = col-1, row-1
	default:
		return 0, 0, false
	}
	if !g.inBounds(nc, nr) {
		return 0, 0, false
	}
	return nc, nr, true
}

func (g *SnubSquare) Directions() []Direction {
	dirs := make([]Direction, len(snubDirections))
	copy(dirs, snubDirections)
	return dirs
}

func (g *SnubSquare) supports(dir Direction) bool {
	for _, d := range snubDirections {
		if d == dir {
			return true
		}
	}
	return false
}

func (g *SnubSquare) Algebraic2Coords(cell string) (int, int, error) {
	col, num, err := parseCell(cell)
	if err != nil {
		return 0, 0, err
	}
	if !g.inBounds(col, num-1) {
		return 0, 0, structuralf("cell %q is outside the %dx%d board", cell, g.width, g.height)
	}
	return col, num - 1, nil
}

func (g *SnubSquare) Coords2Algebraic(col, row int) (string, error) {
	if !g.inBounds(col, row) {
		return "", structuralf("coordinates (%d,%d) are outside the %dx%d board", col, row, g.width, g.height)
	}
	return columnLabel(col) + strconv.Itoa(row+1), nil
}

func (g *SnubSquare) Neighbours(cell string) ([]string, error) {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return nil, err
	}
	return g.arena.neighbours(cell)
}

func (g *SnubSquare) Degree(cell string) (int, error) {
	ns, err := g.Neighbours(cell)
	if err != nil {
		return 0, err
	}
	return len(ns), nil
}

// Ray follows a direction for as long as every step stays adjacent, so NE
// and SW rays ride the triangle diagonals from even-parity cells and stop
// immediately elsewhere.
func (g *SnubSquare) Ray(col, row int, dir Direction) ([][2]int, error) {
	start, err := g.Coords2Algebraic(col, row)
	if err != nil {
		return nil, err
	}
	if !g.supports(dir) {
		return nil, structuralf("direction %s is not supported by a snub square board", dir)
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

func (g *SnubSquare) ListCells() []string {
	return g.arena.list()
}

func (g *SnubSquare) ListCellsOrdered() [][]string {
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

func (g *SnubSquare) DropNode(cell string) error {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return err
	}
	return g.arena.drop(cell)
}
