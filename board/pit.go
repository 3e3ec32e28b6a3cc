package board

import "strconv"

// Pit is a non-grid sowing board: two rows of pits joined into a single
// counterclockwise cycle, optionally with an end store at each side.
// Adjacency is explicitly directed: the sole neighbour of a pit is its
// cycle successor, and that relation is the only source of truth for
// traversal. Compass directions and rays do not apply.
//
// Labels: "a1".."aN" run left to right along the bottom row, "b1".."bN"
// along the top row; the stores are "s1" (right) and "s2" (left). Sowing
// order is a1..aN, s1, bN..b1, s2, back to a1.
type Pit struct {
	pits   int
	stores bool
	arena  *arena
}

// NewPit builds a pit topology with the given number of pits per row.
func NewPit(pitsPerRow int, stores bool) (*Pit, error) {
	if pitsPerRow < 2 {
		return nil, structuralf("invalid pit count %d", pitsPerRow)
	}
	g := &Pit{pits: pitsPerRow, stores: stores, arena: newArena()}
	cycle := make([]string, 0, 2*pitsPerRow+2)
	for col := 0; col < pitsPerRow; col++ {
		label := "a" + strconv.Itoa(col+1)
		g.arena.add(label, col, 0)
		cycle = append(cycle, label)
	}
	if stores {
		g.arena.add("s1", 0, 2)
		cycle = append(cycle, "s1")
	}
	for col := pitsPerRow - 1; col >= 0; col-- {
		label := "b" + strconv.Itoa(col+1)
		g.arena.add(label, col, 1)
		cycle = append(cycle, label)
	}
	if stores {
		g.arena.add("s2", 1, 2)
		cycle = append(cycle, "s2")
	}
	for i, from := range cycle {
		g.arena.linkDirected(from, cycle[(i+1)%len(cycle)])
	}
	return g, nil
}

func (g *Pit) inBounds(col, row int) bool {
	switch row {
	case 0, 1:
		return col >= 0 && col < g.pits
	case 2:
		return g.stores && (col == 0 || col == 1)
	}
	return false
}

// Directions returns nil: a pit board has no compass directions.
func (g *Pit) Directions() []Direction { return nil }

func (g *Pit) Algebraic2Coords(cell string) (int, int, error) {
	row, num, err := parseCell(cell)
	if err != nil {
		return 0, 0, err
	}
	switch row {
	case 0, 1: // a, b
	case 's' - 'a':
		row = 2
	default:
		return 0, 0, structuralf("cell %q is not a pit or store", cell)
	}
	if !g.inBounds(num-1, row) {
		return 0, 0, structuralf("cell %q is outside the pit board", cell)
	}
	return num - 1, row, nil
}

func (g *Pit) Coords2Algebraic(col, row int) (string, error) {
	if !g.inBounds(col, row) {
		return "", structuralf("coordinates (%d,%d) are outside the pit board", col, row)
	}
	prefix := "a"
	switch row {
	case 1:
		prefix = "b"
	case 2:
		prefix = "s"
	}
	return prefix + strconv.Itoa(col+1), nil
}

// Neighbours returns the single cycle successor of a pit.
func (g *Pit) Neighbours(cell string) ([]string, error) {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return nil, err
	}
	return g.arena.neighbours(cell)
}

func (g *Pit) Degree(cell string) (int, error) {
	ns, err := g.Neighbours(cell)
	if err != nil {
		return 0, err
	}
	return len(ns), nil
}

// Ray is not supported on a pit board.
func (g *Pit) Ray(col, row int, dir Direction) ([][2]int, error) {
	return nil, structuralf("rays are not supported by a pit board")
}

func (g *Pit) ListCells() []string {
	return g.arena.list()
}

// ListCellsOrdered returns the visual layout: top row, then bottom row,
// with the stores on their own row when present.
func (g *Pit) ListCellsOrdered() [][]string {
	var top, bottom []string
	for col := 0; col < g.pits; col++ {
		if cell := "b" + strconv.Itoa(col+1); g.arena.has(cell) {
			top = append(top, cell)
		}
		if cell := "a" + strconv.Itoa(col+1); g.arena.has(cell) {
			bottom = append(bottom, cell)
		}
	}
	rows := [][]string{top, bottom}
	if g.stores {
		var s []string
		for _, cell := range []string{"s2", "s1"} {
			if g.arena.has(cell) {
				s = append(s, cell)
			}
		}
		rows = append(rows, s)
	}
	return rows
}

func (g *Pit) DropNode(cell string) error {
	if _, _, err := g.Algebraic2Coords(cell); err != nil {
		return err
	}
	return g.arena.drop(cell)
}
