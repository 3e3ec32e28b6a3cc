// Package board implements the topology engine shared by every game: one
// concrete graph per supported board family, all answering the same
// coordinate, adjacency, ray and enumeration queries.
//
// Each topology is backed by a label-keyed adjacency arena built once at
// construction. Vertex pruning is a map deletion plus removal from every
// neighbour list, so no dangling references can survive.
package board

import "fmt"

// Direction is a compass-style step label. Each topology family supports a
// fixed subset.
type Direction string

const (
	N  Direction = "N"
	NE Direction = "NE"
	E  Direction = "E"
	SE Direction = "SE"
	S  Direction = "S"
	SW Direction = "SW"
	W  Direction = "W"
	NW Direction = "NW"
)

// Graph is the capability set every topology implements. Implementations
// are chosen once at construction and never swapped mid-game.
type Graph interface {
	// Algebraic2Coords parses a cell label into (col, row). Fails with a
	// StructuralError for labels outside the grammar or bounds.
	Algebraic2Coords(cell string) (int, int, error)
	// Coords2Algebraic is the exact inverse of Algebraic2Coords.
	Coords2Algebraic(col, row int) (string, error)
	// Neighbours returns the adjacent cell labels. The arena is the sole
	// source of truth; degree varies per cell.
	Neighbours(cell string) ([]string, error)
	// Ray walks from (col, row) in one direction until the boundary or a
	// pruned cell. The result excludes the start and is proximity
	// ascending.
	Ray(col, row int, dir Direction) ([][2]int, error)
	// ListCells returns every live cell in a deterministic flat order.
	ListCells() []string
	// ListCellsOrdered returns the cells as visual rows, ragged where the
	// topology calls for it.
	ListCellsOrdered() [][]string
	// DropNode permanently removes a cell. Irreversible for the lifetime
	// of the instance.
	DropNode(cell string) error
	// Directions returns the family's closed direction set, nil when the
	// topology has no compass directions.
	Directions() []Direction
	// Degree returns the live neighbour count of a cell.
	Degree(cell string) (int, error)
}

// StructuralError reports malformed or out-of-domain coordinate input: an
// unparsable label, an out-of-bounds coordinate, or a direction the
// topology does not support.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return e.Msg }

func structuralf(format string, args ...any) *StructuralError {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a query against a cell that is not in the arena,
// typically because it was pruned.
type NotFoundError struct {
	Cell string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cell %s is not on the board", e.Cell)
}

// cellRec is one arena entry: the cell's coordinates plus its live
// neighbour labels.
type cellRec struct {
	col, row   int
	neighbours []string
}

// arena is the label-keyed adjacency map backing every topology.
type arena struct {
	cells map[string]*cellRec
	order []string
}

func newArena() *arena {
	return &arena{cells: make(map[string]*cellRec)}
}

func (a *arena) add(label string, col, row int) {
	a.cells[label] = &cellRec{col: col, row: row}
	a.order = append(a.order, label)
}

func (a *arena) has(label string) bool {
	_, ok := a.cells[label]
	return ok
}

// link adds a bidirectional edge between two cells.
func (a *arena) link(c1, c2 string) {
	if !contains(a.cells[c1].neighbours, c2) {
		a.cells[c1].neighbours = append(a.cells[c1].neighbours, c2)
	}
	if !contains(a.cells[c2].neighbours, c1) {
		a.cells[c2].neighbours = append(a.cells[c2].neighbours, c1)
	}
}

// linkDirected adds a one-way edge, used by topologies that declare
// directed adjacency.
func (a *arena) linkDirected(from, to string) {
	if !contains(a.cells[from].neighbours, to) {
		a.cells[from].neighbours = append(a.cells[from].neighbours, to)
	}
}

func (a *arena) neighbours(label string) ([]string, error) {
	rec, ok := a.cells[label]
	if !ok {
		return nil, &NotFoundError{Cell: label}
	}
	out := make([]string, len(rec.neighbours))
	copy(out, rec.neighbours)
	return out, nil
}

func (a *arena) adjacent(c1, c2 string) bool {
	rec, ok := a.cells[c1]
	if !ok {
		return false
	}
	return contains(rec.neighbours, c2)
}

// drop removes a cell and scrubs it from every neighbour list, including
// the lists of directed predecessors.
func (a *arena) drop(label string) error {
	if _, ok := a.cells[label]; !ok {
		return &NotFoundError{Cell: label}
	}
	delete(a.cells, label)
	for _, rec := range a.cells {
		rec.neighbours = remove(rec.neighbours, label)
	}
	for i, l := range a.order {
		if l == label {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return nil
}

func (a *arena) list() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

func contains(slice []string, item string) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

func remove(slice []string, item string) []string {
	for i, v := range slice {
		if v == item {
			return append(slice[:i], slice[i+1:]...)
		}
	}
	return slice
}

// columnLabel converts a zero-based column index to its letter form:
// 0 -> "a", 25 -> "z", 26 -> "aa".
func columnLabel(col int) string {
	label := ""
	for {
		label = string(rune('a'+col%26)) + label
		col = col/26 - 1
		if col < 0 {
			break
		}
	}
	return label
}

// parseCell splits a label into its letter prefix and the zero-based
// column index it encodes, plus the numeric suffix.
func parseCell(cell string) (col int, num int, err error) {
	i := 0
	for i < len(cell) && cell[i] >= 'a' && cell[i] <= 'z' {
		i++
	}
	if i == 0 || i == len(cell) {
		return 0, 0, structuralf("malformed cell label %q", cell)
	}
	for _, ch := range cell[:i] {
		col = col*26 + int(ch-'a') + 1
	}
	col--
	for _, ch := range cell[i:] {
		if ch < '0' || ch > '9' {
			return 0, 0, structuralf("malformed cell label %q", cell)
		}
		num = num*10 + int(ch-'0')
	}
	if num == 0 || cell[i] == '0' {
		return 0, 0, structuralf("malformed cell label %q", cell)
	}
	return col, num, nil
}
