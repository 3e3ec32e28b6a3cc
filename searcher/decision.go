package searcher

// decision is one search-tree node: the move that reached it, the player
// who made that move, and the statistics collected below it.
type decision struct {
	parent   *decision
	move     string
	mover    int
	untried  []string
	children []*decision
	rewards  float64
	visits   int
}

func newDecision(parent *decision, move string, mover int, moves []string) *decision {
	untried := make([]string, len(moves))
	copy(untried, moves)
	return &decision{
		parent:  parent,
		move:    move,
		mover:   mover,
		untried: untried,
	}
}

// selectChild picks the child with the best UCT score.
func (d *decision) selectChild() *decision {
	policy := newUCT(C_SQUARED, d.visits)
	best := d.children[0]
	bestScore := policy.evaluate(best.rewards, float64(best.visits))
	for _, child := range d.children[1:] {
		score := policy.evaluate(child.rewards, float64(child.visits))
		if score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// update folds one episode outcome into the node's statistics.
func (d *decision) update(reward func(player int) float64) {
	d.visits++
	if d.mover > 0 {
		d.rewards += reward(d.mover)
	}
}

// bestMove returns the most visited move below the root, the standard
// robust-child criterion.
func (d *decision) bestMove() string {
	best := ""
	visits := -1
	for _, child := range d.children {
		if child.visits > visits {
			best = child.move
			visits = child.visits
		}
	}
	return best
}
