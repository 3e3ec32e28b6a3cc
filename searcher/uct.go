package searcher

import "math"

// uct is the UCB1 selection policy for one fully expanded node.
type uct struct {
	c2LnN float64
}

func newUCT(c2 float64, parentVisits int) uct {
	if parentVisits == 0 {
		panic("node has children but no visits")
	}
	return uct{c2LnN: c2 * math.Log(float64(parentVisits))}
}

// evaluate computes q/n + sqrt(c^2*ln(N)/n) for one child.
func (p uct) evaluate(rewards, visits float64) float64 {
	if visits == 0 {
		panic("child node has no visits")
	}
	return rewards/visits + math.Sqrt(p.c2LnN/visits)
}
