// Package geometry provides the stateless numeric helpers shared by the
// topology engine and rendering collaborators: distances, bearings, angle
// normalization, layout rotation, and circle approximation.
package geometry

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormDeg normalizes an angle in degrees into [0, 360).
func NormDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SmallestDeg returns the smallest absolute difference between two angles,
// always in [0, 180].
func SmallestDeg(a, b float64) float64 {
	d := math.Abs(NormDeg(a) - NormDeg(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Midpoint returns the midpoint of the segment between two points.
func Midpoint(x1, y1, x2, y2 float64) (float64, float64) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}

// Bearing returns the compass bearing in degrees from one point to another,
// with 0 pointing north (negative y) and angles growing clockwise.
func Bearing(fx, fy, tx, ty float64) float64 {
	return NormDeg(Rad2Deg(math.Atan2(tx-fx, fy-ty)))
}

// Project returns the point reached by travelling dist from (x,y) along the
// given compass bearing. Inverse of Bearing for dist > 0.
func Project(x, y, bearing, dist float64) (float64, float64) {
	rad := Deg2Rad(bearing)
	return x + dist*math.Sin(rad), y - dist*math.Cos(rad)
}

// DistFromCircle returns the distance from a point to the edge of a circle.
// Negative when the point lies inside the circle.
func DistFromCircle(px, py, cx, cy, r float64) float64 {
	return Distance(px, py, cx, cy) - r
}

// CirclePoly approximates a circle as a polygon with the given number of
// vertices, starting at the top and proceeding clockwise.
func CirclePoly(cx, cy, r float64, steps int) [][2]float64 {
	if steps < 3 {
		steps = 3
	}
	poly := make([][2]float64, steps)
	for i := 0; i < steps; i++ {
		x, y := Project(cx, cy, float64(i)*360/float64(steps), r)
		poly[i] = [2]float64{x, y}
	}
	return poly
}

// TransposeGrid flips a rectangular layout across its main diagonal.
func TransposeGrid[T any](grid [][]T) [][]T {
	if len(grid) == 0 {
		return nil
	}
	rows := len(grid)
	cols := len(grid[0])
	out := make([][]T, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]T, rows)
		for r := 0; r < rows; r++ {
			out[c][r] = grid[r][c]
		}
	}
	return out
}

// RotateGrid rotates a rectangular layout a quarter turn, clockwise or
// counterclockwise. Four rotations in the same direction restore the
// original layout.
func RotateGrid[T any](grid [][]T, clockwise bool) [][]T {
	if len(grid) == 0 {
		return nil
	}
	rows := len(grid)
	cols := len(grid[0])
	out := make([][]T, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]T, rows)
		for r := 0; r < rows; r++ {
			if clockwise {
				out[c][r] = grid[rows-1-r][c]
			} else {
				out[c][r] = grid[r][cols-1-c]
			}
		}
	}
	return out
}
