package scene

import "github.com/go-gl/mathgl/mgl32"

// SubdivideLoop returns layers closed loops. Layer 0 is points itself and every
// following layer connects the midpoints of the previous layer's edges, including
// the closing edge from the last point back to the first.
func SubdivideLoop(points []mgl32.Vec2, layers int) [][]mgl32.Vec2 {
	if len(points) == 0 || layers <= 0 {
		return nil
	}
	out := make([][]mgl32.Vec2, 0, layers)
	cur := append([]mgl32.Vec2(nil), points...)
	for k := 0; k < layers; k++ {
		out = append(out, cur)
		cur = midpointLoop(cur)
	}
	return out
}

func midpointLoop(points []mgl32.Vec2) []mgl32.Vec2 {
	n := len(points)
	next := make([]mgl32.Vec2, n)
	for i := range points {
		next[i] = points[i].Add(points[(i+1)%n]).Mul(0.5)
	}
	return next
}

// Flatten concatenates loops for upload into a single dynamic buffer.
// The returned offsets give the first vertex of each loop.
func Flatten(loops [][]mgl32.Vec2) (points []mgl32.Vec2, offsets []int) {
	for _, loop := range loops {
		offsets = append(offsets, len(points))
		points = append(points, loop...)
	}
	return points, offsets
}
