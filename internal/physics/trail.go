package physics

import "github.com/san-kum/gravsim/internal/dynamo"

// TrailCapacity is the ring buffer size for particle trails.
const TrailCapacity = 30

// Trail is a fixed-capacity ring of recent positions. Appending to a full
// trail overwrites the oldest entry.
type Trail struct {
	points [TrailCapacity]dynamo.Vec2
	head   int // next write index
	n      int // valid entries (0..TrailCapacity)
}

func (t *Trail) Push(p dynamo.Vec2) {
	t.points[t.head] = p
	t.head = (t.head + 1) % TrailCapacity
	if t.n < TrailCapacity {
		t.n++
	}
}

func (t *Trail) Len() int { return t.n }

func (t *Trail) Cap() int { return TrailCapacity }

// Latest returns the most recently pushed point.
func (t *Trail) Latest() (dynamo.Vec2, bool) {
	if t.n == 0 {
		return dynamo.Vec2{}, false
	}
	return t.points[(t.head-1+TrailCapacity)%TrailCapacity], true
}

// Points returns the trail ordered oldest to newest.
func (t *Trail) Points() []dynamo.Vec2 {
	out := make([]dynamo.Vec2, t.n)
	start := (t.head - t.n + TrailCapacity) % TrailCapacity
	for i := 0; i < t.n; i++ {
		out[i] = t.points[(start+i)%TrailCapacity]
	}
	return out
}

func (t *Trail) Reset() {
	t.head, t.n = 0, 0
}
