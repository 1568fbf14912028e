package obj

import "github.com/jakecoffman/cp"

// CirclesOverlap reports whether two circle hitboxes intersect.
func CirclesOverlap(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	r := ra + rb
	d := a.Sub(b)
	return d.Dot(d) <= r*r
}

// ElasticImpulse resolves an equal-mass collision between two bodies and
// returns their new velocities. The impulse only applies when the bodies are
// closing; separating bodies pass through unchanged.
func ElasticImpulse(posA, velA, posB, velB cp.Vector, restitution float64) (cp.Vector, cp.Vector) {
	n := posA.Sub(posB)
	dist := n.Length()
	if dist == 0 {
		return velA, velB
	}
	n = n.Mult(1 / dist)

	rel := velA.Sub(velB).Dot(n)
	if rel >= 0 {
		return velA, velB
	}

	impulse := -(1 + restitution) * rel / 2
	return velA.Add(n.Mult(impulse)), velB.Sub(n.Mult(impulse))
}
