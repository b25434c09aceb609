package dodger

import "github.com/vovakirdan/triangle-dodger/internal/core"

// ResolveObstacleCollisions runs the pairwise sweep over all obstacles and
// returns the contact point (midpoint of the two centres) of every resolved
// pair.
//
// Approaching pairs exchange an equal-mass impulse along the contact normal
// scaled by restitution, so a head-on pair leaves with swapped, damped normal
// velocities. Pairs already moving apart are skipped. Overlapping pairs are
// pushed apart by half the overlap each. Coincident centres have no normal,
// so they get neither impulse nor separation.
//
// The sweep is O(n²); obstacle counts stay in the tens.
func ResolveObstacleCollisions(obstacles []*Obstacle, restitution float64) []core.Vec2 {
	var contacts []core.Vec2
	for i := 0; i < len(obstacles); i++ {
		for j := i + 1; j < len(obstacles); j++ {
			a, b := obstacles[i], obstacles[j]
			if !a.Bounds().Intersects(b.Bounds()) {
				continue
			}

			delta := b.Pos.Sub(a.Pos)
			dist := delta.Len()
			normal := delta.Normalize()

			closing := b.Vel.Sub(a.Vel).Dot(normal)
			if closing > 0 {
				continue
			}
			if closing < 0 {
				impulse := normal.Scale(-(1 + restitution) * closing / 2)
				a.Vel = a.Vel.Sub(impulse)
				b.Vel = b.Vel.Add(impulse)
			}

			contact := a.Pos.Add(b.Pos).Scale(0.5)
			if overlap := a.Radius + b.Radius - dist; overlap > 0 && dist > 0 {
				push := normal.Scale(overlap / 2)
				a.Pos = a.Pos.Sub(push)
				b.Pos = b.Pos.Add(push)
			}
			contacts = append(contacts, contact)
		}
	}
	return contacts
}

// FirstHit returns the index of the first obstacle whose bounds intersect
// the given box, or -1.
func FirstHit(bounds core.Rect, obstacles []*Obstacle) int {
	for i, o := range obstacles {
		if bounds.Intersects(o.Bounds()) {
			return i
		}
	}
	return -1
}
