package dodger

import (
	"testing"

	"github.com/vovakirdan/triangle-dodger/internal/core"
)

func TestOverlapSeparationScenario(t *testing.T) {
	a := &Obstacle{Pos: core.V(100, 100), Vel: core.V(0, 300), Radius: 15}
	b := &Obstacle{Pos: core.V(110, 100), Vel: core.V(0, 300), Radius: 15}

	contacts := ResolveObstacleCollisions([]*Obstacle{a, b}, 0.8)

	if len(contacts) != 1 || !nearVec(contacts[0], core.V(105, 100)) {
		t.Fatalf("contacts = %v, expected one at (105, 100)", contacts)
	}
	// overlap = 15+15-10 = 20, half each way
	if !nearVec(a.Pos, core.V(90, 100)) || !nearVec(b.Pos, core.V(120, 100)) {
		t.Errorf("positions = %v, %v, expected (90,100), (120,100)", a.Pos, b.Pos)
	}
	if a.Vel != core.V(0, 300) || b.Vel != core.V(0, 300) {
		t.Errorf("velocities changed to %v, %v, expected no impulse", a.Vel, b.Vel)
	}
}

func TestOverlapScenarioSpawnsOneBurst(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())
	g.obstacles = []*Obstacle{
		{Pos: core.V(100, 100), Radius: 15},
		{Pos: core.V(110, 100), Radius: 15},
	}

	g.Update(0, Controls{})

	if n := g.explosions.Len(); n != 15 {
		t.Fatalf("explosion particles = %d, expected 15", n)
	}
	for _, p := range g.explosions.Particles() {
		if !nearVec(p.Pos, core.V(105, 100)) {
			t.Errorf("particle at %v, expected burst at (105, 100)", p.Pos)
		}
	}
}

func TestHeadOnCollisionSwapsAndDamps(t *testing.T) {
	a := &Obstacle{Pos: core.V(100, 100), Vel: core.V(100, 0), Radius: 15}
	b := &Obstacle{Pos: core.V(120, 100), Vel: core.V(-100, 0), Radius: 15}

	ResolveObstacleCollisions([]*Obstacle{a, b}, 0.8)

	if !nearVec(a.Vel, core.V(-80, 0)) || !nearVec(b.Vel, core.V(80, 0)) {
		t.Errorf("velocities = %v, %v, expected (-80,0), (80,0)", a.Vel, b.Vel)
	}
}

func TestImpulseOnlyAlongNormal(t *testing.T) {
	// Same fall speed, approaching sideways: the y components are untouched.
	a := &Obstacle{Pos: core.V(100, 100), Vel: core.V(50, 300), Radius: 15}
	b := &Obstacle{Pos: core.V(120, 100), Vel: core.V(-50, 300), Radius: 15}

	ResolveObstacleCollisions([]*Obstacle{a, b}, 0.8)

	if !near(a.Vel.Y, 300) || !near(b.Vel.Y, 300) {
		t.Errorf("tangential components changed: %v, %v", a.Vel, b.Vel)
	}
	if !near(a.Vel.X, -40) || !near(b.Vel.X, 40) {
		t.Errorf("normal components = %f, %f, expected -40, 40", a.Vel.X, b.Vel.X)
	}
}

func TestSeparatingPairIsSkipped(t *testing.T) {
	a := &Obstacle{Pos: core.V(100, 100), Vel: core.V(-50, 0), Radius: 15}
	b := &Obstacle{Pos: core.V(110, 100), Vel: core.V(50, 0), Radius: 15}

	contacts := ResolveObstacleCollisions([]*Obstacle{a, b}, 0.8)

	if len(contacts) != 0 {
		t.Errorf("contacts = %v, expected none", contacts)
	}
	if a.Vel != core.V(-50, 0) || b.Vel != core.V(50, 0) {
		t.Errorf("velocities changed to %v, %v", a.Vel, b.Vel)
	}
	if a.Pos != core.V(100, 100) || b.Pos != core.V(110, 100) {
		t.Errorf("positions changed to %v, %v", a.Pos, b.Pos)
	}
}

func TestCoincidentCentres(t *testing.T) {
	a := &Obstacle{Pos: core.V(100, 100), Vel: core.V(0, 200), Radius: 15}
	b := &Obstacle{Pos: core.V(100, 100), Vel: core.V(0, 400), Radius: 20}

	contacts := ResolveObstacleCollisions([]*Obstacle{a, b}, 0.8)

	if len(contacts) != 1 {
		t.Fatalf("contacts = %v, expected one", contacts)
	}
	if a.Pos != b.Pos || a.Vel != core.V(0, 200) || b.Vel != core.V(0, 400) {
		t.Errorf("coincident pair should be untouched, got %+v %+v", a, b)
	}
}

func TestDistantPairsIgnored(t *testing.T) {
	a := &Obstacle{Pos: core.V(60, 100), Vel: core.V(0, 300), Radius: 35}
	b := &Obstacle{Pos: core.V(400, 100), Vel: core.V(0, 300), Radius: 35}
	if contacts := ResolveObstacleCollisions([]*Obstacle{a, b}, 0.8); len(contacts) != 0 {
		t.Errorf("contacts = %v, expected none", contacts)
	}
}

func TestFirstHit(t *testing.T) {
	obs := []*Obstacle{
		{Pos: core.V(10, 10), Radius: 5},
		{Pos: core.V(100, 100), Radius: 10},
		{Pos: core.V(105, 100), Radius: 10},
	}
	if i := FirstHit(core.NewRect(95, 95, 10, 10), obs); i != 1 {
		t.Errorf("FirstHit() = %d, expected 1", i)
	}
	if i := FirstHit(core.NewRect(300, 300, 10, 10), obs); i != -1 {
		t.Errorf("FirstHit() = %d, expected -1", i)
	}
}
