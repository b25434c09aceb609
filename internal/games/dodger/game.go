// Package dodger implements Triangle Dodger: the player steers a triangle
// around circles falling down a 480x853 world. Game holds the per-frame
// simulation; Session wraps it in the menu / playing / game-over flow.
package dodger

import (
	"github.com/vovakirdan/triangle-dodger/internal/config"
	"github.com/vovakirdan/triangle-dodger/internal/core"
)

// Controls is the polled movement input for one frame.
type Controls struct {
	Left, Right, Up, Down bool
}

// Moving reports whether any direction is held.
func (c Controls) Moving() bool {
	return c.Left || c.Right || c.Up || c.Down
}

// ControlsFrom reads held movement actions from an input frame.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Left:  in.IsHeld(core.ActionLeft),
		Right: in.IsHeld(core.ActionRight),
		Up:    in.IsHeld(core.ActionUp),
		Down:  in.IsHeld(core.ActionDown),
	}
}

// Game is one play session's simulation state.
type Game struct {
	cfg  config.DodgerConfig
	rng  core.Rand
	sink EventSink

	player     *Player
	obstacles  []*Obstacle
	explosions ParticleSystem
	trail      ParticleSystem
	background *Starfield
	shake      ScreenShake
	ramp       *SpeedRamp
	spawnClock float64

	score        int
	lives        int
	invulnerable bool
	invulnTime   float64
	over         bool

	hud     HUD
	frames  uint64
	elapsed float64
}

// NewGame creates a game ready to play. A nil sink discards events.
func NewGame(cfg config.DodgerConfig, rng core.Rand, sink EventSink) *Game {
	if sink == nil {
		sink = discardSink{}
	}
	g := &Game{
		cfg:        cfg,
		rng:        rng,
		sink:       sink,
		player:     NewPlayer(cfg),
		background: NewStarfield(cfg.World.Width, cfg.World.Height),
		ramp:       NewSpeedRamp(cfg.Speed),
	}
	g.Reset()
	return g
}

// Reset reinitializes every field to session-start values.
func (g *Game) Reset() {
	clear(g.obstacles)
	g.obstacles = g.obstacles[:0]
	g.explosions.Clear()
	g.trail.Clear()
	g.background.Reset(g.cfg.Effects.BackgroundParticles, g.rng)
	g.player.Reset()
	g.player.SetFlashing(false)
	g.shake.Reset()
	g.ramp.Reset()
	g.spawnClock = 0

	g.score = 0
	g.lives = g.cfg.Session.Lives
	g.invulnerable = false
	g.invulnTime = 0
	g.over = false

	g.frames = 0
	g.elapsed = 0
	g.hud.refresh(g.score, g.ramp.Speed, g.lives)
}

// Start resets the game and announces a new play-through.
func (g *Game) Start() {
	g.Reset()
	g.emit(EventSessionStarted, core.Vec2{})
}

// Update advances the world by dt seconds of wall-clock time. dt is not
// clamped here; the terminal frontend caps its own steps after a stall.
// Once the game is over Update does nothing until Reset.
func (g *Game) Update(dt float64, c Controls) {
	if g.over {
		return
	}
	g.frames++
	g.elapsed += dt

	g.updateSpeed(dt)

	g.shake.Update(dt, g.rng)
	g.explosions.Update(dt)
	g.trail.Update(dt)
	g.background.Update(dt, g.ramp.Speed*g.cfg.Effects.BackgroundScroll, g.rng)
	g.updateInvulnerability(dt)

	g.applyControls(dt, c)
	g.player.Update(dt)

	g.spawnClock += dt
	if g.spawnClock >= g.ramp.SpawnInterval {
		g.spawnObstacle()
		g.spawnClock = 0
	}

	for _, o := range g.obstacles {
		o.Update(dt)
	}

	g.removeOffscreen()
	for _, p := range ResolveObstacleCollisions(g.obstacles, g.cfg.Obstacles.Restitution) {
		g.explode(p)
		g.emit(EventObstacleCollision, p)
	}
	g.checkPlayerCollision()

	g.hud.refresh(g.score, g.ramp.Speed, g.lives)
}

// UpdateIdle animates only the background, at the fixed menu step.
func (g *Game) UpdateIdle() {
	g.background.Update(g.cfg.Effects.IdleStep, g.ramp.Speed*g.cfg.Effects.BackgroundScroll, g.rng)
}

func (g *Game) updateSpeed(dt float64) {
	if !g.ramp.Advance(dt) {
		return
	}
	if g.ramp.Overcharged() && !g.invulnerable {
		g.player.SetPowerState(PowerOvercharged, g.cfg.Speed.OverchargePulse)
	}
	g.emit(EventSpeedUp, core.Vec2{})
}

func (g *Game) updateInvulnerability(dt float64) {
	if !g.invulnerable {
		g.player.SetFlashing(false)
		return
	}
	g.invulnTime -= dt
	g.player.SetFlashing(true)
	if g.invulnTime <= 0 {
		g.invulnTime = 0
		g.invulnerable = false
		g.player.SetFlashing(false)
	}
}

func (g *Game) applyControls(dt float64, c Controls) {
	if c.Left {
		g.player.MoveLeft(dt)
		g.addTrail()
	}
	if c.Right {
		g.player.MoveRight(dt)
		g.addTrail()
	}
	if c.Up {
		g.player.MoveForward(dt)
		g.addTrail()
	}
	if c.Down {
		g.player.MoveBackward(dt)
		g.addTrail()
	}

	if c.Up && !g.invulnerable {
		g.player.SetPowerState(PowerSpeedBoost, g.cfg.Player.BoostPulse)
	}
	if !c.Moving() {
		g.player.TargetRotation = 0
	}
}

func (g *Game) addTrail() {
	life := g.cfg.Effects.TrailLife
	g.trail.Emit(Particle{Pos: g.player.Pos, Life: life, MaxLife: life})
}

func (g *Game) spawnObstacle() {
	oc := g.cfg.Obstacles
	pos := core.V(core.Uniform(g.rng, oc.SpawnMinX, oc.SpawnMaxX), oc.SpawnY)
	base := g.ramp.Speed * core.Uniform(g.rng, oc.MinSpeedFactor, oc.MaxSpeedFactor)
	o := NewObstacle(pos, base, g.ramp.Speed, oc, g.rng)
	g.obstacles = append(g.obstacles, o)
	g.emit(EventObstacleSpawned, pos)
}

func (g *Game) removeOffscreen() {
	kept := g.obstacles[:0]
	dodged := 0
	for _, o := range g.obstacles {
		if o.Offscreen(g.cfg.Obstacles.CullY) {
			dodged++
			continue
		}
		kept = append(kept, o)
	}
	clear(g.obstacles[len(kept):])
	g.obstacles = kept

	if dodged == 0 {
		return
	}
	g.score += dodged
	g.sink.OnEvent(Event{Kind: EventDodged, Count: dodged, Score: g.score, Lives: g.lives, Speed: g.ramp.Speed})

	s := g.cfg.Session
	if s.ChargingEvery > 0 && g.score%s.ChargingEvery == 0 {
		g.player.SetPowerState(PowerCharging, s.ChargingDuration)
	}
	if s.OverchargeEvery > 0 && g.score%s.OverchargeEvery == 0 {
		g.player.SetPowerState(PowerOvercharged, s.OverchargeDuration)
	}
}

// checkPlayerCollision handles at most one hit per frame.
func (g *Game) checkPlayerCollision() {
	if g.invulnerable {
		return
	}
	i := FirstHit(g.player.Bounds(), g.obstacles)
	if i < 0 {
		return
	}

	at := g.player.Pos
	g.explode(at)
	g.shake.Start(g.cfg.Effects.ShakeDuration, g.cfg.Effects.ShakeIntensity)
	g.lives--

	if g.lives <= 0 {
		g.lives = 0
		g.over = true
		g.emit(EventGameOver, at)
	} else {
		g.player.Reset()
		g.invulnerable = true
		g.invulnTime = g.cfg.Session.Invulnerability
		g.player.SetPowerState(PowerInvulnerable, g.cfg.Session.Invulnerability)
		g.emit(EventLifeLost, at)
	}

	n := len(g.obstacles)
	g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
	clear(g.obstacles[len(g.obstacles):n])
}

func (g *Game) explode(at core.Vec2) {
	fx := g.cfg.Effects
	for range fx.ExplosionParticles {
		vel := core.V(
			core.Uniform(g.rng, -fx.ExplosionSpeed, fx.ExplosionSpeed),
			core.Uniform(g.rng, -fx.ExplosionSpeed, fx.ExplosionSpeed),
		)
		life := core.Uniform(g.rng, fx.ExplosionLifeMin, fx.ExplosionLifeMax)
		g.explosions.Emit(Particle{Pos: at, Vel: vel, Life: life, MaxLife: life})
	}
}

func (g *Game) emit(kind EventKind, at core.Vec2) {
	g.sink.OnEvent(Event{Kind: kind, Score: g.score, Lives: g.lives, Speed: g.ramp.Speed, Pos: at})
}

// Score returns the number of obstacles dodged.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Speed returns the current game speed.
func (g *Game) Speed() float64 { return g.ramp.Speed }

// SpawnInterval returns the current seconds between spawns.
func (g *Game) SpawnInterval() float64 { return g.ramp.SpawnInterval }

// Over reports whether the last life has been lost.
func (g *Game) Over() bool { return g.over }

// Invulnerable reports whether the post-hit grace period is running.
func (g *Game) Invulnerable() bool { return g.invulnerable }

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// Obstacles returns the live obstacles. The slice is owned by the game.
func (g *Game) Obstacles() []*Obstacle { return g.obstacles }

// HUD returns the in-game text lines.
func (g *Game) HUD() HUD { return g.hud }

// Elapsed returns simulated seconds since the last reset.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Config returns the tuning the game runs with.
func (g *Game) Config() config.DodgerConfig { return g.cfg }
