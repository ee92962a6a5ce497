package level

import (
	"time"

	"shadow-leap/internal/ecs"
	"shadow-leap/internal/system"
)

// Tick advances the level by dt.
func (l *Level) Tick(dt time.Duration) {
	l.TickMillis(float64(dt) / float64(time.Millisecond))
}

// TickMillis advances the level by ms milliseconds. Every non-player entity
// is updated first, in creation order, so the player's checks see this
// tick's obstacle and carrier positions.
func (l *Level) TickMillis(ms float64) {
	if l.Over() {
		return
	}
	if l.state != Active {
		l.setState(Active)
	}
	l.died = false

	l.tickSpawn(ms)

	s := l.space
	for _, id := range s.World.Entities() {
		if id == l.player || !s.World.Alive(id) {
			continue
		}
		system.UpdateBlinker(s, id, ms)
		if system.UpdatePowerUp(s, id, ms) {
			continue
		}
		system.UpdateBouncer(s, id, ms)
		system.Push(s, id, ms)
		system.Advance(s, id, ms)
	}

	l.updatePlayer()

	switch l.state {
	case PlayerDeath:
		l.loseLife()
	case PartlyFinished:
		l.finishHop()
	}
}

// updatePlayer resolves the player's carrier, collisions, pickups and goal.
func (l *Level) updatePlayer() {
	s := l.space
	system.DetectCarrier(s, l.player)
	l.checkGround()

	for _, pu := range system.TouchedPowerUps(s.World, l.player) {
		if kind, ok := system.ApplyPowerUp(s, l.player, pu); ok {
			l.emit(EventExtraLife, pu, kind.String())
		}
	}

	if l.PlayerPosition().Y <= l.opts.WinningY {
		l.setState(PartlyFinished)
	}
}

// checkGround kills an unridden player that stands outside the field or on
// the first obstacle it touches. A ride that ends off-field lands here, since
// detaching moves nothing and so never raises BoundsExtended.
func (l *Level) checkGround() {
	w := l.space.World
	if l.died || system.Riding(w, l.player) {
		return
	}
	if box, ok := system.BoxOf(w, l.player); ok && !l.space.Field.Contains(box) {
		l.kill("out of bounds")
		return
	}
	if hit, ok := system.FirstObstacleHit(w, l.player); ok {
		l.kill(system.NameOf(w, hit))
	}
}

func (l *Level) kill(cause string) {
	if l.died || l.Over() {
		return
	}
	l.died = true
	l.logger.Debug("player hit", "cause", cause, "at", l.PlayerPosition())
	l.setState(PlayerDeath)
}

func (l *Level) loseLife() {
	w := l.space.World
	if !system.RemoveLife(w, l.player) {
		l.setState(GameOver)
		l.emit(EventGameOver, l.player, "")
		return
	}
	l.emit(EventDeath, l.player, "")
	l.resetPlayer()
}

func (l *Level) resetPlayer() {
	system.Detach(l.space, l.player)
	system.Place(l.space, l.player, l.opts.Spawn)
}

func (l *Level) setState(s State) {
	if l.state == s {
		return
	}
	l.logger.Info("state", "from", l.state, "to", s, "lives", l.Lives())
	l.state = s
}

// BoundsExtended is fatal for the player unless it is being carried.
func (l *Level) BoundsExtended(id ecs.EntityID) {
	if id != l.player || system.Riding(l.space.World, id) {
		return
	}
	l.kill("out of bounds")
}

// Unseated re-runs the player's collision check after its carrier sank.
func (l *Level) Unseated(id ecs.EntityID) {
	if id != l.player {
		return
	}
	l.checkGround()
}
