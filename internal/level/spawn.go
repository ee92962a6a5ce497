package level

import (
	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/factory"
	"shadow-leap/internal/system"
)

// tickSpawn advances the extra-life timer. When it fires, a power-up is put
// on a random eligible carrier; with none available the spawn is skipped.
// Either way the timer restarts with a fresh threshold.
func (l *Level) tickSpawn(ms float64) {
	l.spawnElapsed += ms
	if l.spawnElapsed < l.spawnAt {
		return
	}
	l.spawnPowerUp()
	l.rollSpawn()
}

func (l *Level) spawnPowerUp() {
	s := l.space
	eligible := system.And(system.IsCarrier, system.NameContains(l.opts.PowerUpCarrier))
	carriers := s.World.Filter(func(id ecs.EntityID) bool { return eligible(s.World, id) })
	if len(carriers) == 0 {
		l.logger.Debug("no carrier for power-up")
		return
	}
	carrier := carriers[l.rng.Intn(len(carriers))]
	p, _ := system.PositionOf(s.World, carrier)
	pu := factory.NewPowerUp(s.World, p, component.PowerUpExtraLife)
	system.Attach(s, pu, carrier)
	l.logger.Info("power-up spawned", "carrier", system.NameOf(s.World, carrier), "at", p)
	l.emit(EventPowerUpSpawned, pu, system.NameOf(s.World, carrier))
}

func (l *Level) rollSpawn() {
	l.spawnElapsed = 0
	l.spawnAt = l.opts.PowerUpMinMs + l.rng.Float64()*(l.opts.PowerUpMaxMs-l.opts.PowerUpMinMs)
}
