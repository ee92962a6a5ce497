package level

import (
	"shadow-leap/internal/factory"
	"shadow-leap/internal/geom"
	"shadow-leap/internal/system"
)

// finishHop fills the hole nearest the player, sends it home and finishes
// the level once every hole is filled.
func (l *Level) finishHop() {
	if p, ok := l.PlayerPosition().Closest(l.UnfilledHoles()); ok {
		l.FillHole(p)
	}
	l.resetPlayer()
	if l.CheckWin() {
		l.setState(Finished)
		l.emit(EventLevelFinished, l.player, "")
	}
}

// UnfilledHoles returns the holes without a marker, in board order.
func (l *Level) UnfilledHoles() []geom.Position {
	var out []geom.Position
	for _, h := range l.opts.Holes {
		if !l.filled(h) {
			out = append(out, h)
		}
	}
	return out
}

// FillHole places a marker at hole p. Filling a filled hole changes nothing
// and reports false.
func (l *Level) FillHole(p geom.Position) bool {
	if l.filled(p) {
		return false
	}
	factory.NewMarker(l.space.World, p)
	l.logger.Info("hole filled", "at", p)
	l.emit(EventHoleFilled, l.player, p.String())
	return true
}

// CheckWin reports whether every hole holds a marker.
func (l *Level) CheckWin() bool {
	for _, h := range l.opts.Holes {
		if !l.filled(h) {
			return false
		}
	}
	return true
}

func (l *Level) filled(p geom.Position) bool {
	return system.AnyAt(l.space, p, system.IsMarker)
}
