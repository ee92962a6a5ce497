package factory

import (
	"errors"
	"fmt"

	"shadow-leap/assets"
	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownKind is returned for level rows naming a kind the catalog lacks.
var ErrUnknownKind = errors.New("unknown kind")

// Draw layers, lowest first.
const (
	orderGround = iota
	orderMarker
	orderCarrier
	orderPowerUp
	orderVehicle
	orderPlayer = 10
)

// NewPlayer creates the frog at p with the given number of lives.
func NewPlayer(w *ecs.World, p geom.Position, lives int) ecs.EntityID {
	k := assets.Kinds["frog"]
	id := newSprite(w, k, p)
	w.Add(id, component.Renderable{
		Glyph:       k.Glyph,
		FGColor:     tcell.ColorLime,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderPlayer,
	})
	w.Add(id, component.Lives{Count: lives})
	w.Add(id, component.Passenger{})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagScreenBound{})
	return id
}

// FromRecord creates the entity a level row describes. Velocity applies only
// when the row carries a direction flag.
func FromRecord(w *ecs.World, r assets.Record) (ecs.EntityID, error) {
	k, ok := assets.Lookup(r.Kind)
	if !ok {
		return ecs.NilEntity, fmt.Errorf("line %d: %w %q", r.Line, ErrUnknownKind, r.Kind)
	}
	var v geom.Velocity
	if r.HasDirection {
		v = geom.Vel(k.Speed, 0)
		if !r.MoveRight {
			v = v.Opposite(true, false)
		}
	}
	return NewKind(w, k, geom.Pos(r.X, r.Y), v, r.HasDirection), nil
}

// NewKind creates an entity of kind k at p. Capabilities follow the kind's
// category; moving adds a Motion component carrying v.
func NewKind(w *ecs.World, k assets.Kind, p geom.Position, v geom.Velocity, moving bool) ecs.EntityID {
	id := newSprite(w, k, p)
	if moving {
		w.Add(id, component.Motion{Velocity: v})
	}

	r := component.Renderable{Glyph: k.Glyph, FGColor: tcell.ColorWhite, BGColor: tcell.ColorDefault}
	switch k.Category {
	case assets.SolidTile:
		w.Add(id, component.TagSolid{})
		r.FGColor = tcell.ColorGreen
		r.RenderOrder = orderGround
		if moving {
			r.FGColor = tcell.ColorYellow
			r.RenderOrder = orderVehicle
		}
	case assets.FriendlyTile:
		r.FGColor = tcell.ColorGreen
		r.BGColor = tcell.ColorDarkGreen
		r.RenderOrder = orderGround
	case assets.PassiveObstacle:
		w.Add(id, component.TagObstacle{})
		r.FGColor = tcell.ColorAqua
		r.BGColor = tcell.ColorNavy
		r.RenderOrder = orderGround
	case assets.MovingObstacle:
		w.Add(id, component.TagObstacle{})
		r.FGColor = tcell.ColorRed
		r.RenderOrder = orderVehicle
	case assets.Carrier:
		w.Add(id, component.Carrier{Ridable: true})
		r.FGColor = tcell.ColorOlive
		r.BGColor = tcell.ColorNavy
		r.RenderOrder = orderCarrier
	}
	w.Add(id, r)

	if k.Blinks() {
		w.Add(id, component.Blinker{VisibleFor: k.VisibleMs, HiddenFor: k.HiddenMs})
	}
	if k.Bounces() {
		w.Add(id, component.Bouncer{MinX: k.BounceMinX, MaxX: k.BounceMaxX})
	}
	if k.Pushes {
		w.Add(id, component.Pusher{})
	}
	return id
}

// NewMarker creates the static obstacle that marks a filled win-hole.
func NewMarker(w *ecs.World, p geom.Position) ecs.EntityID {
	id := NewKind(w, assets.Kinds["filledhole"], p, geom.Velocity{}, false)
	w.Add(id, component.TagMarker{})
	r := w.Get(id, component.CRenderable).(component.Renderable)
	r.FGColor = tcell.ColorLime
	r.RenderOrder = orderMarker
	w.Add(id, r)
	return id
}

// NewPowerUp creates a power-up at p. It can ride a carrier.
func NewPowerUp(w *ecs.World, p geom.Position, kind component.PowerUpKind) ecs.EntityID {
	k := assets.Kinds["extralife"]
	id := newSprite(w, k, p)
	w.Add(id, component.Renderable{
		Glyph:       k.Glyph,
		FGColor:     tcell.ColorFuchsia,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderPowerUp,
	})
	w.Add(id, component.PowerUp{Kind: kind, ShuffleRight: true})
	w.Add(id, component.Passenger{})
	return id
}

func newSprite(w *ecs.World, k assets.Kind, p geom.Position) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Name{Value: k.Name})
	w.Add(id, component.Body{Width: k.Width, Height: k.Height})
	w.Add(id, component.Position{Position: p})
	return id
}
