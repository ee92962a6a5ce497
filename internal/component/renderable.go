package component

import (
	"shadow-leap/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 17

type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
	Hidden      bool
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
