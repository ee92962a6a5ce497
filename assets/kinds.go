// Package assets holds the kind catalog and the embedded level files.
package assets

// Category is the behavioural class of an asset kind.
type Category uint8

const (
	SolidTile       Category = iota // cannot be stepped onto
	FriendlyTile                    // safe ground
	PassiveObstacle                 // fatal on contact, never moves
	MovingObstacle                  // fatal on contact, moves at its speed
	Carrier                         // can be ridden
)

func (c Category) String() string {
	switch c {
	case SolidTile:
		return "solid"
	case FriendlyTile:
		return "friendly"
	case PassiveObstacle:
		return "passive-obstacle"
	case MovingObstacle:
		return "moving-obstacle"
	case Carrier:
		return "carrier"
	}
	return "unknown"
}

// Tile is the edge length of one grid cell in pixels.
const Tile = 48.0

// The embedded levels are laid out for a board of this size in pixels.
const (
	BoardWidth  = 1024.0
	BoardHeight = 768.0
)

// Kind describes one asset kind. Sizes are the visual sprite extent in
// pixels; Speed is the default horizontal speed in px/ms.
type Kind struct {
	Name     string
	Category Category
	Speed    float64
	Width    float64
	Height   float64
	Glyph    string

	// Blink durations (ms); both zero means the kind never submerges.
	VisibleMs, HiddenMs float64
	// Bounce bounds on x; both zero means the kind wraps instead.
	BounceMinX, BounceMaxX float64
	// Pushes shoves passenger-capable entities ahead of it. Implies solid.
	Pushes bool
}

// Blinks reports whether the kind alternates between surfaced and submerged.
func (k Kind) Blinks() bool { return k.VisibleMs > 0 && k.HiddenMs > 0 }

// Bounces reports whether the kind reverses at fixed bounds.
func (k Kind) Bounces() bool { return k.BounceMaxX > k.BounceMinX }

// Kinds lists every kind a level file may reference, plus the ones the
// simulation spawns itself.
var Kinds = map[string]Kind{
	"water": {Name: "water", Category: PassiveObstacle, Width: Tile, Height: Tile, Glyph: "🌊"},
	"grass": {Name: "grass", Category: FriendlyTile, Width: Tile, Height: Tile, Glyph: "🌿"},
	"tree":  {Name: "tree", Category: SolidTile, Width: Tile, Height: Tile, Glyph: "🌳"},

	"bus":     {Name: "bus", Category: MovingObstacle, Speed: 0.15, Width: 2 * Tile, Height: Tile, Glyph: "🚌"},
	"racecar": {Name: "racecar", Category: MovingObstacle, Speed: 0.5, Width: Tile, Height: Tile, Glyph: "🏎"},
	"bike": {Name: "bike", Category: MovingObstacle, Speed: 0.2, Width: Tile, Height: Tile, Glyph: "🚲",
		BounceMinX: Tile / 2, BounceMaxX: BoardWidth - Tile/2},
	"bulldozer": {Name: "bulldozer", Category: SolidTile, Speed: 0.05, Width: 2 * Tile, Height: Tile, Glyph: "🚜",
		Pushes: true},

	"log":     {Name: "log", Category: Carrier, Speed: 0.1, Width: 3 * Tile, Height: Tile, Glyph: "🪵"},
	"longlog": {Name: "longlog", Category: Carrier, Speed: 0.07, Width: 5 * Tile, Height: Tile, Glyph: "🪵"},
	"turtles": {Name: "turtles", Category: Carrier, Speed: 0.085, Width: 3 * Tile, Height: Tile, Glyph: "🐢",
		VisibleMs: 7000, HiddenMs: 2000},

	"frog":       {Name: "frog", Category: FriendlyTile, Width: Tile, Height: Tile, Glyph: "🐸"},
	"extralife":  {Name: "extralife", Category: FriendlyTile, Width: Tile, Height: Tile, Glyph: "🪲"},
	"filledhole": {Name: "filledhole", Category: PassiveObstacle, Width: Tile, Height: Tile, Glyph: "🐸"},
}

var aliases = map[string]string{
	"turtle": "turtles",
}

// Lookup returns the kind registered under name or one of its aliases.
func Lookup(name string) (Kind, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	k, ok := Kinds[name]
	return k, ok
}
