package core

// Anchor selects which point of a text element the draw position refers to.
type Anchor int

const (
	AnchorTopLeft  Anchor = iota // Position is the top-left corner
	AnchorCenter                 // Position is the centre
	AnchorTopRight               // Position is the top-right corner
)

// Renderer draws one frame. Every component renders through it identically;
// the core never inspects pixels, only the regions DrawText returns.
type Renderer interface {
	// Clear fills the whole surface with bg.
	Clear(bg Color)

	// DrawText draws text anchored at the given logical position and returns
	// the logical region it occupies, for hit-testing.
	DrawText(text string, at Point, anchor Anchor, fg Color) Rect

	// DrawFilledCircle fills a circle of the given logical radius.
	DrawFilledCircle(center Point, radius float64, c Color)

	// Present marks the frame as complete.
	Present()
}
