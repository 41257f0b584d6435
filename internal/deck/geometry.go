package deck

import "math"

// ShadowVisibility controls whether cards cast a shadow
type ShadowVisibility int

const (
	ShadowVisible ShadowVisibility = iota
	ShadowHidden
)

// Style is the passive configuration surface exposed to integrators.
// It is passed explicitly into the geometry functions; nothing here is
// looked up from ambient state.
type Style struct {
	CornerRadius   int
	Shadow         ShadowVisibility
	EnableRotation bool
	ScaleStep      float64 // per-unit-of-distance scale-down, 0.1 by default
}

// DefaultStyle returns the stock card deck styling
func DefaultStyle() Style {
	return Style{
		CornerRadius:   1,
		Shadow:         ShadowVisible,
		EnableRotation: true,
		ScaleStep:      0.1,
	}
}

const (
	maxShadowOpacity = 0.3
	swingAmplitude   = 20.0
	rotationPerUnit  = 2.0
)

// Transform is the full set of visual parameters for one page at a given
// effective position. All fields are continuous functions of the position;
// the renderer quantizes them to terminal cells.
type Transform struct {
	StackDepth      float64
	VerticalOffset  float64
	Scale           float64
	RotationDegrees float64
	ShadowOpacity   float64
}

// RelativePosition is the page's signed distance from the effective position
func RelativePosition(effective float64, index int) float64 {
	return effective - float64(index)
}

// StackDepth orders pages back-to-front. It is always <= 0; pages farther
// from the effective position stack further back, and the page exactly at the
// effective position gets the frontmost depth of 0.
func StackDepth(effective float64, index int) float64 {
	return -math.Abs(RelativePosition(effective, index))
}

// VerticalOffset is the page's displacement along the paging axis, in the
// same units as extent. The selected page additionally swings out on an
// exaggerated arc while the effective position is strictly between the first
// and last page, so the arc never overshoots past the ends of the sequence.
func VerticalOffset(effective float64, index, selectedIndex, maxIndex int, extent float64) float64 {
	offset := (float64(index) - effective) * extent / 10
	if index == selectedIndex && effective > 0 && effective < float64(maxIndex) {
		return offset * math.Abs(math.Sin(math.Pi*effective)) * swingAmplitude
	}
	return offset
}

// Scale shrinks pages the farther they sit from the effective position.
// It can go negative for distant indices; only near-center pages are visible
// so that is acceptable.
func Scale(effective float64, index int, step float64) float64 {
	return 1 - step*math.Abs(RelativePosition(effective, index))
}

// RotationDegrees tilts pages proportionally to their distance from the
// effective position. Disabled contexts (tighter decks) get 0.
func RotationDegrees(effective float64, index int, enabled bool) float64 {
	if !enabled {
		return 0
	}
	return -RelativePosition(effective, index) * rotationPerUnit
}

// ShadowOpacity fades the card shadow out over one page of distance,
// clamped to [0, 0.3]. Always 0 when shadows are hidden.
func ShadowOpacity(effective float64, index int, shadow ShadowVisibility) float64 {
	if shadow == ShadowHidden {
		return 0
	}
	o := maxShadowOpacity * (1 - math.Abs(RelativePosition(effective, index)))
	if o < 0 {
		return 0
	}
	if o > maxShadowOpacity {
		return maxShadowOpacity
	}
	return o
}

// TransformFor computes the complete transform for one page
func TransformFor(effective float64, index, selectedIndex, maxIndex int, extent float64, style Style) Transform {
	return Transform{
		StackDepth:      StackDepth(effective, index),
		VerticalOffset:  VerticalOffset(effective, index, selectedIndex, maxIndex, extent),
		Scale:           Scale(effective, index, style.ScaleStep),
		RotationDegrees: RotationDegrees(effective, index, style.EnableRotation),
		ShadowOpacity:   ShadowOpacity(effective, index, style.Shadow),
	}
}
