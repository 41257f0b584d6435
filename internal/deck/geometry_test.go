package deck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackDepthNeverPositive(t *testing.T) {
	for _, effective := range []float64{-2.5, -1, 0, 0.3, 1, 1.7, 2, 5.25} {
		for index := -3; index <= 6; index++ {
			require.LessOrEqual(t, StackDepth(effective, index), 0.0,
				"stack depth must never be positive (effective=%v index=%d)", effective, index)
		}
	}
}

func TestStackDepthFrontmostAtIntegralPosition(t *testing.T) {
	// When the effective position sits exactly on a page, that page must be
	// frontmost among all visible indices
	effective := 2.0
	front := StackDepth(effective, 2)
	require.Equal(t, 0.0, front)
	for _, index := range []int{0, 1, 3, 4} {
		require.Greater(t, front, StackDepth(effective, index))
	}
}

func TestScaleExactlyOneAtCenter(t *testing.T) {
	require.Equal(t, 1.0, Scale(3.0, 3, 0.1))
}

func TestScaleMonotonicallyNonIncreasing(t *testing.T) {
	effective := 1.0
	prev := math.Inf(1)
	// Walk outward from the center; scale must never grow with distance
	for d := 0.0; d <= 5; d += 0.25 {
		s := Scale(effective+d, 1, 0.1)
		require.LessOrEqual(t, s, prev, "scale grew at distance %v", d)
		prev = s
	}
}

func TestScaleMayGoNegativeForDistantIndices(t *testing.T) {
	// Distant pages are not visible, so a negative scale is acceptable
	require.Less(t, Scale(0, 15, 0.1), 0.0)
}

func TestShadowOpacityAtCenterAndBeyondOnePage(t *testing.T) {
	require.Equal(t, 0.3, ShadowOpacity(2.0, 2, ShadowVisible))
	require.Equal(t, 0.0, ShadowOpacity(2.0, 3, ShadowVisible))
	require.Equal(t, 0.0, ShadowOpacity(2.0, 0, ShadowVisible))
	require.Equal(t, 0.0, ShadowOpacity(5.5, 1, ShadowVisible))
}

func TestShadowOpacityClampedNeverNegative(t *testing.T) {
	for d := 0.0; d <= 4; d += 0.1 {
		o := ShadowOpacity(d, 0, ShadowVisible)
		require.GreaterOrEqual(t, o, 0.0)
		require.LessOrEqual(t, o, 0.3)
	}
}

func TestShadowOpacityZeroWhenHidden(t *testing.T) {
	require.Equal(t, 0.0, ShadowOpacity(2.0, 2, ShadowHidden))
	require.Equal(t, 0.0, ShadowOpacity(2.5, 2, ShadowHidden))
}

func TestRotationOnlyWhenEnabled(t *testing.T) {
	require.Equal(t, 0.0, RotationDegrees(1.5, 1, false))
	require.InDelta(t, -1.0, RotationDegrees(1.5, 1, true), 1e-9)
	require.InDelta(t, 1.0, RotationDegrees(0.5, 1, true), 1e-9)
}

func TestVerticalOffsetPlainForNeighbors(t *testing.T) {
	// Non-selected pages get the plain linear offset
	extent := 40.0
	got := VerticalOffset(1.5, 2, 1, 2, extent)
	require.InDelta(t, (2-1.5)*extent/10, got, 1e-9)
}

func TestVerticalOffsetSwingOnlyMidTransition(t *testing.T) {
	extent := 40.0
	// Selected page mid-transition swings out on the exaggerated arc
	mid := VerticalOffset(0.5, 0, 0, 2, extent)
	plain := (0 - 0.5) * extent / 10
	require.InDelta(t, plain*math.Abs(math.Sin(math.Pi*0.5))*20, mid, 1e-9)
	require.Greater(t, math.Abs(mid), math.Abs(plain))

	// Suppressed at the ends of the sequence so the arc cannot overshoot
	// past the first or last page
	atStart := VerticalOffset(0, 0, 0, 2, extent)
	require.Equal(t, 0.0, atStart)
	atEnd := VerticalOffset(2, 2, 2, 2, extent)
	require.Equal(t, 0.0, atEnd)
}

func TestTransformForCombinesAllParameters(t *testing.T) {
	style := DefaultStyle()
	tr := TransformFor(1.0, 1, 1, 2, 40, style)
	require.Equal(t, 0.0, tr.StackDepth)
	require.Equal(t, 0.0, tr.VerticalOffset)
	require.Equal(t, 1.0, tr.Scale)
	require.Equal(t, 0.0, tr.RotationDegrees)
	require.Equal(t, 0.3, tr.ShadowOpacity)
}
