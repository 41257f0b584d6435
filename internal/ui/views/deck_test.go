package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"cardstack/internal/deck"
	"cardstack/internal/domain"
)

func testWindow() domain.Window {
	return domain.Window{
		Pages: []domain.Page{
			{Index: 0, Value: "Overview"},
			{Index: 1, Value: "Activity"},
			{Index: 2, Value: "Messages"},
		},
		SelectedIndex: 1,
	}
}

func TestRenderDeckCanvasShape(t *testing.T) {
	r := NewRenderer(deck.DefaultStyle())

	out := r.RenderDeck(testWindow(), 1.0, 40, 12)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)
	for _, line := range lines {
		require.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestRenderDeckShowsSelectedPage(t *testing.T) {
	r := NewRenderer(deck.DefaultStyle())

	out := ansi.Strip(r.RenderDeck(testWindow(), 1.0, 60, 16))

	require.Contains(t, out, "Activity")
}

func TestRenderDeckEmptyWindow(t *testing.T) {
	r := NewRenderer(deck.DefaultStyle())

	require.Empty(t, r.RenderDeck(domain.Window{}, 0, 40, 12))
	require.Empty(t, r.RenderDeck(testWindow(), 0, 0, 12))
}

func TestIndicator(t *testing.T) {
	r := NewRenderer(deck.DefaultStyle())

	out := ansi.Strip(r.Indicator(3, 1))

	require.Equal(t, 1, strings.Count(out, "●"))
	require.Equal(t, 2, strings.Count(out, "○"))

	require.Empty(t, r.Indicator(0, 0))
}

func TestOverlayAtPlacesBlock(t *testing.T) {
	base := blankCanvas(5, 3)

	out := overlayAt(base, "XX", 1, 1, 5, 3)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, " XX  ", lines[1])
	require.Equal(t, "     ", lines[0])
}

func TestOverlayAtClipsLeftEdge(t *testing.T) {
	base := blankCanvas(5, 3)

	out := overlayAt(base, "XYZ", -1, 0, 5, 3)

	lines := strings.Split(out, "\n")
	require.Equal(t, "YZ   ", lines[0])
}

func TestOverlayAtClipsRightEdge(t *testing.T) {
	base := blankCanvas(5, 3)

	out := overlayAt(base, "XYZ", 3, 0, 5, 3)

	lines := strings.Split(out, "\n")
	require.Equal(t, "   XY", lines[0])
}

func TestOverlayAtClipsRows(t *testing.T) {
	base := blankCanvas(5, 2)

	out := overlayAt(base, "AA\nBB\nCC", 0, 1, 5, 2)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "     ", lines[0])
	require.Equal(t, "BB   ", lines[1])
}

func TestOverlayAtPreservesSurroundings(t *testing.T) {
	base := "abcde\nfghij"

	out := overlayAt(base, "XX", 1, 0, 5, 2)

	lines := strings.Split(out, "\n")
	require.Equal(t, "aXXde", lines[0])
	require.Equal(t, "fghij", lines[1])
}
