package views

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cardstack/internal/deck"
	"cardstack/internal/domain"
)

// cardLayer is one page prepared for compositing
type cardLayer struct {
	page      domain.Page
	transform deck.Transform
	selected  bool
}

// Renderer draws the card deck view
type Renderer struct {
	styles *Styles
	style  deck.Style
}

// NewRenderer creates a new deck renderer
func NewRenderer(style deck.Style) *Renderer {
	return &Renderer{
		styles: NewStyles(),
		style:  style,
	}
}

// Style returns the deck style configuration in use
func (r *Renderer) Style() deck.Style {
	return r.style
}

// SetStyle replaces the deck style configuration
func (r *Renderer) SetStyle(style deck.Style) {
	r.style = style
}

// RenderDeck renders the page window as a stack of overlapping cards on a
// width x height canvas. Cards are composited back-to-front in stack depth
// order so nearer pages occlude farther ones.
func (r *Renderer) RenderDeck(win domain.Window, effective float64, width, height int) string {
	if width <= 0 || height <= 0 || win.Len() == 0 {
		return ""
	}

	extent := float64(height)
	layers := make([]cardLayer, 0, win.Len())
	for _, p := range win.Pages {
		tr := deck.TransformFor(effective, p.Index, win.SelectedIndex, win.MaxIndex(), extent, r.style)
		// Pages more than two positions out are shrunk past visibility
		if tr.Scale <= 0 || math.Abs(deck.RelativePosition(effective, p.Index)) >= 2 {
			continue
		}
		layers = append(layers, cardLayer{
			page:      p,
			transform: tr,
			selected:  p.Index == win.SelectedIndex,
		})
	}

	// Back to front; ties broken by window order for a stable paint
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].transform.StackDepth < layers[j].transform.StackDepth
	})

	canvas := blankCanvas(width, height)
	baseW, baseH := cardSize(width, height)

	for _, l := range layers {
		w := int(math.Round(float64(baseW) * l.transform.Scale))
		h := int(math.Round(float64(baseH) * l.transform.Scale))
		if w < 8 || h < 3 {
			continue
		}

		// Rotation approximated as a horizontal lean; a terminal cell grid
		// cannot tilt glyphs
		skew := int(math.Round(l.transform.RotationDegrees * 1.5))
		x := (width-w)/2 + skew
		y := (height-h)/2 + int(math.Round(l.transform.VerticalOffset))

		if l.transform.ShadowOpacity > 0 {
			shadow := r.renderShadow(w, h, l.transform.ShadowOpacity)
			canvas = overlayAt(canvas, shadow, x+2, y+1, width, height)
		}
		card := r.renderCard(l, w, h)
		canvas = overlayAt(canvas, card, x, y, width, height)
	}

	return canvas
}

// Indicator renders the page position dots under the deck
func (r *Renderer) Indicator(count, selected int) string {
	if count <= 0 {
		return ""
	}
	dots := make([]string, count)
	for i := range dots {
		if i == selected {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.DotInactive.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// renderCard draws a single card at the given size
func (r *Renderer) renderCard(l cardLayer, w, h int) string {
	border := lipgloss.NormalBorder()
	if r.style.CornerRadius > 0 {
		border = lipgloss.RoundedBorder()
	}

	frame := r.styles.CardBack
	title := r.styles.CardBody
	if l.selected {
		frame = r.styles.CardFront
		title = r.styles.CardTitle
	}

	inner := lipgloss.Place(w-2, h-2, lipgloss.Center, lipgloss.Center,
		title.Render(string(l.page.Value)))

	return frame.
		Border(border).
		Width(w - 2).
		Height(h - 2).
		Render(inner)
}

// renderShadow draws the drop shadow block for a card. Opacity picks the
// shade; the terminal has no alpha channel.
func (r *Renderer) renderShadow(w, h int, opacity float64) string {
	style := r.styles.ShadowFaint
	ch := "░"
	if opacity > 0.15 {
		style = r.styles.Shadow
		ch = "▒"
	}
	line := style.Render(strings.Repeat(ch, w))
	rows := make([]string, h)
	for i := range rows {
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}

// cardSize picks the base (unscaled) card footprint for the viewport
func cardSize(width, height int) (int, int) {
	w := width * 3 / 5
	if w < 20 {
		w = width - 4
	}
	if w < 10 {
		w = 10
	}
	h := height / 2
	if h < 5 {
		h = 5
	}
	if h > height-2 && height > 4 {
		h = height - 2
	}
	return w, h
}

func blankCanvas(width, height int) string {
	line := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}
