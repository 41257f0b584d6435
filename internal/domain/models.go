package domain

// PageID identifies a page. Ownership of the current selection lives with
// whatever hosts the deck; the deck reads it on rebuild and writes it on commit.
type PageID string

// Page is a renderable page descriptor within the current window.
// Index is the 0-based position inside the window, Value is the identity used
// for rendering. Pages are created fresh on every rebuild and never mutated.
type Page struct {
	Index int
	Value PageID
}

// Window is the bounded, ordered set of pages currently eligible for
// rendering, centered on the selection.
// Invariants: SelectedIndex is within [0, len(Pages)-1] and page values are
// unique within the window.
type Window struct {
	Pages         []Page
	SelectedIndex int
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	return len(w.Pages)
}

// Selected returns the currently selected page and whether the window is
// non-empty.
func (w Window) Selected() (Page, bool) {
	if w.SelectedIndex < 0 || w.SelectedIndex >= len(w.Pages) {
		return Page{}, false
	}
	return w.Pages[w.SelectedIndex], true
}

// MaxIndex returns the highest valid page index, or -1 for an empty window.
func (w Window) MaxIndex() int {
	return len(w.Pages) - 1
}
