package deck

import (
	"fmt"
	"log"

	"cardstack/internal/domain"
	"cardstack/internal/source"
)

// BuildWindow asks the page source for the values surrounding the selection
// and produces a fresh window of page descriptors. The window size is
// whatever the source returns; the builder makes no assumptions beyond the
// selection being present.
//
// A source that reports an index outside its own returned values is
// inconsistent with itself. That is a programming-contract error, so the
// builder clamps defensively and logs rather than failing the widget.
func BuildWindow(src source.PageSource, selection domain.PageID) (domain.Window, error) {
	values, idx := src.ValuesAround(selection)
	if len(values) == 0 {
		return domain.Window{}, fmt.Errorf("page source returned no values around %q", selection)
	}

	if idx < 0 || idx >= len(values) {
		log.Printf("page source returned out-of-bounds index %d for %q (window size %d), clamping", idx, selection, len(values))
		idx = clampIndex(idx, len(values)-1)
	}

	// Prefer the selection's actual position if the reported index disagrees
	if values[idx] != selection {
		found := -1
		for i, v := range values {
			if v == selection {
				found = i
				break
			}
		}
		if found >= 0 {
			log.Printf("page source index %d does not hold %q, using position %d", idx, selection, found)
			idx = found
		} else {
			log.Printf("page source window omits selection %q, keeping clamped index %d", selection, idx)
		}
	}

	seen := make(map[domain.PageID]struct{}, len(values))
	pages := make([]domain.Page, 0, len(values))
	selected := 0
	for i, v := range values {
		if _, dup := seen[v]; dup {
			log.Printf("page source returned duplicate value %q in window, keeping first", v)
			continue
		}
		seen[v] = struct{}{}
		pages = append(pages, domain.Page{Index: len(pages), Value: v})
		if i == idx {
			selected = len(pages) - 1
		}
	}

	return domain.Window{Pages: pages, SelectedIndex: selected}, nil
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
