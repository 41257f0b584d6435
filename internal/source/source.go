package source

import (
	"sync"

	"cardstack/internal/domain"
)

// PageSource is the collaborator contract the deck consumes. It owns the full
// page collection; the deck only ever sees a bounded window of it.
type PageSource interface {
	// ValuesAround returns an ordered window of values containing the given
	// selection plus, where available, its immediate neighbors, along with the
	// selection's index within the returned window.
	ValuesAround(selection domain.PageID) ([]domain.PageID, int)
	// Len returns the total number of pages in the collection.
	Len() int
	// At returns the value at the given collection position.
	At(pos int) (domain.PageID, bool)
	// IndexOf returns the collection position of a value, or -1 if absent.
	IndexOf(value domain.PageID) int
}

// MemoryPageSource is an in-memory, slice-backed implementation of PageSource
type MemoryPageSource struct {
	mu     sync.RWMutex
	values []domain.PageID
	radius int
}

// NewMemoryPageSource creates a new memory-based page source with the default
// window radius of one page either side of the selection
func NewMemoryPageSource(values []domain.PageID) *MemoryPageSource {
	return &MemoryPageSource{
		values: append([]domain.PageID(nil), values...),
		radius: 1,
	}
}

// SetRadius changes how many neighbors either side of the selection
// ValuesAround returns
func (s *MemoryPageSource) SetRadius(r int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r < 0 {
		r = 0
	}
	s.radius = r
}

// ValuesAround returns the window of values surrounding the selection.
// The window is truncated at collection boundaries. An unknown selection
// yields an empty window.
func (s *MemoryPageSource) ValuesAround(selection domain.PageID) ([]domain.PageID, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos := s.indexOfLocked(selection)
	if pos < 0 {
		return nil, -1
	}

	lo := pos - s.radius
	if lo < 0 {
		lo = 0
	}
	hi := pos + s.radius + 1
	if hi > len(s.values) {
		hi = len(s.values)
	}

	// Return a copy to prevent external modification
	window := make([]domain.PageID, hi-lo)
	copy(window, s.values[lo:hi])
	return window, pos - lo
}

// Len returns the total number of pages
func (s *MemoryPageSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// At returns the value at a collection position
func (s *MemoryPageSource) At(pos int) (domain.PageID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos < 0 || pos >= len(s.values) {
		return "", false
	}
	return s.values[pos], true
}

// IndexOf returns the collection position of a value, or -1 if absent
func (s *MemoryPageSource) IndexOf(value domain.PageID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfLocked(value)
}

func (s *MemoryPageSource) indexOfLocked(value domain.PageID) int {
	for i, v := range s.values {
		if v == value {
			return i
		}
	}
	return -1
}
