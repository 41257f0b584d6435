package source

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cardstack/internal/domain"
)

func pages(ids ...string) []domain.PageID {
	out := make([]domain.PageID, len(ids))
	for i, id := range ids {
		out[i] = domain.PageID(id)
	}
	return out
}

func TestValuesAroundMiddle(t *testing.T) {
	src := NewMemoryPageSource(pages("A", "B", "C", "D", "E"))
	values, idx := src.ValuesAround("C")
	require.Equal(t, pages("B", "C", "D"), values)
	require.Equal(t, 1, idx)
	require.Equal(t, domain.PageID("C"), values[idx])
}

func TestValuesAroundTruncatesAtStart(t *testing.T) {
	src := NewMemoryPageSource(pages("A", "B", "C"))
	values, idx := src.ValuesAround("A")
	require.Equal(t, pages("A", "B"), values)
	require.Equal(t, 0, idx)
}

func TestValuesAroundTruncatesAtEnd(t *testing.T) {
	src := NewMemoryPageSource(pages("A", "B", "C"))
	values, idx := src.ValuesAround("C")
	require.Equal(t, pages("B", "C"), values)
	require.Equal(t, 1, idx)
}

func TestValuesAroundUnknownSelection(t *testing.T) {
	src := NewMemoryPageSource(pages("A", "B"))
	values, idx := src.ValuesAround("Z")
	require.Nil(t, values)
	require.Equal(t, -1, idx)
}

func TestValuesAroundSinglePage(t *testing.T) {
	src := NewMemoryPageSource(pages("A"))
	values, idx := src.ValuesAround("A")
	require.Equal(t, pages("A"), values)
	require.Equal(t, 0, idx)
}

func TestSetRadiusWidensWindow(t *testing.T) {
	src := NewMemoryPageSource(pages("A", "B", "C", "D", "E"))
	src.SetRadius(2)
	values, idx := src.ValuesAround("C")
	require.Equal(t, pages("A", "B", "C", "D", "E"), values)
	require.Equal(t, 2, idx)
}

func TestValuesAroundReturnsCopy(t *testing.T) {
	src := NewMemoryPageSource(pages("A", "B", "C"))
	values, _ := src.ValuesAround("B")
	values[0] = "Z"
	again, _ := src.ValuesAround("B")
	require.Equal(t, pages("A", "B", "C"), again)
}

func TestAtAndIndexOf(t *testing.T) {
	src := NewMemoryPageSource(pages("A", "B", "C"))
	require.Equal(t, 3, src.Len())

	v, ok := src.At(1)
	require.True(t, ok)
	require.Equal(t, domain.PageID("B"), v)

	_, ok = src.At(-1)
	require.False(t, ok)
	_, ok = src.At(3)
	require.False(t, ok)

	require.Equal(t, 2, src.IndexOf("C"))
	require.Equal(t, -1, src.IndexOf("Z"))
}
