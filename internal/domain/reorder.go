package domain

import "slices"

// SpliceResult is the outcome of a drop: the updated lists and the items
// that moved. For a same-list drop Target is nil.
type SpliceResult[T any] struct {
	Source []T
	Target []T
	Moved  []T
}

// Splice applies a drag-and-drop gesture. dragged holds indices into source;
// drop is the insertion index reported by the drop location. When sameList is
// true target is ignored and the items are reordered within source.
// Inputs are never modified.
func Splice[T any](source, target []T, dragged []int, drop int, sameList bool) SpliceResult[T] {
	if sameList {
		list, moved := Reorder(source, dragged, drop)
		return SpliceResult[T]{Source: list, Moved: moved}
	}
	src, dst, moved := Transfer(source, target, dragged, drop)
	return SpliceResult[T]{Source: src, Target: dst, Moved: moved}
}

// Reorder moves the dragged items of list to drop. The drop index is shifted
// left by the number of dragged items that sat above it, so dropping an item
// just past itself leaves the list unchanged.
func Reorder[T any](list []T, dragged []int, drop int) ([]T, []T) {
	indices := normalizeIndices(dragged, len(list))
	if len(indices) == 0 {
		return slices.Clone(list), nil
	}

	moved := pick(list, indices)
	rest := without(list, indices)

	removedAbove := 0
	for _, idx := range indices {
		if idx < drop {
			removedAbove++
		}
	}
	at := clamp(drop-removedAbove, 0, len(rest))

	return slices.Insert(rest, at, moved...), moved
}

// Transfer moves the dragged items of source into target at drop.
func Transfer[T any](source, target []T, dragged []int, drop int) ([]T, []T, []T) {
	indices := normalizeIndices(dragged, len(source))
	if len(indices) == 0 {
		return slices.Clone(source), slices.Clone(target), nil
	}

	moved := pick(source, indices)
	at := clamp(drop, 0, len(target))

	dst := slices.Insert(slices.Clone(target), at, moved...)
	return without(source, indices), dst, moved
}

// OrderBy arranges items to follow ids. Unknown ids are skipped and items
// whose id is not listed keep their relative order after the listed ones.
func OrderBy[T any](items []T, ids []string, idOf func(T) string) []T {
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[idOf(it)] = it
	}

	result := make([]T, 0, len(items))
	placed := make(map[string]bool, len(items))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		result = append(result, it)
		placed[id] = true
	}
	for _, it := range items {
		if !placed[idOf(it)] {
			result = append(result, it)
		}
	}
	return result
}

func normalizeIndices(indices []int, n int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < n {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func pick[T any](list []T, indices []int) []T {
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		out = append(out, list[i])
	}
	return out
}

// without removes indices from a copy of list, highest index first.
func without[T any](list []T, indices []int) []T {
	out := slices.Clone(list)
	for i := len(indices) - 1; i >= 0; i-- {
		out = slices.Delete(out, indices[i], indices[i]+1)
	}
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
