package usecases

import "github.com/Koi-3088/PKHeX-Plugins/internal/domain"

// FindSlots computes candidate destination indices for count new
// records starting at startIndex.
//
// With overwrite, the candidates are the contiguous range
// [startIndex, startIndex+count) intersected with the collection
// bounds; an overrunning range shrinks the candidate set below count.
//
// Without overwrite, the candidates are every logically empty slot at
// or after startIndex, scanned in ascending order to the end of the
// collection. There is no early stop at count: the caller compares the
// returned length against count to decide capacity sufficiency.
func FindSlots(col domain.Collection, startIndex, count int, overwrite bool) []int {
	if startIndex < 0 {
		startIndex = 0
	}

	if overwrite {
		slots := make([]int, 0, count)
		for i := startIndex; i < startIndex+count && i < col.Len(); i++ {
			slots = append(slots, i)
		}
		return slots
	}

	var slots []int
	for i := startIndex; i < col.Len(); i++ {
		if !col.Occupied(i) {
			slots = append(slots, i)
		}
	}
	return slots
}
