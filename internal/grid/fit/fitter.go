// Package fit converges column widths and row heights toward a target total
// by adjusting one axis by one unit at a time, as chosen by a peaker.
package fit

import "github.com/young1lin/tablo/internal/grid/peaker"

// Shrink decrements sizes in place until they sum to target or no axis is
// above its floor. It returns the sum it reached, which is larger than target
// when the target was unreachable.
func Shrink(sizes, floors []int, target int, p peaker.Peaker) int {
	total := sum(sizes)
	for total > target {
		i, ok := p.Peak(floors, sizes)
		if !ok || i < 0 || i >= len(sizes) || sizes[i] <= floorAt(floors, i) {
			break
		}
		sizes[i]--
		total--
	}
	return total
}

// Grow increments sizes in place until they sum to target. ceilings may be
// nil or hold -1 for an unbounded axis; an axis at its ceiling is not picked
// again. It returns the sum it reached.
func Grow(sizes, ceilings []int, target int, p peaker.Peaker) int {
	total := sum(sizes)
	floors := make([]int, len(sizes))
	for total < target {
		for i := range sizes {
			floors[i] = -1
			if i < len(ceilings) && ceilings[i] >= 0 && sizes[i] >= ceilings[i] {
				floors[i] = sizes[i]
			}
		}
		i, ok := p.Peak(floors, sizes)
		if !ok || i < 0 || i >= len(sizes) {
			break
		}
		sizes[i]++
		total++
	}
	return total
}

// Percent returns p percent of total, rounded down.
func Percent(p, total int) int {
	if p <= 0 || total <= 0 {
		return 0
	}
	return total * p / 100
}

func floorAt(floors []int, i int) int {
	if i < len(floors) {
		return floors[i]
	}
	return 0
}

func sum(sizes []int) int {
	total := 0
	for _, s := range sizes {
		total += s
	}
	return total
}
