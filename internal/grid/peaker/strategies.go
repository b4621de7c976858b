package peaker

// MaxFirst picks the eligible axis with the largest size. Ties go to the
// lowest index.
type MaxFirst struct{}

func (MaxFirst) Peak(floors, sizes []int) (int, bool) {
	best := -1
	for i := range sizes {
		if !eligible(floors, sizes, i) {
			continue
		}
		if best < 0 || sizes[i] > sizes[best] {
			best = i
		}
	}
	return best, best >= 0
}

// MinFirst picks the eligible axis with the smallest size. Ties go to the
// lowest index.
type MinFirst struct{}

func (MinFirst) Peak(floors, sizes []int) (int, bool) {
	best := -1
	for i := range sizes {
		if !eligible(floors, sizes, i) {
			continue
		}
		if best < 0 || sizes[i] < sizes[best] {
			best = i
		}
	}
	return best, best >= 0
}

// LeftFirst scans from the first axis and picks the first eligible one.
type LeftFirst struct{}

func (LeftFirst) Peak(floors, sizes []int) (int, bool) {
	for i := range sizes {
		if eligible(floors, sizes, i) {
			return i, true
		}
	}
	return -1, false
}

// RightFirst scans from the last axis and picks the first eligible one.
type RightFirst struct{}

func (RightFirst) Peak(floors, sizes []int) (int, bool) {
	for i := len(sizes) - 1; i >= 0; i-- {
		if eligible(floors, sizes, i) {
			return i, true
		}
	}
	return -1, false
}

// RoundRobin cycles through the axes in index order, skipping the ones that
// are not eligible. next is the index the following scan starts at.
type RoundRobin struct {
	next int
}

func (p *RoundRobin) Peak(floors, sizes []int) (int, bool) {
	n := len(sizes)
	if n == 0 {
		return -1, false
	}
	for k := 0; k < n; k++ {
		i := (p.next + k) % n
		if eligible(floors, sizes, i) {
			p.next = (i + 1) % n
			return i, true
		}
	}
	return -1, false
}
