// Package peaker decides which column or row a fitter adjusts next.
//
// A Peaker looks at the current size and the floor of every axis and returns
// one index to change by a single unit. An axis is eligible while its size is
// above its floor. Strategies that need memory between calls (round robin)
// keep it in their own small state value, created fresh for every fit by
// Strategy.New.
package peaker

import (
	"errors"
	"fmt"
	"strings"
)

// Peaker picks the next axis to adjust, or returns false when none is eligible.
type Peaker interface {
	Peak(floors, sizes []int) (int, bool)
}

// Strategy names a Peaker implementation.
type Strategy int

const (
	// None cycles through the axes in index order.
	None Strategy = iota
	// Max picks the largest axis.
	Max
	// Min picks the smallest axis.
	Min
	// Left picks the first eligible axis.
	Left
	// Right picks the last eligible axis.
	Right
)

// ErrUnknownStrategy is returned by ParseStrategy.
var ErrUnknownStrategy = errors.New("unknown peaker strategy")

// New returns a fresh Peaker for s.
func (s Strategy) New() Peaker {
	switch s {
	case Max:
		return MaxFirst{}
	case Min:
		return MinFirst{}
	case Left:
		return LeftFirst{}
	case Right:
		return RightFirst{}
	default:
		return &RoundRobin{}
	}
}

func (s Strategy) String() string {
	switch s {
	case Max:
		return "max"
	case Min:
		return "min"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{None, Max, Min, Left, Right}
}

// ParseStrategy parses a strategy name as printed by String.
// "round-robin" is accepted for None.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "round-robin", "roundrobin":
		return None, nil
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func eligible(floors, sizes []int, i int) bool {
	floor := 0
	if i < len(floors) {
		floor = floors[i]
	}
	return sizes[i] > floor
}
