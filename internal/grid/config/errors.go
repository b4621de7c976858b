package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is matched by errors referencing a cell outside the grid.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrOverlappingSpan is returned when a span intersects a registered span.
	ErrOverlappingSpan = errors.New("overlapping span")
	// ErrInvalidSpan is returned for spans smaller than 1x1.
	ErrInvalidSpan = errors.New("invalid span size")
)

// PositionError reports a span or override that points outside the grid.
type PositionError struct {
	Pos    Position
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position %s: %s", e.Pos, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidPosition) match.
func (e *PositionError) Is(target error) bool {
	return target == ErrInvalidPosition
}
