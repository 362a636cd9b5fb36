package sector

import (
	"errors"
	"fmt"
)

// ErrMalformedBoundary - общий признак некорректного набора границ
var ErrMalformedBoundary = errors.New("malformed boundary")

// MalformedBoundaryError описывает конкретную проблему в наборе границ.
// Feature равен -1, если документ не удалось разобрать целиком.
type MalformedBoundaryError struct {
	Feature int
	Sector  string
	Reason  string
}

func (e *MalformedBoundaryError) Error() string {
	if e.Feature < 0 {
		return fmt.Sprintf("malformed boundary dataset: %s", e.Reason)
	}
	if e.Sector != "" {
		return fmt.Sprintf("malformed boundary feature #%d (%s): %s", e.Feature, e.Sector, e.Reason)
	}
	return fmt.Sprintf("malformed boundary feature #%d: %s", e.Feature, e.Reason)
}

// Is позволяет сравнивать через errors.Is(err, ErrMalformedBoundary)
func (e *MalformedBoundaryError) Is(target error) bool {
	return target == ErrMalformedBoundary
}
