package coverage

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedShape             = errors.New("malformed instance type")
	ErrUnknownNormalizationFactor = errors.New("unknown normalization factor")
)

// ShapeError is returned when an instance type cannot be split into a
// family and a size.
type ShapeError struct {
	Shape string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %q has no family/size separator", ErrMalformedShape, e.Shape)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrMalformedShape
}

// FactorError is returned when an instance size is missing from the
// normalization factor table.
type FactorError struct {
	Shape string
	Size  string
}

func (e *FactorError) Error() string {
	return fmt.Sprintf("%s: size %q of instance type %q", ErrUnknownNormalizationFactor, e.Size, e.Shape)
}

func (e *FactorError) Is(target error) bool {
	return target == ErrUnknownNormalizationFactor
}
