package geom

import "errors"

var (
	ErrInvalidPolicy  = errors.New("invalid shape policy")
	ErrBufferMismatch = errors.New("mesh buffer mismatch")
	ErrEmptyRing      = errors.New("ring has no points")
	ErrStepMismatch   = errors.New("steps do not match bones")
)
