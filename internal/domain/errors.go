package domain

import "errors"

var (
	ErrInvalidPractice   = errors.New("invalid practice")
	ErrDuplicatePractice = errors.New("duplicate practice")
	ErrInvalidProfile    = errors.New("invalid profile")
	ErrInvalidPolicy     = errors.New("invalid scoring policy")
)
