package model

import "github.com/pkg/errors"

// MinDimension is the smallest width or height a Generation accepts.
// Toroidal neighbor wrapping is single-step and needs at least 3 cells per axis.
const MinDimension = 3

// ErrInvalidDimension is returned when a Generation is requested below MinDimension
var ErrInvalidDimension = errors.New("generation width and height must be equal or greater than 3")
