package lru

import (
	"errors"
	"strconv"
)

var ErrInvalidCapacity = errors.New("lru: Capacity must be a positive integer")

// InvalidCapacityError reports the rejected capacity. It matches
// ErrInvalidCapacity under errors.Is.
type InvalidCapacityError int

func (e InvalidCapacityError) Error() string {
	return ErrInvalidCapacity.Error() + ", got " + strconv.Itoa(int(e))
}

func (e InvalidCapacityError) Is(target error) bool {
	return target == ErrInvalidCapacity
}
