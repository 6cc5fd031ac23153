package cachelab

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [NewLRU], [NewCAR], and [NewCART].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity, minimum int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, minimum, capacity)
}
