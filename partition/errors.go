package partition

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNegativeTotal and ErrZeroFloor wrap ErrInvalidArgument.
	ErrNegativeTotal = fmt.Errorf("%w: negative total", ErrInvalidArgument)
	ErrZeroFloor     = fmt.Errorf("%w: floor must be at least 1", ErrInvalidArgument)

	// ErrStoreDiscarded is wrapped by the value Holder.Do panics with when the
	// function it ran panicked. The holder has already dropped the store by then.
	ErrStoreDiscarded = errors.New("partition store discarded")
)
