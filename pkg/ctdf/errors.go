package ctdf

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLine     = errors.New("unknown line")
	ErrLineNotFound    = errors.New("could not find a line for the stop")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUpstreamFormat  = errors.New("unexpected upstream response format")
)

type StopNotFoundError struct {
	Stop string
}

func (e *StopNotFoundError) Error() string {
	return fmt.Sprintf("stop %s not found", e.Stop)
}

type StopsNotOnSameLineError struct {
	FirstStop  string
	SecondStop string
}

func (e *StopsNotOnSameLineError) Error() string {
	return fmt.Sprintf("stops %s and %s are not on the same line", e.FirstStop, e.SecondStop)
}

// InvalidArgumentError is a negative passenger count. It matches
// ErrInvalidArgument with errors.Is.
type InvalidArgumentError struct {
	Argument string
	Value    int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must not be negative, got %d", ErrInvalidArgument, e.Argument, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

type LocationNotFoundError struct {
	Latitude  string
	Longitude string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("no address found at lat=%s lon=%s", e.Latitude, e.Longitude)
}

// IsNotFound reports whether err belongs to the lookup-miss class of errors.
func IsNotFound(err error) bool {
	var stopNotFound *StopNotFoundError
	var notOnSameLine *StopsNotOnSameLineError

	return errors.Is(err, ErrUnknownLine) ||
		errors.Is(err, ErrLineNotFound) ||
		errors.As(err, &stopNotFound) ||
		errors.As(err, &notOnSameLine)
}
