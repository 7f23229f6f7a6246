package commands

import "errors"

var (
	// ErrInputNotFound is returned when the input path does not exist or
	// is not a regular file
	ErrInputNotFound = errors.New("input file not found")

	// ErrWrongExtension is returned when the input suffix does not match
	// the conversion direction
	ErrWrongExtension = errors.New("wrong input extension")

	// ErrUsage is returned for malformed command lines
	ErrUsage = errors.New("invalid usage")
)
