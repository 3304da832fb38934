package chart

import "errors"

var (
	// ErrInvalidConfig is returned by Validate and Build for unusable constants
	ErrInvalidConfig = errors.New("invalid chart config")
)
