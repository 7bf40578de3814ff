package domain

import "errors"

var (
	ErrUnknownEnvironment = errors.New("invalid environment")
)
