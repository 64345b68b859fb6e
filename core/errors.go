package core

import "github.com/pkg/errors"

// ErrInvalidState marks a structurally broken GameState
var ErrInvalidState = errors.New("invalid game state")

func errInvalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidState, format, args...)
}
