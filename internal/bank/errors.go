package bank

import "errors"

var (
	// ErrAccountNotOpen is returned by transactions attempted before the
	// opening balance was set.
	ErrAccountNotOpen = errors.New("account has no opening balance yet")

	// ErrSessionStarted is returned when Run is called on a manager that has
	// already left the start state. Sessions are not restartable.
	ErrSessionStarted = errors.New("session already started")
)
