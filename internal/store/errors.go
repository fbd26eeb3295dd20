package store

import "errors"

var (
	// ErrCommandNotFound is returned when no command matches the requested
	// id or sync id.
	ErrCommandNotFound = errors.New("command not found")
	// ErrMetaNotFound is returned when a sync_meta key has never been set.
	ErrMetaNotFound = errors.New("sync meta key not found")
)
