package ecs

import "errors"

var (
	// ErrUnknownPrefab is raised by Spawn for a name with no registration.
	ErrUnknownPrefab = errors.New("unknown prefab")

	// ErrUnknownPattern is raised by Pattern for a name with no registration.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrUnknownGroup is raised when registering into or updating a system
	// group that was never added.
	ErrUnknownGroup = errors.New("unknown system group")

	// ErrComponentLimit is raised when a world interns more distinct
	// component keys than its membership masks can hold.
	ErrComponentLimit = errors.New("too many component kinds")

	// ErrComponentPairs is raised when NewEntity receives arguments that are
	// not (string key, value) pairs.
	ErrComponentPairs = errors.New("components must be (string key, value) pairs")
)
