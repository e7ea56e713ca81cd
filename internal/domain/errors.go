package domain

import "errors"

var (
	ErrStorageCorrupt       = errors.New("stored session is corrupt")
	ErrAllocationFailed     = errors.New("allocation failed")
	ErrAllocationRejected   = errors.New("allocation already in progress")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrNoActiveNumber       = errors.New("no active number")
	ErrNotLoggedIn          = errors.New("session not started")
	ErrRegionNotFound       = errors.New("region not found")
)
