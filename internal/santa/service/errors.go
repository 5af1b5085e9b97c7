package service

import "errors"

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrMemberNotFound = errors.New("member not found in group")
	ErrGuestNotFound  = errors.New("guest link not found")
	ErrInvalidGroup   = errors.New("invalid group")

	// ErrBadAssignment means a computed table failed its derangement check
	// and was not stored.
	ErrBadAssignment = errors.New("computed assignment is not a derangement")
)
