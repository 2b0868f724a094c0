package services

import "errors"

// Sentinel errors surfaced to controllers. Each maps to one stable
// machine-readable error kind on the wire; anything else is an internal
// server error.
var (
	ErrDuplicateSwipe     = errors.New("already swiped on this target")
	ErrSelfSwipe          = errors.New("cannot swipe on yourself")
	ErrInvalidDirection   = errors.New("direction must be 'like', 'pass', or 'superlike'")
	ErrInvalidSwipedType  = errors.New("swipedType must be 'user' or 'listing'")
	ErrInvalidMode        = errors.New("mode must be 'looking' or 'offering'")
	ErrInvalidListingType = errors.New("type must be 'studio', '1br', '2br', or 'room'")
	ErrInvalidMimeType    = errors.New("unsupported image type")
	ErrNotFound           = errors.New("not found")
	ErrAlreadySaved       = errors.New("listing already saved")
	ErrNotParticipant     = errors.New("user is not part of this match")
	ErrActiveListing      = errors.New("account still owns a listing; delete it before switching modes")
)
