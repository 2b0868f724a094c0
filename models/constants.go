package models

// Account modes
const (
	ModeLooking  = "looking"
	ModeOffering = "offering"
)

// Swipe directions
const (
	DirectionLike      = "like"
	DirectionPass      = "pass"
	DirectionSuperlike = "superlike"
)

// Swipe target kinds
const (
	SwipedTypeUser    = "user"
	SwipedTypeListing = "listing"
)

// Listing types
const (
	ListingTypeStudio = "studio"
	ListingType1BR    = "1br"
	ListingType2BR    = "2br"
	ListingTypeRoom   = "room"
)

// Match kinds
const (
	MatchKindUserUser    = "user_user"
	MatchKindUserListing = "user_listing"
)

// IsValidMode reports whether mode is one of the supported account modes.
func IsValidMode(mode string) bool {
	return mode == ModeLooking || mode == ModeOffering
}

// IsValidDirection reports whether direction is a supported swipe direction.
func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionLike, DirectionPass, DirectionSuperlike:
		return true
	}
	return false
}

// IsValidSwipedType reports whether t is a supported swipe target kind.
func IsValidSwipedType(t string) bool {
	return t == SwipedTypeUser || t == SwipedTypeListing
}

// IsValidListingType reports whether t is a supported listing type.
func IsValidListingType(t string) bool {
	switch t {
	case ListingTypeStudio, ListingType1BR, ListingType2BR, ListingTypeRoom:
		return true
	}
	return false
}

// IsInterested reports whether a swipe direction expresses interest.
// Passes never count as interest.
func IsInterested(direction string) bool {
	return direction == DirectionLike || direction == DirectionSuperlike
}
