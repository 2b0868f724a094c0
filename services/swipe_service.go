package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pedro-boudoux/sublet-app/models"
)

// SwipeLedgerAPI is the slice of the ledger the reconciler and feed builder
// depend on.
type SwipeLedgerAPI interface {
	Record(ctx context.Context, rec models.SwipeRecord) error
	FindReverse(ctx context.Context, swiperID, swipedID string) (*models.SwipeRecord, error)
	ListSwiped(ctx context.Context, swiperID string) (map[string]bool, error)
	ResetAll(ctx context.Context, swiperID string) (int, error)
}

// MatchCreator materializes a match exactly once per pair/listing
// combination. When the insert loses a race the already-existing match is
// returned with created=false.
type MatchCreator interface {
	CreateIfAbsent(ctx context.Context, match models.Match) (models.Match, bool, error)
}

// ListingResolver is the listing directory as the reconciler sees it:
// owner resolution for listing swipes and owned-listing enumeration for the
// host-likes-seeker branch.
type ListingResolver interface {
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Listing, error)
}

// SwipeService persists swipes and runs the match reconciliation rules.
type SwipeService struct {
	Ledger   SwipeLedgerAPI
	Matches  MatchCreator
	Listings ListingResolver
}

// SwipeResult is what every swipe returns, match or not. MatchID is nil when
// no match was made so the JSON carries an explicit null.
type SwipeResult struct {
	SwipeID string  `json:"swipeId"`
	Matched bool    `json:"matched"`
	MatchID *string `json:"matchId"`
}

// RecordSwipe validates and persists one swipe, then decides whether mutual
// interest now exists.
//
// The application conflates two swipe target kinds (seeker accounts and
// host-owned listings), so a host's interest can arrive two ways: liking the
// seeker directly, or the seeker having liked the host's listing. Both
// directions are checked before declaring "no match":
//
//   - user -> user: direct reverse like, else any like on a listing the
//     swiper owns (host liked seeker who had liked the host's listing)
//   - user -> listing: resolve the owner, check for the owner's direct like
//     on the swiper
//
// Missing listings or owners during resolution mean "no reverse interest",
// never an error; the swipe itself is already durably recorded by then.
func (s *SwipeService) RecordSwipe(ctx context.Context, swiperID, swipedID, swipedType, direction string) (*SwipeResult, error) {
	if !models.IsValidDirection(direction) {
		return nil, ErrInvalidDirection
	}
	if !models.IsValidSwipedType(swipedType) {
		return nil, ErrInvalidSwipedType
	}
	if swipedType == models.SwipedTypeUser && swiperID == swipedID {
		return nil, ErrSelfSwipe
	}

	rec := models.SwipeRecord{
		ID:         uuid.NewString(),
		SwiperID:   swiperID,
		SwipedID:   swipedID,
		SwipedType: swipedType,
		Direction:  direction,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Ledger.Record(ctx, rec); err != nil {
		return nil, err
	}

	result := &SwipeResult{SwipeID: rec.ID}
	if direction == models.DirectionPass {
		return result, nil
	}

	match, found, err := s.resolveMutualInterest(ctx, rec)
	if err != nil {
		// The swipe is already recorded; the caller can retry and the
		// duplicate-swipe guard keeps the ledger clean.
		return nil, fmt.Errorf("swipe recorded but match check failed: %w", err)
	}
	if !found {
		return result, nil
	}

	stored, _, err := s.Matches.CreateIfAbsent(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("swipe recorded but match creation failed: %w", err)
	}

	log.Printf("Match %s (%s) for pair %v", stored.ID, stored.Kind, stored.ParticipantIDs)
	result.Matched = true
	result.MatchID = &stored.ID
	return result, nil
}

// resolveMutualInterest runs the three-branch reverse-interest check for a
// Like/Superlike and builds the match to create, if any.
func (s *SwipeService) resolveMutualInterest(ctx context.Context, rec models.SwipeRecord) (models.Match, bool, error) {
	switch rec.SwipedType {
	case models.SwipedTypeUser:
		// Direct reverse: has the swiped user already liked the swiper?
		reverse, err := s.Ledger.FindReverse(ctx, rec.SwiperID, rec.SwipedID)
		if err != nil {
			return models.Match{}, false, err
		}
		if reverse != nil {
			return s.newMatch(models.MatchKindUserUser, rec.SwiperID, rec.SwipedID, ""), true, nil
		}

		// No direct reverse. If the swiper hosts listings, the swiped user may
		// have expressed interest through one of them instead.
		owned, err := s.Listings.ListByOwner(ctx, rec.SwiperID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return models.Match{}, false, nil
			}
			return models.Match{}, false, err
		}
		for _, listing := range owned {
			liked, err := s.Ledger.FindReverse(ctx, listing.ID, rec.SwipedID)
			if err != nil {
				return models.Match{}, false, err
			}
			if liked != nil {
				return s.newMatch(models.MatchKindUserListing, rec.SwiperID, rec.SwipedID, listing.ID), true, nil
			}
		}
		return models.Match{}, false, nil

	case models.SwipedTypeListing:
		listing, err := s.Listings.GetListing(ctx, rec.SwipedID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				// Listing vanished between feed and swipe: no reverse interest.
				return models.Match{}, false, nil
			}
			return models.Match{}, false, err
		}
		if listing.OwnerID == "" || listing.OwnerID == rec.SwiperID {
			return models.Match{}, false, nil
		}

		reverse, err := s.Ledger.FindReverse(ctx, rec.SwiperID, listing.OwnerID)
		if err != nil {
			return models.Match{}, false, err
		}
		if reverse != nil {
			return s.newMatch(models.MatchKindUserListing, rec.SwiperID, listing.OwnerID, rec.SwipedID), true, nil
		}
		return models.Match{}, false, nil
	}

	return models.Match{}, false, nil
}

func (s *SwipeService) newMatch(kind, a, b, listingID string) models.Match {
	return models.Match{
		ID:             uuid.NewString(),
		PairKey:        models.MatchPairKey(a, b, listingID),
		Kind:           kind,
		ParticipantIDs: models.SortParticipants(a, b),
		ListingID:      listingID,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// ResetSwipes purges a user's swipe history and returns the deleted count.
func (s *SwipeService) ResetSwipes(ctx context.Context, userID string) (int, error) {
	return s.Ledger.ResetAll(ctx, userID)
}
