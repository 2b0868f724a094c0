package services

import (
	"context"
	"fmt"

	"github.com/pedro-boudoux/sublet-app/models"
)

const (
	// DefaultCandidateLimit is used when the caller does not ask for a page size.
	DefaultCandidateLimit = 20
	// MaxCandidateLimit is the hard cap on one candidate page.
	MaxCandidateLimit = 50
)

// ListingFeedSource supplies candidate listings for seekers.
type ListingFeedSource interface {
	ListCandidateListings(ctx context.Context, excludeOwnerID, location string, limit int) ([]models.Listing, error)
}

// AccountFeedSource supplies candidate seeker accounts for hosts.
type AccountFeedSource interface {
	AccountResolver
	ListLookingAccounts(ctx context.Context, excludeID, location string, limit int) ([]models.Account, error)
}

// FeedService builds the next page of swipeable candidates for a user,
// excluding self and everything the ledger says is already decided.
type FeedService struct {
	Accounts AccountFeedSource
	Listings ListingFeedSource
	Ledger   SwipeLedgerAPI
}

// FeedFilters echoes the filters the page was built with.
type FeedFilters struct {
	Location string `json:"location,omitempty"`
	Limit    int    `json:"limit"`
}

// CandidatePage is one page of the discovery feed. Exactly one of Listings
// or Accounts is populated, matching Type.
type CandidatePage struct {
	Type     string
	Listings []models.Listing
	Accounts []models.Account
	Filters  FeedFilters
}

// Count returns how many candidates the page holds.
func (p *CandidatePage) Count() int {
	if p.Type == "listings" {
		return len(p.Listings)
	}
	return len(p.Accounts)
}

// GetCandidates resolves the requesting account and returns its next batch
// of un-swiped candidates. Looking accounts see listings; offering accounts
// see looking accounts. Offset/limit only: under concurrent writes a
// candidate can be skipped or repeated across pages, which is acceptable for
// a casual discovery feed.
func (fs *FeedService) GetCandidates(ctx context.Context, userID, location string, limit int) (*CandidatePage, error) {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}
	if limit > MaxCandidateLimit {
		limit = MaxCandidateLimit
	}

	account, err := fs.Accounts.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	swiped, err := fs.Ledger.ListSwiped(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load swipe history: %w", err)
	}

	page := &CandidatePage{Filters: FeedFilters{Location: location, Limit: limit}}

	if account.Mode == models.ModeLooking {
		page.Type = "listings"
		listings, err := fs.Listings.ListCandidateListings(ctx, userID, location, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to load candidate listings: %w", err)
		}
		page.Listings = make([]models.Listing, 0, len(listings))
		for _, listing := range listings {
			if !swiped[listing.ID] {
				page.Listings = append(page.Listings, listing)
			}
		}
		return page, nil
	}

	page.Type = "users"
	accounts, err := fs.Accounts.ListLookingAccounts(ctx, userID, location, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate users: %w", err)
	}
	page.Accounts = make([]models.Account, 0, len(accounts))
	for _, candidate := range accounts {
		if !swiped[candidate.ID] {
			page.Accounts = append(page.Accounts, candidate)
		}
	}
	return page, nil
}
