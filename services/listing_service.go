package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/pedro-boudoux/sublet-app/models"
	"github.com/pedro-boudoux/sublet-app/utils"
)

// ListingService is the listing directory.
type ListingService struct {
	Dynamo *DynamoService
}

var listingUpdatableFields = map[string]bool{
	"title":         true,
	"price":         true,
	"availableDate": true,
	"location":      true,
	"distanceTo":    true,
	"type":          true,
	"amenities":     true,
	"lifestyleTags": true,
	"images":        true,
	"description":   true,
}

// CreateListing stores a new listing with a fresh id and timestamps.
func (ls *ListingService) CreateListing(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	if !models.IsValidListingType(listing.Type) {
		return nil, ErrInvalidListingType
	}

	now := time.Now().UTC().Format(time.RFC3339)
	listing.ID = uuid.NewString()
	listing.IsVerified = false
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if err := ls.Dynamo.PutItem(ctx, models.ListingsTable, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	log.Printf("Listing created: %s (owner %s)", listing.ID, listing.OwnerID)
	return &listing, nil
}

// GetListing retrieves a listing by id.
func (ls *ListingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	key := map[string]dynamotypes.AttributeValue{
		"id": &dynamotypes.AttributeValueMemberS{Value: id},
	}

	item, err := ls.Dynamo.GetItem(ctx, models.ListingsTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	var listing models.Listing
	if err := attributevalue.UnmarshalMap(item, &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing: %w", err)
	}
	return &listing, nil
}

// ListByOwner returns the listings owned by ownerID, newest first.
func (ls *ListingService) ListByOwner(ctx context.Context, ownerID string) ([]models.Listing, error) {
	keyCondition := "ownerId = :owner"
	values := map[string]dynamotypes.AttributeValue{
		":owner": &dynamotypes.AttributeValueMemberS{Value: ownerID},
	}

	items, err := ls.Dynamo.QueryItemsWithIndex(ctx, models.ListingsTable, models.OwnerIDIndex, keyCondition, values, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings for owner %s: %w", ownerID, err)
	}

	var listings []models.Listing
	if err := attributevalue.UnmarshalListOfMaps(items, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listings: %w", err)
	}

	sortListingsNewestFirst(listings)
	return listings, nil
}

// ListRecent returns up to limit listings, newest first.
func (ls *ListingService) ListRecent(ctx context.Context, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	if err := ls.Dynamo.ScanWithFilter(ctx, models.ListingsTable, nil, nil, &listings); err != nil {
		return nil, err
	}

	sortListingsNewestFirst(listings)
	if limit > 0 && len(listings) > limit {
		listings = listings[:limit]
	}
	return listings, nil
}

// ListCandidateListings scans for feed candidates: listings not owned by
// excludeOwnerID, optionally filtered by location, capped at limit.
func (ls *ListingService) ListCandidateListings(ctx context.Context, excludeOwnerID, location string, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	err := ls.Dynamo.ScanWithFilter(ctx, models.ListingsTable, func(item map[string]dynamotypes.AttributeValue) bool {
		if location != "" && !strings.EqualFold(utils.ExtractString(item, "location"), location) {
			return false
		}
		return true
	}, map[string]string{"ownerId": excludeOwnerID}, &listings)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(listings) > limit {
		listings = listings[:limit]
	}
	return listings, nil
}

// UpdateListing applies a partial update; unspecified fields keep their
// prior values.
func (ls *ListingService) UpdateListing(ctx context.Context, id string, updates map[string]interface{}) (*models.Listing, error) {
	if _, err := ls.GetListing(ctx, id); err != nil {
		return nil, err
	}

	if rawType, ok := updates["type"]; ok {
		t, _ := rawType.(string)
		if !models.IsValidListingType(t) {
			return nil, ErrInvalidListingType
		}
	}

	expression, names, values, err := buildUpdateExpression(updates, listingUpdatableFields)
	if err != nil {
		return nil, err
	}

	key := map[string]dynamotypes.AttributeValue{
		"id": &dynamotypes.AttributeValueMemberS{Value: id},
	}
	item, err := ls.Dynamo.UpdateItem(ctx, models.ListingsTable, expression, key, values, names)
	if err != nil {
		return nil, err
	}

	var listing models.Listing
	if err := attributevalue.UnmarshalMap(item, &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated listing: %w", err)
	}
	return &listing, nil
}

// DeleteListing removes a listing by id.
func (ls *ListingService) DeleteListing(ctx context.Context, id string) error {
	key := map[string]dynamotypes.AttributeValue{
		"id": &dynamotypes.AttributeValueMemberS{Value: id},
	}
	return ls.Dynamo.DeleteItem(ctx, models.ListingsTable, key)
}

func sortListingsNewestFirst(listings []models.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt > listings[j].CreatedAt
	})
}
