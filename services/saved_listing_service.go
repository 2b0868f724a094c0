package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pedro-boudoux/sublet-app/models"
)

// SavedListingService manages listing bookmarks.
type SavedListingService struct {
	Dynamo   *DynamoService
	Listings ListingResolver
}

// SavedListingView is a bookmark with its listing hydrated.
type SavedListingView struct {
	SavedAt string         `json:"savedAt"`
	Listing models.Listing `json:"listing"`
}

// SaveListing bookmarks a listing for a user. Verifies the listing still
// exists; saving the same listing twice fails the conditional write.
func (ss *SavedListingService) SaveListing(ctx context.Context, userID, listingID string) (*models.SavedListing, error) {
	if _, err := ss.Listings.GetListing(ctx, listingID); err != nil {
		return nil, err
	}

	saved := models.SavedListing{
		UserID:    userID,
		ListingID: listingID,
		SavedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	err := ss.Dynamo.PutItemConditional(ctx, models.SavedListingsTable, saved, "attribute_not_exists(userId)")
	if errors.Is(err, ErrConditionalCheckFailed) {
		return nil, ErrAlreadySaved
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}
	return &saved, nil
}

// ListSaved returns a user's bookmarks with listings hydrated, newest save
// first. Bookmarks whose listing has since been deleted are skipped.
func (ss *SavedListingService) ListSaved(ctx context.Context, userID string) ([]SavedListingView, error) {
	keyCondition := "userId = :user"
	values := map[string]dynamotypes.AttributeValue{
		":user": &dynamotypes.AttributeValueMemberS{Value: userID},
	}

	items, err := ss.Dynamo.QueryItems(ctx, models.SavedListingsTable, keyCondition, values, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved listings: %w", err)
	}

	var records []models.SavedListing
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved listings: %w", err)
	}

	views := make([]SavedListingView, 0, len(records))
	for _, record := range records {
		listing, err := ss.Listings.GetListing(ctx, record.ListingID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			log.Printf("Failed to hydrate saved listing %s: %v", record.ListingID, err)
			continue
		}
		views = append(views, SavedListingView{SavedAt: record.SavedAt, Listing: *listing})
	}
	return views, nil
}

// DeleteSaved removes a bookmark.
func (ss *SavedListingService) DeleteSaved(ctx context.Context, userID, listingID string) error {
	key := map[string]dynamotypes.AttributeValue{
		"userId":    &dynamotypes.AttributeValueMemberS{Value: userID},
		"listingId": &dynamotypes.AttributeValueMemberS{Value: listingID},
	}
	return ss.Dynamo.DeleteItem(ctx, models.SavedListingsTable, key)
}
