package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pedro-boudoux/sublet-app/models"
)

// SwipeLedger is the append-only record of like/pass decisions. It is the
// single source of truth for "has X already decided about Y": the reconciler
// reads it for reverse-interest checks and the feed builder reads it to
// exclude decided candidates.
type SwipeLedger struct {
	Dynamo *DynamoService
}

// Record appends one swipe. The table key is (swiperId, swipedId), so a
// second decision for the same pair fails the conditional write and is
// surfaced as ErrDuplicateSwipe; the original record is untouched.
func (l *SwipeLedger) Record(ctx context.Context, rec models.SwipeRecord) error {
	err := l.Dynamo.PutItemConditional(ctx, models.SwipesTable, rec, "attribute_not_exists(swiperId)")
	if errors.Is(err, ErrConditionalCheckFailed) {
		return ErrDuplicateSwipe
	}
	if err != nil {
		return fmt.Errorf("failed to record swipe: %w", err)
	}

	log.Printf("Swipe recorded: %s -> %s (%s, %s)", rec.SwiperID, rec.SwipedID, rec.SwipedType, rec.Direction)
	return nil
}

// FindReverse returns the Like/Superlike that swipedID has recorded toward
// swiperID, or nil when no such interest exists. A recorded Pass is not
// reverse interest.
func (l *SwipeLedger) FindReverse(ctx context.Context, swiperID, swipedID string) (*models.SwipeRecord, error) {
	key := map[string]dynamotypes.AttributeValue{
		"swiperId": &dynamotypes.AttributeValueMemberS{Value: swipedID},
		"swipedId": &dynamotypes.AttributeValueMemberS{Value: swiperID},
	}

	item, err := l.Dynamo.GetItem(ctx, models.SwipesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reverse swipe: %w", err)
	}
	if item == nil {
		return nil, nil
	}

	var rec models.SwipeRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipe record: %w", err)
	}
	if !models.IsInterested(rec.Direction) {
		return nil, nil
	}
	return &rec, nil
}

// ListSwiped returns the set of ids the swiper has already decided about,
// regardless of direction.
func (l *SwipeLedger) ListSwiped(ctx context.Context, swiperID string) (map[string]bool, error) {
	keyCondition := "swiperId = :swiper"
	values := map[string]dynamotypes.AttributeValue{
		":swiper": &dynamotypes.AttributeValueMemberS{Value: swiperID},
	}

	items, err := l.Dynamo.QueryItems(ctx, models.SwipesTable, keyCondition, values, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list swipes for %s: %w", swiperID, err)
	}

	swiped := make(map[string]bool, len(items))
	for _, item := range items {
		var rec models.SwipeRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			log.Printf("Skipping unreadable swipe record: %v", err)
			continue
		}
		swiped[rec.SwipedID] = true
	}
	return swiped, nil
}

// ResetAll purges every swipe recorded by swiperID and returns how many were
// deleted. Administrative operation, not part of the normal user flow.
func (l *SwipeLedger) ResetAll(ctx context.Context, swiperID string) (int, error) {
	keyCondition := "swiperId = :swiper"
	values := map[string]dynamotypes.AttributeValue{
		":swiper": &dynamotypes.AttributeValueMemberS{Value: swiperID},
	}

	items, err := l.Dynamo.QueryItems(ctx, models.SwipesTable, keyCondition, values, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list swipes for reset: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	writeRequests := make([]dynamotypes.WriteRequest, 0, len(items))
	for _, item := range items {
		writeRequests = append(writeRequests, dynamotypes.WriteRequest{
			DeleteRequest: &dynamotypes.DeleteRequest{
				Key: map[string]dynamotypes.AttributeValue{
					"swiperId": item["swiperId"],
					"swipedId": item["swipedId"],
				},
			},
		})
	}

	if err := l.Dynamo.BatchWriteItems(ctx, models.SwipesTable, writeRequests); err != nil {
		return 0, fmt.Errorf("failed to delete swipes: %w", err)
	}

	log.Printf("Reset %d swipes for user %s", len(writeRequests), swiperID)
	return len(writeRequests), nil
}
