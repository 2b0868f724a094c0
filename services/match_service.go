package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pedro-boudoux/sublet-app/models"
	"github.com/pedro-boudoux/sublet-app/utils"
)

// AccountResolver resolves accounts for enrichment and feed building.
type AccountResolver interface {
	GetAccount(ctx context.Context, id string) (*models.Account, error)
}

// MatchService owns the matches table: conditional creation for the
// reconciler plus the read side for the matches screen.
type MatchService struct {
	Dynamo   *DynamoService
	Accounts AccountResolver
}

// MatchSummary is one row on the matches screen.
type MatchSummary struct {
	MatchID              string              `json:"matchId"`
	Kind                 string              `json:"kind"`
	ListingID            string              `json:"listingId,omitempty"`
	MatchedAt            string              `json:"matchedAt"`
	LastMessage          string              `json:"lastMessage,omitempty"`
	LastMessageTimestamp string              `json:"lastMessageTimestamp,omitempty"`
	MatchedUser          *models.MatchedUser `json:"matchedUser"`
}

// MatchDetail is a single match with both participants hydrated.
type MatchDetail struct {
	MatchID   string           `json:"matchId"`
	Kind      string           `json:"kind"`
	ListingID string           `json:"listingId,omitempty"`
	MatchedAt string           `json:"matchedAt"`
	Users     []models.Account `json:"users"`
}

// CreateIfAbsent inserts the match unless one already exists for its
// pair key. On a lost race the existing match is fetched and returned, so
// every caller sees the same match id for the same pair.
func (ms *MatchService) CreateIfAbsent(ctx context.Context, match models.Match) (models.Match, bool, error) {
	err := ms.Dynamo.PutItemConditional(ctx, models.MatchesTable, match, "attribute_not_exists(pairKey)")
	if err == nil {
		return match, true, nil
	}
	if !errors.Is(err, ErrConditionalCheckFailed) {
		return models.Match{}, false, fmt.Errorf("failed to create match: %w", err)
	}

	existing, err := ms.getByPairKey(ctx, match.PairKey)
	if err != nil {
		return models.Match{}, false, err
	}
	log.Printf("Match for pair %s already exists as %s", match.PairKey, existing.ID)
	return *existing, false, nil
}

func (ms *MatchService) getByPairKey(ctx context.Context, pairKey string) (*models.Match, error) {
	key := map[string]dynamotypes.AttributeValue{
		"pairKey": &dynamotypes.AttributeValueMemberS{Value: pairKey},
	}
	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match by pair key: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// GetByID looks a match up through the matchId GSI.
func (ms *MatchService) GetByID(ctx context.Context, matchID string) (*models.Match, error) {
	keyCondition := "matchId = :matchId"
	values := map[string]dynamotypes.AttributeValue{
		":matchId": &dynamotypes.AttributeValueMemberS{Value: matchID},
	}

	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.MatchIDIndex, keyCondition, values, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query match %s: %w", matchID, err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(items[0], &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// SetLastMessage refreshes the match's last-message preview fields.
func (ms *MatchService) SetLastMessage(ctx context.Context, pairKey, content, timestamp string) error {
	key := map[string]dynamotypes.AttributeValue{
		"pairKey": &dynamotypes.AttributeValueMemberS{Value: pairKey},
	}
	updateExpression := "SET #lastMessage = :content, #lastMessageTimestamp = :ts"
	names := map[string]string{
		"#lastMessage":          "lastMessage",
		"#lastMessageTimestamp": "lastMessageTimestamp",
	}
	values := map[string]dynamotypes.AttributeValue{
		":content": &dynamotypes.AttributeValueMemberS{Value: content},
		":ts":      &dynamotypes.AttributeValueMemberS{Value: timestamp},
	}

	_, err := ms.Dynamo.UpdateItem(ctx, models.MatchesTable, updateExpression, key, values, names)
	if err != nil {
		return fmt.Errorf("failed to update last message preview: %w", err)
	}
	return nil
}

// ListMatchesForUser returns the user's matches enriched with the
// counterpart's public card, newest conversation first.
func (ms *MatchService) ListMatchesForUser(ctx context.Context, userID string) ([]MatchSummary, error) {
	var matches []models.Match
	err := ms.Dynamo.ScanWithFilter(ctx, models.MatchesTable, func(item map[string]dynamotypes.AttributeValue) bool {
		return utils.ContainsString(item, "participantIds", userID)
	}, nil, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to scan matches: %w", err)
	}

	summaries := make([]MatchSummary, 0, len(matches))
	for _, match := range matches {
		summary := MatchSummary{
			MatchID:              match.ID,
			Kind:                 match.Kind,
			ListingID:            match.ListingID,
			MatchedAt:            match.CreatedAt,
			LastMessage:          match.LastMessage,
			LastMessageTimestamp: match.LastMessageTimestamp,
		}

		otherID := match.Counterpart(userID)
		if otherID != "" {
			other, err := ms.Accounts.GetAccount(ctx, otherID)
			if err == nil && other != nil {
				summary.MatchedUser = &models.MatchedUser{
					ID:             other.ID,
					Username:       other.Username,
					FullName:       other.FullName,
					ProfilePicture: other.ProfilePicture,
					SearchLocation: other.SearchLocation,
				}
			} else if err != nil && !errors.Is(err, ErrNotFound) {
				log.Printf("Failed to load counterpart %s for match %s: %v", otherID, match.ID, err)
			}
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].sortKey() > summaries[j].sortKey()
	})
	return summaries, nil
}

func (s MatchSummary) sortKey() string {
	if s.LastMessageTimestamp != "" {
		return s.LastMessageTimestamp
	}
	return s.MatchedAt
}

// GetMatchDetail returns one match with both participants' profiles.
func (ms *MatchService) GetMatchDetail(ctx context.Context, matchID string) (*MatchDetail, error) {
	match, err := ms.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	detail := &MatchDetail{
		MatchID:   match.ID,
		Kind:      match.Kind,
		ListingID: match.ListingID,
		MatchedAt: match.CreatedAt,
	}
	for _, id := range match.ParticipantIDs {
		account, err := ms.Accounts.GetAccount(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		detail.Users = append(detail.Users, *account)
	}
	return detail, nil
}
