package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/pedro-boudoux/sublet-app/models"
)

// MatchReader is the slice of the match service the messaging layer needs:
// participant checks and last-message preview updates.
type MatchReader interface {
	GetByID(ctx context.Context, matchID string) (*models.Match, error)
	SetLastMessage(ctx context.Context, pairKey, content, timestamp string) error
}

// Broadcaster pushes events to a match's socket room. *socketio.Server
// satisfies it; a nil Notifier disables realtime delivery.
type Broadcaster interface {
	BroadcastToRoom(namespace, room, event string, args ...interface{}) bool
}

// MessageService stores chat messages and keeps the match preview current.
type MessageService struct {
	Dynamo   *DynamoService
	Matches  MatchReader
	Notifier Broadcaster
}

// CreateMessage persists a message after verifying the sender belongs to
// the match, refreshes the match's last-message preview, and broadcasts to
// the match room.
func (ms *MessageService) CreateMessage(ctx context.Context, matchID, senderID, content string) (*models.Message, error) {
	match, err := ms.Matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	message := models.Message{
		ID:        uuid.NewString(),
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ms.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if err := ms.Matches.SetLastMessage(ctx, match.PairKey, content, message.Timestamp); err != nil {
		// The message is persisted; a stale preview is tolerable.
		log.Printf("Failed to refresh preview for match %s: %v", matchID, err)
	}

	if ms.Notifier != nil {
		ms.Notifier.BroadcastToRoom("/", matchID, "newMessage", message)
	}
	return &message, nil
}

// ListMessages returns a match's messages in chronological order.
func (ms *MessageService) ListMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	keyCondition := "matchId = :match"
	values := map[string]dynamotypes.AttributeValue{
		":match": &dynamotypes.AttributeValueMemberS{Value: matchID},
	}

	items, err := ms.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, values, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for match %s: %w", matchID, err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})
	return messages, nil
}
