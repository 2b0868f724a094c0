package models

// Message is one chat message within a match.
type Message struct {
	ID        string `dynamodbav:"messageId" json:"id"` // Sort key
	MatchID   string `dynamodbav:"matchId" json:"matchId"` // Partition key
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
}

// MessagesTable is the DynamoDB table name for messages
const MessagesTable = "Messages"
