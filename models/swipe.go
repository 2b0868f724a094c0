package models

// SwipeRecord is one immutable entry in the swipe ledger. The table is keyed
// by (swiperId, swipedId), so one decision per pair is enforced at write time.
type SwipeRecord struct {
	ID         string `dynamodbav:"id" json:"id"`
	SwiperID   string `dynamodbav:"swiperId" json:"swiperId"`   // Partition key
	SwipedID   string `dynamodbav:"swipedId" json:"swipedId"`   // Sort key
	SwipedType string `dynamodbav:"swipedType" json:"swipedType"` // user | listing
	Direction  string `dynamodbav:"direction" json:"direction"`   // like | pass | superlike
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipesTable is the DynamoDB table name for the swipe ledger
const SwipesTable = "Swipes"
