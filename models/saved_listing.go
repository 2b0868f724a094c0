package models

// SavedListing is a bookmark: a user keeping a listing around outside the
// swipe flow. Keyed by (userId, listingId) so saving twice is a conditional
// write failure, not a second row.
type SavedListing struct {
	UserID    string `dynamodbav:"userId" json:"userId"`       // Partition key
	ListingID string `dynamodbav:"listingId" json:"listingId"` // Sort key
	SavedAt   string `dynamodbav:"savedAt" json:"savedAt"`
}

// SavedListingsTable is the DynamoDB table name for saved listings
const SavedListingsTable = "SavedListings"
