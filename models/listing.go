package models

// Listing is a sublet posting owned by exactly one offering account.
// OwnerID holds the owner account's storage id.
type Listing struct {
	ID            string   `dynamodbav:"id" json:"id"`
	OwnerID       string   `dynamodbav:"ownerId" json:"ownerId"`
	Title         string   `dynamodbav:"title" json:"title"`
	Price         float64  `dynamodbav:"price" json:"price"`
	AvailableDate string   `dynamodbav:"availableDate" json:"availableDate"`
	Location      string   `dynamodbav:"location" json:"location"`
	DistanceTo    string   `dynamodbav:"distanceTo,omitempty" json:"distanceTo,omitempty"`
	Type          string   `dynamodbav:"type" json:"type"`
	Amenities     []string `dynamodbav:"amenities,omitempty" json:"amenities,omitempty"`
	LifestyleTags []string `dynamodbav:"lifestyleTags,omitempty" json:"lifestyleTags,omitempty"`
	Images        []string `dynamodbav:"images,omitempty" json:"images,omitempty"`
	Description   string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	IsVerified    bool     `dynamodbav:"isVerified" json:"isVerified"`
	CreatedAt     string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// ListingsTable is the DynamoDB table name for listings
const ListingsTable = "Listings"

// OwnerIDIndex is the GSI used to resolve the listings owned by an account
const OwnerIDIndex = "ownerId-index"
