package models

// Account is a user profile. The storage id is the canonical identifier used
// everywhere in the system (listing ownership, swipes, match participants);
// IdentityRef only bridges the external auth provider's subject to an account
// during the login handshake.
type Account struct {
	ID             string   `dynamodbav:"id" json:"id"`
	IdentityRef    string   `dynamodbav:"identityRef,omitempty" json:"identityRef,omitempty"`
	Username       string   `dynamodbav:"username" json:"username"`
	Email          string   `dynamodbav:"email" json:"email"`
	FullName       string   `dynamodbav:"fullName" json:"fullName"`
	Age            int      `dynamodbav:"age" json:"age"`
	Gender         string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	SearchLocation string   `dynamodbav:"searchLocation" json:"searchLocation"`
	Mode           string   `dynamodbav:"mode" json:"mode"`
	ProfilePicture string   `dynamodbav:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Bio            string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	LifestyleTags  []string `dynamodbav:"lifestyleTags,omitempty" json:"lifestyleTags,omitempty"`
	IsVerified     bool     `dynamodbav:"isVerified" json:"isVerified"`
	CreatedAt      string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt      string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// AccountsTable is the DynamoDB table name for accounts
const AccountsTable = "Accounts"

// IdentityRefIndex is the GSI used for external-identity lookups
const IdentityRefIndex = "identityRef-index"
