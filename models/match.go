package models

import "strings"

// Match records mutual interest between two accounts. ParticipantIDs are
// stored sorted so the same pair always produces the same identity, and
// PairKey (the table partition key) makes match creation a conditional
// insert-if-absent: concurrent reconciliations of the same pair cannot
// produce two records.
type Match struct {
	ID             string   `dynamodbav:"matchId" json:"matchId"`
	PairKey        string   `dynamodbav:"pairKey" json:"-"` // Partition key
	Kind           string   `dynamodbav:"kind" json:"kind"` // user_user | user_listing
	ParticipantIDs []string `dynamodbav:"participantIds" json:"participantIds"`
	ListingID      string   `dynamodbav:"listingId,omitempty" json:"listingId,omitempty"`
	CreatedAt      string   `dynamodbav:"createdAt" json:"createdAt"`

	LastMessage          string `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageTimestamp string `dynamodbav:"lastMessageTimestamp,omitempty" json:"lastMessageTimestamp,omitempty"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// MatchIDIndex is the GSI used to look a match up by its id
const MatchIDIndex = "matchId-index"

// SortParticipants returns the two account ids in lexical order.
func SortParticipants(a, b string) []string {
	if b < a {
		a, b = b, a
	}
	return []string{a, b}
}

// MatchPairKey builds the uniqueness key for a match: the sorted participant
// pair, extended with the listing id for listing-kind matches.
func MatchPairKey(a, b, listingID string) string {
	parts := SortParticipants(a, b)
	if listingID != "" {
		parts = append(parts, listingID)
	}
	return strings.Join(parts, "#")
}

// Counterpart returns the other participant's id, or "" when userID is not
// part of the match.
func (m *Match) Counterpart(userID string) string {
	for _, id := range m.ParticipantIDs {
		if id != userID {
			return id
		}
	}
	return ""
}

// HasParticipant reports whether userID is one of the match's participants.
func (m *Match) HasParticipant(userID string) bool {
	for _, id := range m.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// MatchedUser is the counterpart's public card shown on the matches screen.
type MatchedUser struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	ProfilePicture string `json:"profilePicture"`
	SearchLocation string `json:"searchLocation"`
}
