package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/pedro-boudoux/sublet-app/models"
	"github.com/pedro-boudoux/sublet-app/utils"
)

// AccountService is the account directory: onboarding, lookups, profile
// edits, and deletion.
type AccountService struct {
	Dynamo   *DynamoService
	Listings ListingResolver
}

// accountUpdatableFields are the profile fields a PATCH may touch.
var accountUpdatableFields = map[string]bool{
	"fullName":       true,
	"age":            true,
	"gender":         true,
	"searchLocation": true,
	"mode":           true,
	"profilePicture": true,
	"bio":            true,
	"lifestyleTags":  true,
}

// CreateAccount stores a new account with a fresh id and timestamps.
func (as *AccountService) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	if !models.IsValidMode(account.Mode) {
		return nil, ErrInvalidMode
	}

	now := time.Now().UTC().Format(time.RFC3339)
	account.ID = uuid.NewString()
	account.IsVerified = false
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := as.Dynamo.PutItem(ctx, models.AccountsTable, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Printf("Account created: %s (%s)", account.ID, account.Mode)
	return &account, nil
}

// GetAccount retrieves an account by its storage id.
func (as *AccountService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	key := map[string]dynamotypes.AttributeValue{
		"id": &dynamotypes.AttributeValueMemberS{Value: id},
	}

	item, err := as.Dynamo.GetItem(ctx, models.AccountsTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", id, err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}
	return &account, nil
}

// GetAccountByIdentity resolves the external auth subject to an account via
// the identityRef GSI. Used only during the login handshake.
func (as *AccountService) GetAccountByIdentity(ctx context.Context, identityRef string) (*models.Account, error) {
	keyCondition := "identityRef = :ref"
	values := map[string]dynamotypes.AttributeValue{
		":ref": &dynamotypes.AttributeValueMemberS{Value: identityRef},
	}

	items, err := as.Dynamo.QueryItemsWithIndex(ctx, models.AccountsTable, models.IdentityRefIndex, keyCondition, values, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query account by identity: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(items[0], &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}
	return &account, nil
}

// UpdateAccount applies a partial update; unspecified fields keep their
// prior values. An offering account still owning listings may not flip to
// looking: the in-flight listing would be orphaned, so the caller must
// delete it first.
func (as *AccountService) UpdateAccount(ctx context.Context, id string, updates map[string]interface{}) (*models.Account, error) {
	if _, err := as.GetAccount(ctx, id); err != nil {
		return nil, err
	}

	if rawMode, ok := updates["mode"]; ok {
		mode, _ := rawMode.(string)
		if !models.IsValidMode(mode) {
			return nil, ErrInvalidMode
		}
		if mode == models.ModeLooking {
			owned, err := as.Listings.ListByOwner(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to check owned listings: %w", err)
			}
			if len(owned) > 0 {
				return nil, ErrActiveListing
			}
		}
	}

	expression, names, values, err := buildUpdateExpression(updates, accountUpdatableFields)
	if err != nil {
		return nil, err
	}

	key := map[string]dynamotypes.AttributeValue{
		"id": &dynamotypes.AttributeValueMemberS{Value: id},
	}
	item, err := as.Dynamo.UpdateItem(ctx, models.AccountsTable, expression, key, values, names)
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated account: %w", err)
	}
	return &account, nil
}

// DeleteAccount removes an account by id.
func (as *AccountService) DeleteAccount(ctx context.Context, id string) error {
	key := map[string]dynamotypes.AttributeValue{
		"id": &dynamotypes.AttributeValueMemberS{Value: id},
	}
	return as.Dynamo.DeleteItem(ctx, models.AccountsTable, key)
}

// ListLookingAccounts scans for looking-mode accounts other than excludeID,
// optionally filtered by search location, capped at limit.
func (as *AccountService) ListLookingAccounts(ctx context.Context, excludeID, location string, limit int) ([]models.Account, error) {
	var accounts []models.Account
	err := as.Dynamo.ScanWithFilter(ctx, models.AccountsTable, func(item map[string]dynamotypes.AttributeValue) bool {
		if utils.ExtractString(item, "mode") != models.ModeLooking {
			return false
		}
		if location != "" && !strings.EqualFold(utils.ExtractString(item, "searchLocation"), location) {
			return false
		}
		return true
	}, map[string]string{"id": excludeID}, &accounts)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(accounts) > limit {
		accounts = accounts[:limit]
	}
	return accounts, nil
}

// buildUpdateExpression turns a partial-update map into a DynamoDB SET
// expression, renaming every field to avoid reserved-word collisions and
// marshalling values with attributevalue so numbers and lists survive.
// The updatedAt timestamp is always refreshed.
func buildUpdateExpression(updates map[string]interface{}, allowed map[string]bool) (string, map[string]string, map[string]dynamotypes.AttributeValue, error) {
	names := map[string]string{"#updatedAt": "updatedAt"}
	values := map[string]dynamotypes.AttributeValue{
		":updatedAt": &dynamotypes.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	clauses := []string{"#updatedAt = :updatedAt"}

	for field, value := range updates {
		if !allowed[field] {
			continue
		}
		marshaled, err := attributevalue.Marshal(value)
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to marshal update for %s: %w", field, err)
		}
		names["#"+field] = field
		values[":"+field] = marshaled
		clauses = append(clauses, fmt.Sprintf("#%s = :%s", field, field))
	}

	return "SET " + strings.Join(clauses, ", "), names, values, nil
}
