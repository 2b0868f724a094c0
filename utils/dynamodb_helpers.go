package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string attribute from a DynamoDB item
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ContainsString reports whether a list attribute contains the given value.
// Handles both DynamoDB list and string-set representations.
func ContainsString(item map[string]types.AttributeValue, field, value string) bool {
	attr, ok := item[field]
	if !ok {
		return false
	}
	switch v := attr.(type) {
	case *types.AttributeValueMemberL:
		for _, member := range v.Value {
			if s, ok := member.(*types.AttributeValueMemberS); ok && s.Value == value {
				return true
			}
		}
	case *types.AttributeValueMemberSS:
		for _, s := range v.Value {
			if s == value {
				return true
			}
		}
	}
	return false
}
