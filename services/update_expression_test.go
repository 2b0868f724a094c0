package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-boudoux/sublet-app/models"
)

func TestBuildUpdateExpression(t *testing.T) {
	expr, names, values, err := buildUpdateExpression(
		map[string]interface{}{
			"bio":  "new bio",
			"mode": models.ModeOffering,
			"id":   "nope", // not in the allow list
		},
		map[string]bool{"bio": true, "mode": true},
	)
	require.NoError(t, err)

	assert.Contains(t, expr, "SET ")
	assert.Contains(t, expr, "#bio = :bio")
	assert.Contains(t, expr, "#mode = :mode")
	assert.Contains(t, expr, "#updatedAt = :updatedAt")
	assert.NotContains(t, expr, "#id")

	assert.Equal(t, "bio", names["#bio"])
	assert.Contains(t, values, ":bio")
	assert.Contains(t, values, ":updatedAt")
	assert.NotContains(t, values, ":id")
}

func TestBuildUpdateExpressionNoAllowedFields(t *testing.T) {
	expr, _, _, err := buildUpdateExpression(
		map[string]interface{}{"id": "nope"},
		map[string]bool{"bio": true},
	)
	require.NoError(t, err)
	assert.Equal(t, "SET #updatedAt = :updatedAt", expr)
}

func TestSortListingsNewestFirst(t *testing.T) {
	listings := []models.Listing{
		{ID: "old", CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: "new", CreatedAt: "2026-06-01T00:00:00Z"},
		{ID: "mid", CreatedAt: "2026-03-01T00:00:00Z"},
	}
	sortListingsNewestFirst(listings)

	assert.Equal(t, "new", listings[0].ID)
	assert.Equal(t, "mid", listings[1].ID)
	assert.Equal(t, "old", listings[2].ID)
}
