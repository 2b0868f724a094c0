package services

import (
	"context"
	"sort"
	"strings"

	"github.com/pedro-boudoux/sublet-app/models"
)

// LocationService surfaces the distinct locations mentioned across listings
// and account search locations, for the client's filter dropdown.
type LocationService struct {
	Dynamo *DynamoService
}

// ListLocations returns the deduplicated, title-cased union of listing
// locations and account search locations, sorted alphabetically.
func (ls *LocationService) ListLocations(ctx context.Context) ([]string, error) {
	var listings []models.Listing
	if err := ls.Dynamo.ScanWithFilter(ctx, models.ListingsTable, nil, nil, &listings); err != nil {
		return nil, err
	}
	var accounts []models.Account
	if err := ls.Dynamo.ScanWithFilter(ctx, models.AccountsTable, nil, nil, &accounts); err != nil {
		return nil, err
	}

	raw := make([]string, 0, len(listings)+len(accounts))
	for _, listing := range listings {
		raw = append(raw, listing.Location)
	}
	for _, account := range accounts {
		raw = append(raw, account.SearchLocation)
	}
	return DedupeLocations(raw), nil
}

// DedupeLocations normalizes, deduplicates case-insensitively, and sorts a
// set of location strings.
func DedupeLocations(raw []string) []string {
	seen := make(map[string]string)
	for _, loc := range raw {
		trimmed := strings.TrimSpace(loc)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; !ok {
			seen[key] = NormalizeLocation(trimmed)
		}
	}

	locations := make([]string, 0, len(seen))
	for _, loc := range seen {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		return strings.ToLower(locations[i]) < strings.ToLower(locations[j])
	})
	return locations
}

// NormalizeLocation title-cases a location string for consistent display:
// "guelph" -> "Guelph", "new york, ny" -> "New York, Ny".
func NormalizeLocation(location string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range strings.ToLower(location) {
		if upperNext && r != ' ' && r != ',' {
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
			continue
		}
		if r == ' ' || r == ',' {
			upperNext = true
		}
		b.WriteRune(r)
	}
	return b.String()
}
