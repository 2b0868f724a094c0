package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-boudoux/sublet-app/models"
)

func ledgerKey(swiperID, swipedID string) string {
	return swiperID + "|" + swipedID
}

// memoryLedger is an in-memory SwipeLedgerAPI with the same uniqueness and
// reverse-lookup behavior as the DynamoDB-backed ledger.
type memoryLedger struct {
	swipes     map[string]models.SwipeRecord
	recordErr  error
	reverseErr error
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{swipes: make(map[string]models.SwipeRecord)}
}

func (l *memoryLedger) Record(_ context.Context, rec models.SwipeRecord) error {
	if l.recordErr != nil {
		return l.recordErr
	}
	k := ledgerKey(rec.SwiperID, rec.SwipedID)
	if _, ok := l.swipes[k]; ok {
		return ErrDuplicateSwipe
	}
	l.swipes[k] = rec
	return nil
}

func (l *memoryLedger) FindReverse(_ context.Context, swiperID, swipedID string) (*models.SwipeRecord, error) {
	if l.reverseErr != nil {
		return nil, l.reverseErr
	}
	rec, ok := l.swipes[ledgerKey(swipedID, swiperID)]
	if !ok || !models.IsInterested(rec.Direction) {
		return nil, nil
	}
	return &rec, nil
}

func (l *memoryLedger) ListSwiped(_ context.Context, swiperID string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, rec := range l.swipes {
		if rec.SwiperID == swiperID {
			out[rec.SwipedID] = true
		}
	}
	return out, nil
}

func (l *memoryLedger) ResetAll(_ context.Context, swiperID string) (int, error) {
	deleted := 0
	for k, rec := range l.swipes {
		if rec.SwiperID == swiperID {
			delete(l.swipes, k)
			deleted++
		}
	}
	return deleted, nil
}

// memoryMatches is an in-memory MatchCreator keyed by pairKey, like the
// conditional-put match store.
type memoryMatches struct {
	byPairKey map[string]models.Match
	created   int
	err       error
}

func newMemoryMatches() *memoryMatches {
	return &memoryMatches{byPairKey: make(map[string]models.Match)}
}

func (m *memoryMatches) CreateIfAbsent(_ context.Context, match models.Match) (models.Match, bool, error) {
	if m.err != nil {
		return models.Match{}, false, m.err
	}
	if existing, ok := m.byPairKey[match.PairKey]; ok {
		return existing, false, nil
	}
	m.byPairKey[match.PairKey] = match
	m.created++
	return match, true, nil
}

// memoryListings backs both ListingResolver and ListingFeedSource.
type memoryListings struct {
	listings map[string]models.Listing
}

func newMemoryListings(listings ...models.Listing) *memoryListings {
	s := &memoryListings{listings: make(map[string]models.Listing)}
	for _, l := range listings {
		s.listings[l.ID] = l
	}
	return s
}

func (s *memoryListings) GetListing(_ context.Context, id string) (*models.Listing, error) {
	listing, ok := s.listings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &listing, nil
}

func (s *memoryListings) ListByOwner(_ context.Context, ownerID string) ([]models.Listing, error) {
	var out []models.Listing
	for _, listing := range s.listings {
		if listing.OwnerID == ownerID {
			out = append(out, listing)
		}
	}
	return out, nil
}

func (s *memoryListings) ListCandidateListings(_ context.Context, excludeOwnerID, location string, limit int) ([]models.Listing, error) {
	var out []models.Listing
	for _, listing := range s.listings {
		if listing.OwnerID == excludeOwnerID {
			continue
		}
		if location != "" && listing.Location != location {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, listing)
	}
	return out, nil
}

func newSwipeService(listings ...models.Listing) (*SwipeService, *memoryLedger, *memoryMatches) {
	ledger := newMemoryLedger()
	matches := newMemoryMatches()
	svc := &SwipeService{
		Ledger:   ledger,
		Matches:  matches,
		Listings: newMemoryListings(listings...),
	}
	return svc, ledger, matches
}

func TestRecordSwipeRejectsInvalidInput(t *testing.T) {
	svc, _, _ := newSwipeService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, "maybe")
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = svc.RecordSwipe(ctx, "alice", "bob", "group", models.DirectionLike)
	assert.ErrorIs(t, err, ErrInvalidSwipedType)

	_, err = svc.RecordSwipe(ctx, "alice", "alice", models.SwipedTypeUser, models.DirectionLike)
	assert.ErrorIs(t, err, ErrSelfSwipe)
}

func TestRecordSwipeRejectsDuplicate(t *testing.T) {
	svc, _, _ := newSwipeService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	_, err = svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionPass)
	assert.ErrorIs(t, err, ErrDuplicateSwipe)
}

func TestRecordSwipeFirstLikeDoesNotMatch(t *testing.T) {
	svc, _, matches := newSwipeService()

	result, err := svc.RecordSwipe(context.Background(), "alice", "bob", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	assert.NotEmpty(t, result.SwipeID)
	assert.False(t, result.Matched)
	assert.Nil(t, result.MatchID)
	assert.Zero(t, matches.created)
}

func TestRecordSwipeMutualLikeMatches(t *testing.T) {
	svc, _, matches := newSwipeService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	result, err := svc.RecordSwipe(ctx, "bob", "alice", models.SwipedTypeUser, models.DirectionSuperlike)
	require.NoError(t, err)

	require.True(t, result.Matched)
	require.NotNil(t, result.MatchID)
	require.Equal(t, 1, matches.created)

	match := matches.byPairKey[models.MatchPairKey("alice", "bob", "")]
	assert.Equal(t, *result.MatchID, match.ID)
	assert.Equal(t, models.MatchKindUserUser, match.Kind)
	assert.Equal(t, []string{"alice", "bob"}, match.ParticipantIDs)
	assert.Empty(t, match.ListingID)
}

func TestRecordSwipeParticipantsOrderIndependent(t *testing.T) {
	ctx := context.Background()

	for _, order := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		svc, _, matches := newSwipeService()

		_, err := svc.RecordSwipe(ctx, order[0], order[1], models.SwipedTypeUser, models.DirectionLike)
		require.NoError(t, err)
		result, err := svc.RecordSwipe(ctx, order[1], order[0], models.SwipedTypeUser, models.DirectionLike)
		require.NoError(t, err)

		require.True(t, result.Matched)
		match := matches.byPairKey[models.MatchPairKey("alice", "bob", "")]
		assert.Equal(t, []string{"alice", "bob"}, match.ParticipantIDs)
	}
}

func TestRecordSwipePassNeverMatches(t *testing.T) {
	svc, _, matches := newSwipeService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	result, err := svc.RecordSwipe(ctx, "bob", "alice", models.SwipedTypeUser, models.DirectionPass)
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.Nil(t, result.MatchID)
	assert.Zero(t, matches.created)
}

func TestRecordSwipeReverseInterestIgnoresPass(t *testing.T) {
	svc, _, matches := newSwipeService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionPass)
	require.NoError(t, err)

	result, err := svc.RecordSwipe(ctx, "bob", "alice", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.Zero(t, matches.created)
}

func TestRecordSwipeListingThenOwnerLikesBack(t *testing.T) {
	listing := models.Listing{ID: "listing-1", OwnerID: "host", Title: "Sunny studio"}
	svc, _, matches := newSwipeService(listing)
	ctx := context.Background()

	// Seeker liked the host's listing; no match yet.
	result, err := svc.RecordSwipe(ctx, "seeker", "listing-1", models.SwipedTypeListing, models.DirectionLike)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	// Host likes the seeker directly; interest meets through the listing.
	result, err = svc.RecordSwipe(ctx, "host", "seeker", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	require.True(t, result.Matched)
	match := matches.byPairKey[models.MatchPairKey("host", "seeker", "listing-1")]
	assert.Equal(t, *result.MatchID, match.ID)
	assert.Equal(t, models.MatchKindUserListing, match.Kind)
	assert.Equal(t, []string{"host", "seeker"}, match.ParticipantIDs)
	assert.Equal(t, "listing-1", match.ListingID)
}

func TestRecordSwipeOwnerLikedFirstThenListingSwipe(t *testing.T) {
	listing := models.Listing{ID: "listing-1", OwnerID: "host", Title: "Sunny studio"}
	svc, _, matches := newSwipeService(listing)
	ctx := context.Background()

	// Host liked the seeker first.
	result, err := svc.RecordSwipe(ctx, "host", "seeker", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	// Seeker then likes the host's listing.
	result, err = svc.RecordSwipe(ctx, "seeker", "listing-1", models.SwipedTypeListing, models.DirectionLike)
	require.NoError(t, err)

	require.True(t, result.Matched)
	match := matches.byPairKey[models.MatchPairKey("seeker", "host", "listing-1")]
	assert.Equal(t, models.MatchKindUserListing, match.Kind)
	assert.Equal(t, "listing-1", match.ListingID)
}

func TestRecordSwipeOnVanishedListing(t *testing.T) {
	svc, _, matches := newSwipeService()

	result, err := svc.RecordSwipe(context.Background(), "seeker", "ghost-listing", models.SwipedTypeListing, models.DirectionLike)
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.Zero(t, matches.created)
}

func TestRecordSwipeOnOwnListing(t *testing.T) {
	listing := models.Listing{ID: "listing-1", OwnerID: "host"}
	svc, _, matches := newSwipeService(listing)

	result, err := svc.RecordSwipe(context.Background(), "host", "listing-1", models.SwipedTypeListing, models.DirectionLike)
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.Zero(t, matches.created)
}

func TestRecordSwipeReusesExistingMatch(t *testing.T) {
	svc, ledger, matches := newSwipeService()
	ctx := context.Background()

	existing := models.Match{
		ID:             "match-existing",
		PairKey:        models.MatchPairKey("alice", "bob", ""),
		Kind:           models.MatchKindUserUser,
		ParticipantIDs: models.SortParticipants("alice", "bob"),
	}
	matches.byPairKey[existing.PairKey] = existing

	require.NoError(t, ledger.Record(ctx, models.SwipeRecord{
		SwiperID: "alice", SwipedID: "bob", SwipedType: models.SwipedTypeUser, Direction: models.DirectionLike,
	}))

	result, err := svc.RecordSwipe(ctx, "bob", "alice", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	require.True(t, result.Matched)
	assert.Equal(t, "match-existing", *result.MatchID)
	assert.Zero(t, matches.created)
}

func TestRecordSwipeSurfacesMatchCheckFailure(t *testing.T) {
	svc, ledger, _ := newSwipeService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	boom := errors.New("dynamo is down")
	ledger.reverseErr = boom

	_, err = svc.RecordSwipe(ctx, "bob", "alice", models.SwipedTypeUser, models.DirectionLike)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "match check failed")
}

func TestResetSwipes(t *testing.T) {
	svc, _, _ := newSwipeService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, "alice", "carol", models.SwipedTypeUser, models.DirectionPass)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, "bob", "carol", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)

	deleted, err := svc.ResetSwipes(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Alice can swipe bob again; bob's history is untouched.
	result, err := svc.RecordSwipe(ctx, "alice", "bob", models.SwipedTypeUser, models.DirectionLike)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	_, err = svc.RecordSwipe(ctx, "bob", "carol", models.SwipedTypeUser, models.DirectionLike)
	assert.ErrorIs(t, err, ErrDuplicateSwipe)
}
