package services

import (
	"context"
	"testing"

	"namematch-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swipeFixture(t *testing.T) (*SwipeService, *fakeUserStore, *fakeSwipeStore, *fakeMatchStore, *recordingNotifier) {
	t.Helper()

	alice := &models.User{ID: "alice", Email: "alice@example.com", Name: "Alice"}
	bob := &models.User{ID: "bob", Email: "bob@example.com", Name: "Bob"}
	alice.PartnerID = &bob.ID
	bob.PartnerID = &alice.ID
	solo := &models.User{ID: "solo", Email: "solo@example.com", Name: "Solo"}

	users := newFakeUserStore(alice, bob, solo)
	swipes := &fakeSwipeStore{}
	matches := newFakeMatchStore(models.BabyName{ID: "n1", Name: "Astrid", Gender: models.GenderGirl})
	notifier := &recordingNotifier{}

	return NewSwipeService(swipes, matches, users, notifier), users, swipes, matches, notifier
}

func TestRecordSwipe_DislikeNeverMatches(t *testing.T) {
	svc, _, swipes, matches, _ := swipeFixture(t)
	ctx := context.Background()

	// Partner already liked the name; a dislike must still not match.
	swipes.swipes = append(swipes.swipes, &models.Swipe{ID: uuid.New().String(), UserID: "bob", NameID: "n1", IsLike: true})

	result, err := svc.RecordSwipe(ctx, "alice", "n1", false)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.Nil(t, result.Match)
	assert.Empty(t, matches.matches)
	assert.Len(t, swipes.swipes, 2)
}

func TestRecordSwipe_LikeWithoutPartner(t *testing.T) {
	svc, _, _, matches, _ := swipeFixture(t)

	result, err := svc.RecordSwipe(context.Background(), "solo", "n1", true)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.Empty(t, matches.matches)
}

func TestRecordSwipe_LikeWithoutReciprocal(t *testing.T) {
	svc, _, _, matches, _ := swipeFixture(t)

	result, err := svc.RecordSwipe(context.Background(), "alice", "n1", true)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.Empty(t, matches.matches)
}

func TestRecordSwipe_ReciprocalLikeCreatesMatch(t *testing.T) {
	svc, _, _, matches, notifier := swipeFixture(t)
	ctx := context.Background()

	first, err := svc.RecordSwipe(ctx, "bob", "n1", true)
	require.NoError(t, err)
	assert.False(t, first.IsMatch)

	second, err := svc.RecordSwipe(ctx, "alice", "n1", true)
	require.NoError(t, err)
	assert.True(t, second.IsMatch)
	require.NotNil(t, second.Match)

	assert.Equal(t, "n1", second.Match.NameID)
	assert.Equal(t, "Astrid", second.Match.Name.Name)
	assert.Equal(t, "alice", second.Match.User1ID)
	assert.Equal(t, "bob", second.Match.User2ID)

	require.Len(t, matches.matches, 1)
	require.Len(t, notifier.matches, 1)
	assert.Equal(t, second.Match.ID, notifier.matches[0].ID)
}

func TestRecordSwipe_RepeatLikeReusesMatch(t *testing.T) {
	svc, _, _, matches, notifier := swipeFixture(t)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "bob", "n1", true)
	require.NoError(t, err)

	first, err := svc.RecordSwipe(ctx, "alice", "n1", true)
	require.NoError(t, err)
	require.True(t, first.IsMatch)

	// Alice swipes the same name again; the existing match comes back and
	// no second row or notification is produced.
	repeat, err := svc.RecordSwipe(ctx, "alice", "n1", true)
	require.NoError(t, err)
	assert.True(t, repeat.IsMatch)
	assert.Equal(t, first.Match.ID, repeat.Match.ID)

	assert.Len(t, matches.matches, 1)
	assert.Len(t, notifier.matches, 1)
}

func TestRecordSwipe_BothSidesSameWindow(t *testing.T) {
	svc, _, _, matches, _ := swipeFixture(t)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "bob", "n1", true)
	require.NoError(t, err)

	fromAlice, err := svc.RecordSwipe(ctx, "alice", "n1", true)
	require.NoError(t, err)
	fromBob, err := svc.RecordSwipe(ctx, "bob", "n1", true)
	require.NoError(t, err)

	assert.True(t, fromAlice.IsMatch)
	assert.True(t, fromBob.IsMatch)
	assert.Equal(t, fromAlice.Match.ID, fromBob.Match.ID)
	assert.Len(t, matches.matches, 1)
}

func TestSwipedNameIDs(t *testing.T) {
	svc, _, _, _, _ := swipeFixture(t)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "alice", "n1", false)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, "alice", "n2", true)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, "alice", "n2", true)
	require.NoError(t, err)

	ids, err := svc.SwipedNameIDs(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"n1", "n2"}, ids)
}
