package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"biteengine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory vote ledger honoring the unique user_id index: an upsert for an
// existing user replaces the row's target but keeps its id.
type mockVoteRepo struct {
	votes     map[string]*models.Vote
	upsertErr error
	nextID    int
}

func newMockVoteRepo() *mockVoteRepo {
	return &mockVoteRepo{votes: make(map[string]*models.Vote)}
}

func (m *mockVoteRepo) Upsert(ctx context.Context, vote *models.Vote) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if existing, ok := m.votes[vote.UserID]; ok {
		existing.UserName = vote.UserName
		existing.UserAvatar = vote.UserAvatar
		existing.RestaurantID = vote.RestaurantID
		existing.CreatedAt = time.Now()
		return nil
	}
	m.nextID++
	stored := *vote
	stored.ID = string(rune('a' + m.nextID))
	stored.CreatedAt = time.Now()
	m.votes[vote.UserID] = &stored
	return nil
}

func (m *mockVoteRepo) GetByUser(ctx context.Context, userID string) (*models.Vote, error) {
	vote, ok := m.votes[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *vote
	return &copied, nil
}

func (m *mockVoteRepo) DeleteByUser(ctx context.Context, userID string) error {
	delete(m.votes, userID)
	return nil
}

func (m *mockVoteRepo) CountByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	var count int64
	for _, vote := range m.votes {
		if vote.RestaurantID == restaurantID {
			count++
		}
	}
	return count, nil
}

func (m *mockVoteRepo) CountsByRestaurant(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, vote := range m.votes {
		counts[vote.RestaurantID]++
	}
	return counts, nil
}

func (m *mockVoteRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(m.votes)), nil
}

type mockActivityRepo struct {
	activities []models.VoteActivity
	createErr  error
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *models.VoteActivity) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *mockActivityRepo) GetRecent(ctx context.Context, limit int) ([]models.VoteActivity, error) {
	recent := make([]models.VoteActivity, len(m.activities))
	copy(recent, m.activities)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

type mockCatalogRepo struct {
	restaurants []models.Restaurant
}

func (m *mockCatalogRepo) CreateBatch(ctx context.Context, restaurants []*models.Restaurant) error {
	return nil
}

func (m *mockCatalogRepo) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	return m.restaurants, nil
}

func (m *mockCatalogRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	for i := range m.restaurants {
		if m.restaurants[i].ID == id {
			return &m.restaurants[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) GetNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.restaurants))
	for _, r := range m.restaurants {
		names = append(names, r.Name)
	}
	return names, nil
}

func (m *mockCatalogRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.restaurants)), nil
}

type mockPublisher struct {
	published []*models.VoteActivity
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, activity *models.VoteActivity) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, activity)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const (
	sushiID = "11111111-1111-1111-1111-111111111111"
	pizzaID = "22222222-2222-2222-2222-222222222222"
)

func newVoteFixture() (*mockVoteRepo, *mockActivityRepo, *mockPublisher, VoteService) {
	voteRepo := newMockVoteRepo()
	activityRepo := &mockActivityRepo{}
	catalogRepo := &mockCatalogRepo{restaurants: []models.Restaurant{
		{ID: sushiID, Name: "스시텐"},
		{ID: pizzaID, Name: "피자리아"},
	}}
	publisher := &mockPublisher{}
	svc := NewVoteService(voteRepo, activityRepo, catalogRepo, publisher, discardLogger())
	return voteRepo, activityRepo, publisher, svc
}

func aliceIdentity() Identity {
	return Identity{ID: "user-alice", Name: "Alice", Avatar: "/a.png", Role: "member"}
}

func TestCastVoteFirstTime(t *testing.T) {
	voteRepo, activityRepo, publisher, svc := newVoteFixture()

	response, err := svc.CastVote(context.Background(), aliceIdentity(), sushiID, "스시텐")
	require.NoError(t, err)

	assert.Equal(t, "user-alice", response.UserID)
	assert.Equal(t, sushiID, response.RestaurantID)
	assert.NotEmpty(t, response.ID)

	count, _ := voteRepo.CountAll(context.Background())
	assert.EqualValues(t, 1, count)

	require.Len(t, activityRepo.activities, 1)
	assert.Equal(t, ActionVoted, activityRepo.activities[0].Action)
	assert.Equal(t, "스시텐", activityRepo.activities[0].RestaurantName)

	require.Len(t, publisher.published, 1)
}

// Re-casting replaces the existing vote in place: one row total, same row id,
// and a "changed" activity entry.
func TestCastVoteReplacesPrior(t *testing.T) {
	voteRepo, activityRepo, _, svc := newVoteFixture()
	identity := aliceIdentity()

	first, err := svc.CastVote(context.Background(), identity, sushiID, "스시텐")
	require.NoError(t, err)

	second, err := svc.CastVote(context.Background(), identity, pizzaID, "피자리아")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, pizzaID, second.RestaurantID)

	count, _ := voteRepo.CountAll(context.Background())
	assert.EqualValues(t, 1, count, "one vote row per user")

	sushiCount, _ := voteRepo.CountByRestaurant(context.Background(), sushiID)
	assert.EqualValues(t, 0, sushiCount, "old target released")

	require.Len(t, activityRepo.activities, 2)
	assert.Equal(t, ActionVoted, activityRepo.activities[0].Action)
	assert.Equal(t, ActionChanged, activityRepo.activities[1].Action)
}

// Re-casting for the same restaurant is still a replace, not an error
func TestCastVoteSameTargetTwice(t *testing.T) {
	voteRepo, activityRepo, _, svc := newVoteFixture()
	identity := aliceIdentity()

	_, err := svc.CastVote(context.Background(), identity, sushiID, "스시텐")
	require.NoError(t, err)
	_, err = svc.CastVote(context.Background(), identity, sushiID, "스시텐")
	require.NoError(t, err)

	count, _ := voteRepo.CountAll(context.Background())
	assert.EqualValues(t, 1, count)
	assert.Equal(t, ActionChanged, activityRepo.activities[1].Action)
}

func TestCastVoteUnknownRestaurant(t *testing.T) {
	voteRepo, activityRepo, _, svc := newVoteFixture()

	_, err := svc.CastVote(context.Background(), aliceIdentity(), "33333333-3333-3333-3333-333333333333", "유령식당")
	require.Error(t, err)
	assert.Equal(t, "restaurant not found", err.Error())

	count, _ := voteRepo.CountAll(context.Background())
	assert.EqualValues(t, 0, count)
	assert.Empty(t, activityRepo.activities)
}

// A publish failure is logged, not surfaced; the vote and its activity entry
// still commit.
func TestCastVotePublishFailureIsNonFatal(t *testing.T) {
	voteRepo := newMockVoteRepo()
	activityRepo := &mockActivityRepo{}
	catalogRepo := &mockCatalogRepo{restaurants: []models.Restaurant{{ID: sushiID, Name: "스시텐"}}}
	publisher := &mockPublisher{err: errors.New("redis down")}
	svc := NewVoteService(voteRepo, activityRepo, catalogRepo, publisher, discardLogger())

	response, err := svc.CastVote(context.Background(), aliceIdentity(), sushiID, "스시텐")
	require.NoError(t, err)
	assert.NotNil(t, response)

	count, _ := voteRepo.CountAll(context.Background())
	assert.EqualValues(t, 1, count)
	assert.Len(t, activityRepo.activities, 1)
}

func TestCastVoteActivityFailure(t *testing.T) {
	voteRepo := newMockVoteRepo()
	activityRepo := &mockActivityRepo{createErr: errors.New("disk full")}
	catalogRepo := &mockCatalogRepo{restaurants: []models.Restaurant{{ID: sushiID, Name: "스시텐"}}}
	svc := NewVoteService(voteRepo, activityRepo, catalogRepo, &mockPublisher{}, discardLogger())

	_, err := svc.CastVote(context.Background(), aliceIdentity(), sushiID, "스시텐")
	assert.Error(t, err)
}

func TestRetractVote(t *testing.T) {
	voteRepo, activityRepo, _, svc := newVoteFixture()
	identity := aliceIdentity()

	_, err := svc.CastVote(context.Background(), identity, sushiID, "스시텐")
	require.NoError(t, err)

	require.NoError(t, svc.RetractVote(context.Background(), identity.ID))

	count, _ := voteRepo.CountAll(context.Background())
	assert.EqualValues(t, 0, count)

	// Retraction writes no feed entry
	assert.Len(t, activityRepo.activities, 1)
}

func TestRetractVoteWithoutVoteIsNoop(t *testing.T) {
	_, _, _, svc := newVoteFixture()
	assert.NoError(t, svc.RetractVote(context.Background(), "user-nobody"))
}

// Concurrent-ish sequence: two users voting never collide with each other
func TestCastVoteIndependentUsers(t *testing.T) {
	voteRepo, _, _, svc := newVoteFixture()

	bob := Identity{ID: "user-bob", Name: "Bob"}
	_, err := svc.CastVote(context.Background(), aliceIdentity(), sushiID, "스시텐")
	require.NoError(t, err)
	_, err = svc.CastVote(context.Background(), bob, sushiID, "스시텐")
	require.NoError(t, err)

	count, _ := voteRepo.CountByRestaurant(context.Background(), sushiID)
	assert.EqualValues(t, 2, count)
}
