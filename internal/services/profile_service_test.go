package services_test

import (
	"context"
	"errors"
	"testing"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/models"
	"coffeinimals/internal/repositories"
	"coffeinimals/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProfileFixture builds a ProfileService over the in-memory document
// store with one logged-in user.
func newProfileFixture(t *testing.T, favorites ...string) (*services.ProfileService, *services.SessionManager, *repositories.MockProfileRepository) {
	t.Helper()

	repo := repositories.NewMockProfileRepository()
	sessions := services.NewSessionManager()

	user := models.User{ID: "acc-1", Name: "Test User", Email: "test@example.com", Favorites: favorites}
	require.NoError(t, repo.Set(context.Background(), user.ID, &user))
	sessions.Put(user)

	return services.NewProfileService(repo, sessions, nil), sessions, repo
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, sessions, repo := newProfileFixture(t)
	ctx := context.Background()

	user, err := svc.UpdateProfile(ctx, "acc-1", models.Profile{Name: "X", Email: "y@z.com"})
	assert.NoError(t, err)
	assert.Equal(t, "X", user.Name)
	assert.Equal(t, "y@z.com", user.Email)

	// Round-trip: a fresh load of the document reflects the update
	stored, err := repo.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "X", stored.Name)
	assert.Equal(t, "y@z.com", stored.Email)

	// The live session reflects it too
	current, ok := sessions.Current("acc-1")
	require.True(t, ok)
	assert.Equal(t, "X", current.Name)
}

func TestProfileService_UpdateProfileRequiresSession(t *testing.T) {
	repo := repositories.NewMockProfileRepository()
	svc := services.NewProfileService(repo, services.NewSessionManager(), nil)

	_, err := svc.UpdateProfile(context.Background(), "nobody", models.Profile{Name: "X", Email: "y@z.com"})
	assert.ErrorIs(t, err, apperr.ErrNotAuthenticated)
}

func TestProfileService_UpdateProfileFailureAtomicity(t *testing.T) {
	svc, sessions, repo := newProfileFixture(t)
	repo.FailWrites = errors.New("network down")

	_, err := svc.UpdateProfile(context.Background(), "acc-1", models.Profile{Name: "X", Email: "y@z.com"})
	assert.Error(t, err)
	var persErr *apperr.PersistenceError
	assert.True(t, errors.As(err, &persErr))

	// In-memory state keeps its pre-call value
	current, ok := sessions.Current("acc-1")
	require.True(t, ok)
	assert.Equal(t, "Test User", current.Name)
	assert.Equal(t, "test@example.com", current.Email)
}

func TestProfileService_AddFavoriteOrdering(t *testing.T) {
	svc, _, _ := newProfileFixture(t)
	ctx := context.Background()

	// Adding A then B then C yields [C, B, A]
	for _, label := range []string{"A", "B", "C"} {
		_, err := svc.AddFavorite(ctx, "acc-1", label)
		require.NoError(t, err)
	}

	user, err := svc.AddFavorite(ctx, "acc-1", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, user.Favorites)
}

func TestProfileService_AddFavoriteIdempotence(t *testing.T) {
	svc, sessions, _ := newProfileFixture(t)
	ctx := context.Background()

	once, err := svc.AddFavorite(ctx, "acc-1", "Vanilla")
	require.NoError(t, err)
	twice, err := svc.AddFavorite(ctx, "acc-1", "Vanilla")
	require.NoError(t, err)

	assert.Equal(t, once.Favorites, twice.Favorites)
	current, _ := sessions.Current("acc-1")
	assert.Equal(t, []string{"Vanilla"}, current.Favorites)
}

func TestProfileService_AddFavoriteDedupKeepsOrder(t *testing.T) {
	// Starting from [B, A], re-adding A leaves [B, A]: no move to front.
	svc, _, _ := newProfileFixture(t, "B", "A")

	user, err := svc.AddFavorite(context.Background(), "acc-1", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, user.Favorites)
}

func TestProfileService_AddFavoriteNoOpGuards(t *testing.T) {
	mockRepo := new(MockProfileStore)
	sessions := services.NewSessionManager()
	svc := services.NewProfileService(mockRepo, sessions, nil)
	ctx := context.Background()

	// No current user: no mutation, no persistence call, no error
	user, err := svc.AddFavorite(ctx, "nobody", "Vanilla")
	assert.NoError(t, err)
	assert.Nil(t, user)
	mockRepo.AssertNotCalled(t, "UpdateFields")

	// Empty label: same
	sessions.Put(models.User{ID: "acc-1", Favorites: []string{"A"}})
	user, err = svc.AddFavorite(ctx, "acc-1", "")
	assert.NoError(t, err)
	assert.Nil(t, user)
	mockRepo.AssertNotCalled(t, "UpdateFields")

	// Duplicate label: no persistence call either
	user, err = svc.AddFavorite(ctx, "acc-1", "A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, user.Favorites)
	mockRepo.AssertNotCalled(t, "UpdateFields")
}

func TestProfileService_AddFavoriteFailureAtomicity(t *testing.T) {
	svc, sessions, repo := newProfileFixture(t, "Vanilla")
	repo.FailWrites = errors.New("quota exceeded")

	_, err := svc.AddFavorite(context.Background(), "acc-1", "Milk")
	assert.Error(t, err)

	// Favorites in memory equal their pre-call value
	current, _ := sessions.Current("acc-1")
	assert.Equal(t, []string{"Vanilla"}, current.Favorites)
}

func TestProfileService_UpdateFavoritesReplaces(t *testing.T) {
	svc, _, repo := newProfileFixture(t, "Old")
	ctx := context.Background()

	user, err := svc.UpdateFavorites(ctx, "acc-1", []string{"New", "Old"})
	require.NoError(t, err)
	assert.Equal(t, []string{"New", "Old"}, user.Favorites)

	stored, err := repo.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"New", "Old"}, stored.Favorites)

	// A nil list persists as an empty one
	user, err = svc.UpdateFavorites(ctx, "acc-1", nil)
	require.NoError(t, err)
	assert.NotNil(t, user.Favorites)
	assert.Empty(t, user.Favorites)
}

func TestProfileService_RemoveFavorite(t *testing.T) {
	svc, _, _ := newProfileFixture(t, "C", "B", "A")
	ctx := context.Background()

	user, err := svc.RemoveFavorite(ctx, "acc-1", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, user.Favorites)

	// Removing an absent label is a silent no-op
	user, err = svc.RemoveFavorite(ctx, "acc-1", "missing")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, user.Favorites)
}

func TestProfileService_BrowsingScenario(t *testing.T) {
	// A fresh user adds Vanilla from the flavor screen, Milk from the
	// ingredient screen, then re-adds Vanilla.
	svc, _, repo := newProfileFixture(t)
	ctx := context.Background()

	user, err := svc.AddFavorite(ctx, "acc-1", "Vanilla")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vanilla"}, user.Favorites)

	user, err = svc.AddFavorite(ctx, "acc-1", "Milk")
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Vanilla"}, user.Favorites)

	user, err = svc.AddFavorite(ctx, "acc-1", "Vanilla")
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Vanilla"}, user.Favorites)

	stored, err := repo.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Vanilla"}, stored.Favorites)
}

func TestProfileService_ConcurrentAddsBothLand(t *testing.T) {
	// Two rapid adds from different screens must not drop each other.
	svc, sessions, _ := newProfileFixture(t)
	ctx := context.Background()

	done := make(chan struct{}, 2)
	for _, label := range []string{"Vanilla", "Milk"} {
		go func(l string) {
			defer func() { done <- struct{}{} }()
			_, err := svc.AddFavorite(ctx, "acc-1", l)
			assert.NoError(t, err)
		}(label)
	}
	<-done
	<-done

	current, _ := sessions.Current("acc-1")
	assert.Len(t, current.Favorites, 2)
	assert.Contains(t, current.Favorites, "Vanilla")
	assert.Contains(t, current.Favorites, "Milk")
}
