package services

import (
	"context"
	"log"
	"sync"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/models"
	"coffeinimals/internal/repositories"
	"coffeinimals/pkg/rabbitmq"
)

// ProfileService handles mutation of the current user's profile fields and
// favorites list. Every mutation persists to the document store first and
// only then updates the in-memory session, so memory and storage never
// diverge on failure.
//
// Favorites mutations are serialized per account. The original full-list
// replace could drop one of two rapid adds when the second read a stale
// list before the first write landed; holding the account lock across the
// read-modify-write closes that window.
type ProfileService struct {
	profiles repositories.ProfileRepository
	sessions *SessionManager
	mqClient *rabbitmq.Client // RabbitMQ client, may be nil

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles repositories.ProfileRepository, sessions *SessionManager, mqClient *rabbitmq.Client) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		sessions: sessions,
		mqClient: mqClient,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutation lock for one account.
func (s *ProfileService) lockFor(accountID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[accountID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[accountID] = l
	}
	return l
}

// UpdateProfile merges the given name/email into the current user's
// persisted document and in-memory record. Requires a live session.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID string, profile models.Profile) (*models.User, error) {
	l := s.lockFor(accountID)
	l.Lock()
	defer l.Unlock()

	user, ok := s.sessions.Current(accountID)
	if !ok {
		return nil, apperr.ErrNotAuthenticated
	}

	fields := map[string]interface{}{
		"name":  profile.Name,
		"email": profile.Email,
	}
	if err := s.profiles.UpdateFields(ctx, accountID, fields); err != nil {
		// In-memory state stays pre-mutation on persistence failure.
		return nil, err
	}

	s.sessions.Update(accountID, func(u *models.User) {
		u.Name = profile.Name
		u.Email = profile.Email
	})
	user.Name = profile.Name
	user.Email = profile.Email

	s.publishEvent("profile.updated", accountID, map[string]interface{}{
		"name":  profile.Name,
		"email": profile.Email,
	})
	return &user, nil
}

// UpdateFavorites replaces the current user's favorites with the given
// ordered list, persisted view first. The caller is responsible for dedup
// and ordering; AddFavorite is the guarded entry point.
func (s *ProfileService) UpdateFavorites(ctx context.Context, accountID string, favorites []string) (*models.User, error) {
	l := s.lockFor(accountID)
	l.Lock()
	defer l.Unlock()

	return s.replaceFavorites(ctx, accountID, favorites)
}

// AddFavorite applies the add-to-favorites algorithm shared by all three
// browsing surfaces: prepend the label (most-recent-first) unless it is
// already present. Missing session, empty label and duplicate label are
// silent no-ops, not errors.
func (s *ProfileService) AddFavorite(ctx context.Context, accountID, label string) (*models.User, error) {
	l := s.lockFor(accountID)
	l.Lock()
	defer l.Unlock()

	user, ok := s.sessions.Current(accountID)
	if !ok || label == "" {
		return nil, nil
	}

	for _, f := range user.Favorites {
		if f == label {
			// Already a favorite: no duplicate, no reorder.
			return &user, nil
		}
	}

	next := append([]string{label}, user.Favorites...)
	return s.replaceFavorites(ctx, accountID, next)
}

// RemoveFavorite deletes the label from the favorites list, preserving the
// order of the rest. Absent label and missing session are silent no-ops.
func (s *ProfileService) RemoveFavorite(ctx context.Context, accountID, label string) (*models.User, error) {
	l := s.lockFor(accountID)
	l.Lock()
	defer l.Unlock()

	user, ok := s.sessions.Current(accountID)
	if !ok || label == "" {
		return nil, nil
	}

	next := make([]string, 0, len(user.Favorites))
	found := false
	for _, f := range user.Favorites {
		if f == label {
			found = true
			continue
		}
		next = append(next, f)
	}
	if !found {
		return &user, nil
	}
	return s.replaceFavorites(ctx, accountID, next)
}

// replaceFavorites is the shared persist-then-memory step. Callers must
// hold the account lock.
func (s *ProfileService) replaceFavorites(ctx context.Context, accountID string, favorites []string) (*models.User, error) {
	user, ok := s.sessions.Current(accountID)
	if !ok {
		return nil, apperr.ErrNotAuthenticated
	}
	if favorites == nil {
		favorites = []string{}
	}

	fields := map[string]interface{}{"favorites": favorites}
	if err := s.profiles.UpdateFields(ctx, accountID, fields); err != nil {
		// In-memory favorites keep their pre-call value.
		return nil, err
	}

	s.sessions.Update(accountID, func(u *models.User) {
		u.Favorites = append([]string{}, favorites...)
	})
	user.Favorites = append([]string{}, favorites...)

	s.publishEvent("favorites.updated", accountID, map[string]interface{}{
		"favorites": favorites,
	})
	return &user, nil
}

// publishEvent emits a profile change event. A publish failure is logged
// and never fails the mutation that triggered it.
func (s *ProfileService) publishEvent(eventType, accountID string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProfileEvent(eventType, accountID, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", eventType, accountID, err)
	}
}
