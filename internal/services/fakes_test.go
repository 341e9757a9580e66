package services

import (
	"context"
	"sync"
	"time"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"
)

// In-memory store fakes backing the service tests.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "user not found")
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) PartnerCodeExists(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.PartnerCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UpdatePushToken(_ context.Context, userID string, pushToken *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	user.PushToken = pushToken
	return nil
}

func (s *fakeUserStore) PartnerID(_ context.Context, userID string) (*string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return user.PartnerID, nil
}

type fakeSwipeStore struct {
	mu     sync.Mutex
	swipes []*models.Swipe
}

func (s *fakeSwipeStore) Insert(_ context.Context, swipe *models.Swipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swipes = append(s.swipes, swipe)
	return nil
}

func (s *fakeSwipeStore) NameIDsByUser(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var ids []string
	for _, sw := range s.swipes {
		if sw.UserID != userID {
			continue
		}
		if _, ok := seen[sw.NameID]; ok {
			continue
		}
		seen[sw.NameID] = struct{}{}
		ids = append(ids, sw.NameID)
	}
	return ids, nil
}

func (s *fakeSwipeStore) HasLiked(_ context.Context, userID, nameID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sw := range s.swipes {
		if sw.UserID == userID && sw.NameID == nameID && sw.IsLike {
			return true, nil
		}
	}
	return false, nil
}

type fakeMatchStore struct {
	mu      sync.Mutex
	matches []*models.Match
	names   map[string]models.BabyName
}

func newFakeMatchStore(names ...models.BabyName) *fakeMatchStore {
	s := &fakeMatchStore{names: make(map[string]models.BabyName)}
	for _, n := range names {
		s.names[n.ID] = n
	}
	return s
}

func (s *fakeMatchStore) withName(m *models.Match) *models.Match {
	copied := *m
	if n, ok := s.names[m.NameID]; ok {
		copied.Name = n
	}
	return &copied
}

func (s *fakeMatchStore) Create(_ context.Context, match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *match
	s.matches = append(s.matches, &copied)
	return nil
}

func (s *fakeMatchStore) GetByID(_ context.Context, id string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID == id {
			return s.withName(m), nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "match not found")
}

func (s *fakeMatchStore) FindByPairAndName(_ context.Context, userAID, userBID, nameID string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.NameID != nameID {
			continue
		}
		if (m.User1ID == userAID && m.User2ID == userBID) || (m.User1ID == userBID && m.User2ID == userAID) {
			return s.withName(m), nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "match not found")
}

func (s *fakeMatchStore) ListByUser(_ context.Context, userID string) ([]*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Match
	for i := len(s.matches) - 1; i >= 0; i-- {
		if s.matches[i].Involves(userID) {
			out = append(out, s.withName(s.matches[i]))
		}
	}
	return out, nil
}

func (s *fakeMatchStore) UpdateNotes(_ context.Context, id, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID == id {
			now := time.Now()
			m.Notes = &notes
			m.UpdatedAt = &now
			return nil
		}
	}
	return apperr.New(apperr.KindNotFound, "match not found")
}

func (s *fakeMatchStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.matches {
		if m.ID == id {
			s.matches = append(s.matches[:i], s.matches[i+1:]...)
			return nil
		}
	}
	return apperr.New(apperr.KindNotFound, "match not found")
}

// fakeInviteStore mirrors the transactional accept: either every write lands
// or the users map is untouched.
type fakeInviteStore struct {
	mu      sync.Mutex
	invites map[string]*models.PartnerInvite
	users   *fakeUserStore
}

func newFakeInviteStore(users *fakeUserStore) *fakeInviteStore {
	return &fakeInviteStore{
		invites: make(map[string]*models.PartnerInvite),
		users:   users,
	}
}

func (s *fakeInviteStore) Create(_ context.Context, invite *models.PartnerInvite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *invite
	s.invites[invite.ID] = &copied
	return nil
}

func (s *fakeInviteStore) GetActiveByCode(_ context.Context, code string, now time.Time) (*models.PartnerInvite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invites {
		if inv.InviteCode == code && inv.IsUsable(now) {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, apperr.New(apperr.KindExpired, "invalid or expired invite code")
}

func (s *fakeInviteStore) AcceptAndLink(_ context.Context, inviteID, inviterID, accepterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	invite, ok := s.invites[inviteID]
	if !ok || invite.Used {
		return apperr.New(apperr.KindExpired, "invalid or expired invite code")
	}
	inviter, ok := s.users.users[inviterID]
	if !ok || inviter.PartnerID != nil {
		return apperr.New(apperr.KindConflict, "inviter is already partnered")
	}
	accepter, ok := s.users.users[accepterID]
	if !ok || accepter.PartnerID != nil {
		return apperr.New(apperr.KindConflict, "user is already partnered")
	}

	inviter.PartnerID = &accepter.ID
	accepter.PartnerID = &inviter.ID
	invite.Used = true
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	matches []*models.Match
	links   [][2]string
}

func (n *recordingNotifier) MatchCreated(_ context.Context, match *models.Match) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.matches = append(n.matches, match)
}

func (n *recordingNotifier) PartnerLinked(_ context.Context, inviterID, accepterID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.links = append(n.links, [2]string{inviterID, accepterID})
}
