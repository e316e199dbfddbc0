package services

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nantel10/code-baba/models"
	"github.com/nantel10/code-baba/storage"
	"github.com/nantel10/code-baba/utils"

	"github.com/google/uuid"
)

// RosterService owns the member collection. The authoritative copy
// lives in memory behind one mutex and is written back whole after
// every mutation, so concurrent admin requests serialize instead of
// racing on the file.
type RosterService struct {
	identity *IdentityService
	store    *storage.Store

	mu      sync.Mutex
	members map[string]*models.Member
}

func NewRosterService(identity *IdentityService, store *storage.Store) (*RosterService, error) {
	s := &RosterService{
		identity: identity,
		store:    store,
		members:  make(map[string]*models.Member),
	}
	if _, err := store.Load(&s.members); err != nil {
		return nil, err
	}
	return s, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// List returns members in join order.
func (s *RosterService) List() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *RosterService) IsNameUnique(name, excludeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isNameUniqueLocked(name, excludeID)
}

func (s *RosterService) isNameUniqueLocked(name, excludeID string) bool {
	want := normalizeName(name)
	for id, m := range s.members {
		if id == excludeID {
			continue
		}
		if normalizeName(m.Name) == want {
			return false
		}
	}
	return true
}

func (s *RosterService) Add(name string, subscription json.RawMessage, phone string, isAdmin bool) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !s.isNameUniqueLocked(name, "") {
		return nil, ErrDuplicateName
	}

	m := &models.Member{
		ID:           uuid.NewString(),
		Name:         name,
		Subscription: subscription,
		Phone:        utils.NormalizePhone(phone),
		IsAdmin:      isAdmin,
		JoinedAt:     time.Now(),
	}
	s.members[m.ID] = m
	if err := s.store.Save(s.members); err != nil {
		delete(s.members, m.ID)
		return nil, err
	}
	out := *m
	return &out, nil
}

// MemberUpdate carries the fields an admin may change; nil means
// leave untouched.
type MemberUpdate struct {
	Name    *string
	Phone   *string
	IsAdmin *bool
}

func (s *RosterService) Update(id string, upd MemberUpdate) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	if !ok {
		return nil, ErrNotFound
	}

	next := *m
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if !s.isNameUniqueLocked(name, id) {
			return nil, ErrDuplicateName
		}
		next.Name = name
	}
	if upd.Phone != nil {
		next.Phone = utils.NormalizePhone(*upd.Phone)
	}
	if upd.IsAdmin != nil {
		next.IsAdmin = *upd.IsAdmin
	}

	s.members[id] = &next
	if err := s.store.Save(s.members); err != nil {
		s.members[id] = m
		return nil, err
	}
	out := next
	return &out, nil
}

func (s *RosterService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.members, id)
	if err := s.store.Save(s.members); err != nil {
		s.members[id] = m
		return err
	}
	return nil
}

// ClearPushEndpoint drops a member's push subscription but keeps the
// record. Used after a delivery endpoint reports permanent
// invalidation; the member stays reachable by SMS and keeps their name.
func (s *RosterService) ClearPushEndpoint(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	if !ok {
		return ErrNotFound
	}
	m.Subscription = nil
	return s.store.Save(s.members)
}

// Login looks up an existing member by name after validating the code.
// It never creates a record.
func (s *RosterService) Login(name, code string) (*models.Member, error) {
	if _, ok := s.identity.Verify(code); !ok {
		return nil, ErrInvalidCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := normalizeName(name)
	for _, m := range s.members {
		if normalizeName(m.Name) == want {
			out := *m
			return &out, nil
		}
	}
	return nil, ErrNotFound
}
