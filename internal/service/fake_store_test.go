package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/bagdasarian/course-teams/internal/repository"
)

// fakeStore - хранилище в памяти с теми же ограничениями уникальности, что и в БД
type fakeStore struct {
	mu          sync.Mutex
	nextID      int
	teams       map[string]*domain.Team
	memberships map[string]map[int64]*domain.Membership
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		teams:       make(map[string]*domain.Team),
		memberships: make(map[string]map[int64]*domain.Membership),
	}
}

func (f *fakeStore) Create(_ context.Context, team *domain.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.teams[team.TeamID]; ok {
		return repository.ErrTeamIDTaken
	}
	f.nextID++
	team.ID = f.nextID
	team.IsActive = true
	team.DateCreated = time.Now()
	stored := *team
	f.teams[team.TeamID] = &stored
	return nil
}

func (f *fakeStore) GetByTeamID(_ context.Context, teamID string) (*domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	team, ok := f.teams[teamID]
	if !ok {
		return nil, domain.NewNotFoundError("team with id " + teamID)
	}
	out := *team
	return &out, nil
}

func (f *fakeStore) ListTeamIDsWithPrefix(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []string
	for id := range f.teams {
		if strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeStore) List(_ context.Context, _ domain.TeamFilter) ([]*domain.Team, error) {
	return nil, nil
}

func (f *fakeStore) ListByUserID(_ context.Context, _ int64) ([]*domain.Team, error) {
	return nil, nil
}

func (f *fakeStore) GetOrCreate(_ context.Context, userID int64, teamID string) (*domain.Membership, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.teams[teamID]; !ok {
		return nil, false, domain.NewNotFoundError("team with id " + teamID)
	}
	byUser, ok := f.memberships[teamID]
	if !ok {
		byUser = make(map[int64]*domain.Membership)
		f.memberships[teamID] = byUser
	}
	if m, ok := byUser[userID]; ok {
		return m, false, nil
	}
	f.nextID++
	m := &domain.Membership{ID: f.nextID, UserID: userID, TeamID: teamID, DateJoined: time.Now()}
	byUser[userID] = m
	return m, true, nil
}

func (f *fakeStore) ListByTeamID(_ context.Context, teamID string) ([]*domain.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*domain.Membership, 0, len(f.memberships[teamID]))
	for _, m := range f.memberships[teamID] {
		out = append(out, m)
	}
	return out, nil
}
