package repository

import (
	"context"
	"sort"
	"sync"

	"filmorate-backend/internal/domains/user/model"
	"filmorate-backend/pkg/apperr"
)

// memoryRepository is the map-backed storage variant for running without a
// database. A single mutex guards the id counter, the user map and the
// friend-edge lists, so it is safe under concurrent requests.
type memoryRepository struct {
	mu      sync.Mutex
	users   map[int]model.User
	friends map[int][]int // directed edges in insertion order
	nextID  int
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		users:   make(map[int]model.User),
		friends: make(map[int][]int),
		nextID:  1,
	}
}

func (r *memoryRepository) Create(_ context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u

	return u, nil
}

func (r *memoryRepository) Update(_ context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return nil, apperr.NotFound("user", u.ID)
	}
	r.users[u.ID] = *u

	return u, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}
	return &u, nil
}

func (r *memoryRepository) GetAll(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return apperr.NotFound("user", id)
	}
	delete(r.users, id)
	delete(r.friends, id)
	for userID, edges := range r.friends {
		r.friends[userID] = removeID(edges, id)
	}

	return nil
}

func (r *memoryRepository) AddFriend(_ context.Context, userID, friendID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.friends[userID] {
		if id == friendID {
			return nil
		}
	}
	r.friends[userID] = append(r.friends[userID], friendID)

	return nil
}

func (r *memoryRepository) RemoveFriend(_ context.Context, userID, friendID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.friends[userID] = removeID(r.friends[userID], friendID)

	return nil
}

func (r *memoryRepository) GetFriends(_ context.Context, userID int) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolveLocked(r.friends[userID]), nil
}

func (r *memoryRepository) GetCommonFriends(_ context.Context, userID, otherID int) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	otherSet := make(map[int]struct{}, len(r.friends[otherID]))
	for _, id := range r.friends[otherID] {
		otherSet[id] = struct{}{}
	}

	var common []int
	for _, id := range r.friends[userID] {
		if _, ok := otherSet[id]; ok {
			common = append(common, id)
		}
	}

	return r.resolveLocked(common), nil
}

// resolveLocked maps friend ids to user records, skipping dangling ids.
// Callers must hold the mutex.
func (r *memoryRepository) resolveLocked(ids []int) []model.User {
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users = append(users, u)
		}
	}
	return users
}

func removeID(ids []int, target int) []int {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
