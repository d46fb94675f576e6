// Package ledgerrepo manages repository layer of the IOU ledger.
package ledgerrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/jstoebel/exercises/internal/domain"
)

// RepoMem keeps the ledger in memory.
type RepoMem struct {
	mu    sync.RWMutex
	users map[string]struct{}
	ious  []domain.IOU
}

// NewRepoMem returns an empty in-memory ledger repository.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		users: make(map[string]struct{}),
	}
}

// CreateUser stores a new user name.
func (r *RepoMem) CreateUser(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[name]; ok {
		return domain.ErrUserAlreadyExists
	}

	r.users[name] = struct{}{}

	return nil
}

// ListUsers returns all user names sorted.
func (r *RepoMem) ListUsers(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.users))
	for n := range r.users {
		names = append(names, n)
	}

	sort.Strings(names)

	return names, nil
}

// AddIOU stores the IOU when both users exist.
func (r *RepoMem) AddIOU(ctx context.Context, iou domain.IOU) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range []string{iou.Lender, iou.Borrower} {
		if _, ok := r.users[n]; !ok {
			return domain.ErrUserNotFound
		}
	}

	r.ious = append(r.ious, iou)

	return nil
}

// ListIOUs returns IOUs touching any of names in insertion order.
func (r *RepoMem) ListIOUs(ctx context.Context, names []string) ([]domain.IOU, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	out := []domain.IOU{}
	for _, iou := range r.ious {
		if wanted[iou.Lender] || wanted[iou.Borrower] {
			out = append(out, iou)
		}
	}

	return out, nil
}
