package persistence

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/apperror"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type memoryProfileRepo struct {
	mu       sync.RWMutex
	profiles []*profile.Profile
	lastID   atomic.Int64
	opts     options
	logger   logger.Logger
}

// NewMemoryProfileRepo returns an in-memory, ordered profile store seeded with seed.
// Seed entries without an id get the next free one; a repeated id keeps the
// first entry and drops the rest.
func NewMemoryProfileRepo(seed []*profile.Profile, log logger.Logger, opts ...Option) profile.Repository {
	r := &memoryProfileRepo{
		profiles: make([]*profile.Profile, 0, len(seed)),
		opts:     newOptions(opts),
		logger:   log,
	}

	var maxID int64
	for _, p := range seed {
		if int64(p.ID) > maxID {
			maxID = int64(p.ID)
		}
	}
	r.lastID.Store(maxID)

	now := r.opts.now()
	seen := make(map[int]bool, len(seed))
	for _, p := range seed {
		if p.ID != 0 && seen[p.ID] {
			log.Warn("Dropping seed profile with duplicate id", zap.Int("profile_id", p.ID), zap.String("name", p.Name))
			continue
		}
		cp := p.Clone()
		if cp.ID == 0 {
			cp.ID = int(r.lastID.Add(1))
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = now
		}
		if cp.UpdatedAt.IsZero() {
			cp.UpdatedAt = cp.CreatedAt
		}
		normalize(cp)
		seen[cp.ID] = true
		r.profiles = append(r.profiles, cp)
	}

	log.Info("Profile store seeded", zap.Int("count", len(r.profiles)), zap.Int64("last_id", r.lastID.Load()))
	return r
}

func normalize(p *profile.Profile) {
	if p.Services == nil {
		p.Services = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

func (r *memoryProfileRepo) indexOf(id int) int {
	for i, p := range r.profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int) error {
	return apperror.NewNotFound("Profile", strconv.Itoa(id))
}

func (r *memoryProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	return r.Search(ctx, profile.SearchFilter{})
}

func (r *memoryProfileRepo) FindByID(_ context.Context, id int) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, notFound(id)
	}
	return r.profiles[idx].Clone(), nil
}

func (r *memoryProfileRepo) Create(_ context.Context, p *profile.Profile) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := p.Clone()
	stored.ID = int(r.lastID.Add(1))
	now := r.opts.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	normalize(stored)

	r.profiles = append(r.profiles, stored)
	return stored.Clone(), nil
}

func (r *memoryProfileRepo) Update(_ context.Context, id int, mutate func(p *profile.Profile)) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, notFound(id)
	}

	updated := r.profiles[idx].Clone()
	mutate(updated)
	updated.ID = id
	updated.UpdatedAt = r.opts.now()
	normalize(updated)

	r.profiles[idx] = updated
	return updated.Clone(), nil
}

func (r *memoryProfileRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return notFound(id)
	}
	r.profiles = append(r.profiles[:idx], r.profiles[idx+1:]...)
	return nil
}

func (r *memoryProfileRepo) Search(ctx context.Context, filter profile.SearchFilter) ([]*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewInternal("profile search cancelled", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*profile.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
