package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/profile-directory/internal/domain/settings"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type memorySettingsRepo struct {
	mu       sync.RWMutex
	settings *settings.Settings
	opts     options
	logger   logger.Logger
}

func NewMemorySettingsRepo(seed *settings.Settings, log logger.Logger, opts ...Option) settings.Repository {
	r := &memorySettingsRepo{opts: newOptions(opts), logger: log}
	if seed == nil {
		seed = &settings.Settings{}
	}
	r.settings = seed.Clone()
	if r.settings.SocialLinks == nil {
		r.settings.SocialLinks = map[string]string{}
	}
	if r.settings.UpdatedAt.IsZero() {
		r.settings.UpdatedAt = r.opts.now()
	}
	return r
}

func (r *memorySettingsRepo) Get(_ context.Context) (*settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Clone(), nil
}

func (r *memorySettingsRepo) Update(_ context.Context, mutate func(s *settings.Settings)) (*settings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := r.settings.Clone()
	mutate(updated)
	if updated.SocialLinks == nil {
		updated.SocialLinks = map[string]string{}
	}
	updated.UpdatedAt = r.opts.now()

	r.settings = updated
	return updated.Clone(), nil
}
