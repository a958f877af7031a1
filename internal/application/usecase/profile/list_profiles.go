package profile

import (
	"context"
	"fmt"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type ListProfilesUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewListProfilesUseCase(repo profile.Repository, log logger.Logger) *ListProfilesUseCase {
	return &ListProfilesUseCase{profileRepo: repo, logger: log}
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

// Execute returns every profile in store order. There is no paging.
func (uc *ListProfilesUseCase) Execute(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles failed: %w", err)
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}
