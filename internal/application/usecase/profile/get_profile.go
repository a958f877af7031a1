package profile

import (
	"context"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewGetProfileUseCase(repo profile.Repository, log logger.Logger) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: repo, logger: log}
}

type GetProfileInput struct {
	ID int
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}
