package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewUpdateProfileUseCase(repo profile.Repository, log logger.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{profileRepo: repo, logger: log}
}

type UpdateProfileInput struct {
	ID     int
	Fields profile.Patch
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.Update(ctx, input.ID, input.Fields.Apply)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Profile updated", zap.Int("profile_id", p.ID))
	return &UpdateProfileOutput{Profile: p}, nil
}
