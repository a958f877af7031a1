package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type DeleteProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewDeleteProfileUseCase(repo profile.Repository, log logger.Logger) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{profileRepo: repo, logger: log}
}

type DeleteProfileInput struct {
	ID int
}

func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) error {
	if err := uc.profileRepo.Delete(ctx, input.ID); err != nil {
		return err
	}
	uc.logger.Info("Profile deleted", zap.Int("profile_id", input.ID))
	return nil
}
