package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/apperror"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

const MsgMissingFields = "Missing required fields: name, age, location"

type CreateProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewCreateProfileUseCase(repo profile.Repository, log logger.Logger) *CreateProfileUseCase {
	return &CreateProfileUseCase{profileRepo: repo, logger: log}
}

type CreateProfileInput struct {
	Fields profile.Patch
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	newProfile := &profile.Profile{}
	input.Fields.Apply(newProfile)

	if err := newProfile.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(MsgMissingFields, err)
	}

	created, err := uc.profileRepo.Create(ctx, newProfile)
	if err != nil {
		return nil, fmt.Errorf("create profile failed: %w", err)
	}

	uc.logger.Info("Profile created", zap.Int("profile_id", created.ID), zap.String("name", created.Name))
	return &CreateProfileOutput{Profile: created}, nil
}
